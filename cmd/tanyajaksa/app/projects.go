package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/catalog"
)

// projectsModel is the public-transparency tab: a list of supervised
// projects and a phase-timeline detail view.
type projectsModel struct {
	deps     Deps
	items    []catalog.Project
	cursor   int
	selected *catalog.Project
}

func newProjectsModel(deps Deps) projectsModel {
	return projectsModel{deps: deps, items: catalog.Projects()}
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.selected != nil {
		if keyMsg.String() == "esc" {
			p.selected = nil
		}
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "enter":
		proj := p.items[p.cursor]
		p.selected = &proj
	}
	return p, nil
}

func (p projectsModel) view(width int) string {
	if p.selected != nil {
		return p.viewDetail(width)
	}
	return p.viewList(width)
}

func (p projectsModel) viewList(width int) string {
	s := p.deps.Styles

	rows := []string{s.Title.Render("Pantau Proyek Pembangunan")}
	for i, proj := range p.items {
		line := fmt.Sprintf("%s  %s • %d%%", proj.Title, proj.Budget, proj.Progress)
		if i == p.cursor {
			rows = append(rows, s.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, s.Body.Render("  "+line))
		}
	}
	rows = append(rows, "", s.Footer.Render("enter: detail"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p projectsModel) viewDetail(width int) string {
	s := p.deps.Styles
	proj := *p.selected

	rows := []string{
		s.Title.Render(proj.Title),
		s.Body.Render("Anggaran: " + proj.Budget),
		s.Body.Render(fmt.Sprintf("Progres: %d%% — %s", proj.Progress, proj.Status)),
		"",
		s.Bold.Render("Tahapan"),
	}
	for _, ph := range proj.Phases {
		mark := "○"
		style := s.Muted
		switch ph.Status {
		case "Selesai":
			mark = "●"
			style = s.Success
		case "Berjalan":
			mark = "◐"
			style = s.Info
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s %s — %s (%s)", mark, ph.Name, ph.Status, ph.Date)))
	}
	rows = append(rows, "", s.Footer.Render("esc: kembali"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
