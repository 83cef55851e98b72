package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/catalog"
	"tanyajaksa/internal/session"
)

// quickAction is a dashboard shortcut jumping straight to a tab.
type quickAction struct {
	label  string
	target Tab
}

// dashboardModel is the landing tab: greeting, service counters, and
// role-aware quick actions.
type dashboardModel struct {
	deps    Deps
	name    string
	role    session.Role
	actions []quickAction
	cursor  int
}

func newDashboardModel(deps Deps, snap session.Session) dashboardModel {
	name := snap.UserName
	if name == "" {
		name = "Pengguna"
	}

	actions := []quickAction{
		{label: "Mulai Konsultasi Hukum", target: TabConsultation},
		{label: "Baca Edukasi Hukum", target: TabEducation},
		{label: "Pantau Proyek Pembangunan", target: TabProjects},
	}
	if snap.Role == session.RoleInstansi {
		actions = append([]quickAction{
			{label: "Ajukan Permohonan Pendampingan", target: TabAssistance},
		}, actions...)
	}

	return dashboardModel{deps: deps, name: name, role: snap.Role, actions: actions}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.actions)-1 {
			d.cursor++
		}
	case "enter":
		target := d.actions[d.cursor].target
		return d, func() tea.Msg { return selectTabMsg{tab: target} }
	}
	return d, nil
}

func (d dashboardModel) view(width int) string {
	s := d.deps.Styles

	active := 0
	for _, c := range catalog.Consultations() {
		if c.Status != catalog.StatusDone && c.Status != catalog.StatusRejected {
			active++
		}
	}

	rows := []string{
		s.Title.Render("Halo, " + d.name),
		s.Muted.Render(fmt.Sprintf("%d konsultasi aktif • %d proyek dipantau", active, len(catalog.Projects()))),
		"",
		s.Bold.Render("Aksi Cepat"),
	}

	for i, a := range d.actions {
		if i == d.cursor {
			rows = append(rows, s.Selected.Render("▸ "+a.label))
		} else {
			rows = append(rows, s.Body.Render("  "+a.label))
		}
	}

	rows = append(rows, "", s.Footer.Render("↑/↓: pilih • enter: buka"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
