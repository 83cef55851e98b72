package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/catalog"
	"tanyajaksa/internal/logging"
)

// educationModel is the article tab: a bookmarkable list and a scrollable
// markdown reader.
type educationModel struct {
	deps      Deps
	items     []catalog.Article
	loadErr   error
	cursor    int
	bookmarks map[int64]bool

	reading  bool
	viewport viewport.Model

	width  int
	height int
}

func newEducationModel(deps Deps) educationModel {
	items, err := catalog.Articles()
	bookmarks := make(map[int64]bool, len(catalog.DefaultBookmarks))
	for _, id := range catalog.DefaultBookmarks {
		bookmarks[id] = true
	}
	return educationModel{
		deps:      deps,
		items:     items,
		loadErr:   err,
		bookmarks: bookmarks,
		viewport:  viewport.New(80, 20),
	}
}

func (e educationModel) setSize(width, height int) educationModel {
	e.width = width
	e.height = height
	e.viewport.Width = max(width-4, 20)
	e.viewport.Height = max(height-8, 5)
	return e
}

func (e educationModel) update(msg tea.Msg) (educationModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if e.reading {
			var cmd tea.Cmd
			e.viewport, cmd = e.viewport.Update(msg)
			return e, cmd
		}
		return e, nil
	}

	if e.reading {
		switch keyMsg.String() {
		case "esc", "q":
			e.reading = false
			return e, nil
		case "b":
			e.toggleBookmark()
			return e, nil
		}
		var cmd tea.Cmd
		e.viewport, cmd = e.viewport.Update(msg)
		return e, cmd
	}

	switch keyMsg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.items)-1 {
			e.cursor++
		}
	case "b":
		e.toggleBookmark()
	case "enter":
		if len(e.items) == 0 {
			return e, nil
		}
		e.reading = true
		e.viewport.SetContent(e.renderArticle(e.items[e.cursor]))
		e.viewport.GotoTop()
	}
	return e, nil
}

func (e *educationModel) toggleBookmark() {
	if len(e.items) == 0 {
		return
	}
	id := e.items[e.cursor].ID
	if e.bookmarks[id] {
		delete(e.bookmarks, id)
	} else {
		e.bookmarks[id] = true
	}
}

// renderArticle converts the markdown body for the reader, falling back to
// the raw text if rendering fails. Glamour can panic on malformed input, so
// the call is fenced.
func (e educationModel) renderArticle(a catalog.Article) string {
	header := fmt.Sprintf("# %s\n\n*%s • %s*\n\n", a.Title, a.Category, a.ReadTime)
	raw := header + a.Body

	out := raw
	func() {
		defer func() {
			if r := recover(); r != nil {
				logging.Get(logging.CategoryApp).Warnf("markdown render panic: %v", r)
			}
		}()
		style := "light"
		if e.deps.Styles.Theme.IsDark {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(max(e.viewport.Width, 40)),
		)
		if err != nil {
			logging.Get(logging.CategoryApp).Warnf("markdown renderer: %v", err)
			return
		}
		if rendered, err := r.Render(raw); err == nil {
			out = rendered
		}
	}()
	return out
}

func (e educationModel) view(width int) string {
	s := e.deps.Styles

	if e.loadErr != nil {
		return s.Content.Render(s.Error.Render("Katalog artikel tidak dapat dimuat: " + e.loadErr.Error()))
	}

	if e.reading {
		return lipgloss.JoinVertical(lipgloss.Left,
			e.viewport.View(),
			s.Footer.Render("↑/↓: gulir • b: tandai • esc: kembali"),
		)
	}

	rows := []string{s.Title.Render("Edukasi Hukum")}
	for i, a := range e.items {
		mark := " "
		if e.bookmarks[a.ID] {
			mark = "★"
		}
		line := fmt.Sprintf("%s %s  %s", mark, a.Title, s.Muted.Render(a.Category+" • "+a.ReadTime))
		if i == e.cursor {
			rows = append(rows, s.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, s.Body.Render("  "+line))
		}
	}
	rows = append(rows, "", s.Footer.Render("enter: baca • b: tandai"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
