package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/session"
)

// profileModel shows the persisted identity and owns the logout action.
type profileModel struct {
	deps    Deps
	snap    session.Session
	confirm bool
}

func newProfileModel(deps Deps, snap session.Session) profileModel {
	return profileModel{deps: deps, snap: snap}
}

func (p profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "enter":
		if p.confirm {
			return p, func() tea.Msg { return logoutMsg{} }
		}
		p.confirm = true
	case "esc":
		p.confirm = false
	}
	return p, nil
}

func (p profileModel) view(width int) string {
	s := p.deps.Styles

	name := p.snap.UserName
	if name == "" {
		name = "Pengguna"
	}
	roleLabel := "Masyarakat Umum"
	if p.snap.Role == session.RoleInstansi {
		roleLabel = "Instansi Pemerintah"
	}

	rows := []string{
		s.Title.Render("Profil"),
		s.Bold.Render(name),
	}
	if p.snap.UserEmail != "" {
		rows = append(rows, s.Muted.Render(p.snap.UserEmail))
	}
	rows = append(rows,
		s.Badge.Render(roleLabel),
		"",
	)

	if p.confirm {
		rows = append(rows,
			s.Warning.Render("Keluar dari akun?"),
			s.Footer.Render("enter: ya, keluar • esc: batal"),
		)
	} else {
		rows = append(rows,
			s.Error.Render("▸ Keluar"),
			s.Footer.Render("enter: keluar dari akun"),
		)
	}

	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
