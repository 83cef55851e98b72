package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/session"
)

// Focusable rows on the registration form.
const (
	regFocusName = iota
	regFocusEmail
	regFocusPassword
	regFocusConfirm
	regFocusRole
	regFocusSubmit
	regFocusLogin
	regFocusCount
)

// registerModel handles account creation. The prototype has no backend, so a
// valid form simply becomes an authenticated session with the chosen role.
type registerModel struct {
	deps Deps

	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	role     session.Role
	focus    int

	errText string
}

func newRegisterModel(deps Deps) registerModel {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		return ti
	}

	name := mk("nama lengkap")
	name.Focus()
	password := mk("kata sandi")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	confirm := mk("ulangi kata sandi")
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	return registerModel{
		deps:     deps,
		name:     name,
		email:    mk("nama@email.com"),
		password: password,
		confirm:  confirm,
		role:     session.RoleMasyarakat,
	}
}

func (r registerModel) update(msg tea.Msg) (registerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		r = r.setFocus((r.focus + 1) % regFocusCount)
		return r, nil
	case "shift+tab", "up":
		r = r.setFocus((r.focus + regFocusCount - 1) % regFocusCount)
		return r, nil
	case "left", "right":
		if r.focus == regFocusRole {
			if r.role == session.RoleMasyarakat {
				r.role = session.RoleInstansi
			} else {
				r.role = session.RoleMasyarakat
			}
			return r, nil
		}
	case "esc":
		return r, func() tea.Msg { return gotoLoginMsg{} }
	case "enter":
		switch r.focus {
		case regFocusLogin:
			return r, func() tea.Msg { return gotoLoginMsg{} }
		case regFocusRole:
			r = r.setFocus(regFocusSubmit)
			return r, nil
		default:
			return r.submit()
		}
	}

	return r.updateInputs(msg)
}

func (r registerModel) updateInputs(msg tea.Msg) (registerModel, tea.Cmd) {
	var cmd tea.Cmd
	switch r.focus {
	case regFocusName:
		r.name, cmd = r.name.Update(msg)
	case regFocusEmail:
		r.email, cmd = r.email.Update(msg)
	case regFocusPassword:
		r.password, cmd = r.password.Update(msg)
	case regFocusConfirm:
		r.confirm, cmd = r.confirm.Update(msg)
	}
	return r, cmd
}

func (r registerModel) setFocus(focus int) registerModel {
	r.focus = focus
	for _, ti := range []*textinput.Model{&r.name, &r.email, &r.password, &r.confirm} {
		ti.Blur()
	}
	switch focus {
	case regFocusName:
		r.name.Focus()
	case regFocusEmail:
		r.email.Focus()
	case regFocusPassword:
		r.password.Focus()
	case regFocusConfirm:
		r.confirm.Focus()
	}
	return r
}

func (r registerModel) submit() (registerModel, tea.Cmd) {
	name := strings.TrimSpace(r.name.Value())
	email := strings.TrimSpace(r.email.Value())

	switch {
	case name == "" || email == "" || r.password.Value() == "":
		r.errText = "Semua kolom wajib diisi"
		return r, nil
	case !strings.Contains(email, "@"):
		r.errText = "Format email tidak valid"
		return r, nil
	case r.password.Value() != r.confirm.Value():
		r.errText = "Konfirmasi kata sandi tidak cocok"
		return r, nil
	}

	r.errText = ""
	role := r.role
	return r, func() tea.Msg {
		return registeredMsg{name: name, email: email, role: role}
	}
}

func (r registerModel) view(width int) string {
	s := r.deps.Styles

	field := func(label string, ti textinput.Model, focused bool) string {
		box := s.Input
		if focused {
			box = s.InputFocus
		}
		return s.Muted.Render(label) + "\n" + box.Render(ti.View())
	}
	button := func(label string, focused bool) string {
		if focused {
			return s.Selected.Render(" " + label + " ")
		}
		return s.Muted.Render(" " + label + " ")
	}

	roleLabel := "Masyarakat Umum"
	if r.role == session.RoleInstansi {
		roleLabel = "Instansi Pemerintah"
	}
	roleRow := s.Muted.Render("Daftar sebagai") + "\n"
	if r.focus == regFocusRole {
		roleRow += s.Selected.Render(" ◀ " + roleLabel + " ▶ ")
	} else {
		roleRow += s.Body.Render("   " + roleLabel)
	}

	rows := []string{
		s.Title.Render("Daftar Akun Baru"),
		field("Nama Lengkap", r.name, r.focus == regFocusName),
		field("Email", r.email, r.focus == regFocusEmail),
		field("Kata Sandi", r.password, r.focus == regFocusPassword),
		field("Konfirmasi Kata Sandi", r.confirm, r.focus == regFocusConfirm),
		roleRow,
		"",
		button("Daftar", r.focus == regFocusSubmit),
		button("Sudah punya akun? Masuk", r.focus == regFocusLogin),
	}

	if r.errText != "" {
		rows = append(rows, "", s.Error.Render(r.errText))
	}

	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
