package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/catalog"
)

// Focusable rows on the login form, top to bottom.
const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusSubmit
	loginFocusRegister
	loginFocusCount
)

// loginModel handles the credential form. The credential check itself is the
// prototype's loose one (exact demo account, else anything email-shaped); the
// only asynchrony is the simulated processing delay.
type loginModel struct {
	deps Deps

	email    textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	seq        int
	errText    string
	spinner    spinner.Model
}

func newLoginModel(deps Deps) loginModel {
	email := textinput.New()
	email.Placeholder = "nama@email.com"
	email.CharLimit = 64
	email.Focus()

	password := textinput.New()
	password.Placeholder = "kata sandi"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.Styles.Spinner

	return loginModel{deps: deps, email: email, password: password, spinner: sp}
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginAttemptMsg:
		// Only the outcome of the latest submission counts.
		if !l.submitting || msg.seq != l.seq {
			return l, nil
		}
		l.submitting = false
		acc, ok := catalog.Authenticate(msg.email, msg.password)
		if !ok {
			l.errText = "Email atau kata sandi tidak valid"
			return l, nil
		}
		return l, func() tea.Msg {
			return loggedInMsg{name: acc.Name, email: msg.email, role: acc.Role}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd

	case tea.KeyMsg:
		if l.submitting {
			return l, nil
		}
		switch msg.String() {
		case "tab", "down":
			l = l.setFocus((l.focus + 1) % loginFocusCount)
			return l, nil
		case "shift+tab", "up":
			l = l.setFocus((l.focus + loginFocusCount - 1) % loginFocusCount)
			return l, nil
		case "enter":
			switch l.focus {
			case loginFocusRegister:
				return l, func() tea.Msg { return gotoRegisterMsg{} }
			default:
				return l.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch l.focus {
	case loginFocusEmail:
		l.email, cmd = l.email.Update(msg)
	case loginFocusPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l loginModel) setFocus(focus int) loginModel {
	l.focus = focus
	l.email.Blur()
	l.password.Blur()
	switch focus {
	case loginFocusEmail:
		l.email.Focus()
	case loginFocusPassword:
		l.password.Focus()
	}
	return l
}

func (l loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(l.email.Value())
	password := l.password.Value()
	if email == "" || password == "" {
		l.errText = "Email dan kata sandi wajib diisi"
		return l, nil
	}

	l.errText = ""
	l.submitting = true
	l.seq++
	seq := l.seq
	return l, tea.Batch(
		l.spinner.Tick,
		tea.Tick(l.deps.Config.LoginDelay(), func(time.Time) tea.Msg {
			return loginAttemptMsg{email: email, password: password, seq: seq}
		}),
	)
}

func (l loginModel) view(width int) string {
	s := l.deps.Styles

	field := func(ti textinput.Model, focused bool) string {
		if focused {
			return s.InputFocus.Render(ti.View())
		}
		return s.Input.Render(ti.View())
	}
	button := func(label string, focused bool) string {
		if focused {
			return s.Selected.Render(" " + label + " ")
		}
		return s.Muted.Render(" " + label + " ")
	}

	rows := []string{
		s.Title.Render("Masuk"),
		s.Muted.Render("Email"),
		field(l.email, l.focus == loginFocusEmail),
		s.Muted.Render("Kata Sandi"),
		field(l.password, l.focus == loginFocusPassword),
		"",
		button("Masuk", l.focus == loginFocusSubmit),
		button("Belum punya akun? Daftar di sini", l.focus == loginFocusRegister),
	}

	if l.submitting {
		rows = append(rows, "", l.spinner.View()+s.Muted.Render(" Memeriksa kredensial..."))
	}
	if l.errText != "" {
		rows = append(rows, "", s.Error.Render(l.errText))
	}

	rows = append(rows, "",
		s.RenderDivider(min(width-6, 48)),
		s.Muted.Render("Akun demo: budi@email.com / demo123"),
		s.Muted.Render("          instansi@kotabaru.go.id / demo123"),
	)

	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
