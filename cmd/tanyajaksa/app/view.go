package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/cmd/tanyajaksa/ui"
)

// =============================================================================
// ROOT VIEW
// =============================================================================

// View renders the current screen.
func (m Model) View() string {
	if !m.ready {
		return "Memuat..."
	}

	switch m.screen {
	case ScreenSplash:
		return m.viewSplash()
	case ScreenOnboarding:
		return m.onboarding.view(m.width)
	case ScreenLogin:
		return m.login.view(m.width)
	case ScreenRegister:
		return m.register.view(m.width)
	case ScreenMain:
		// The authenticated area never renders without a session.
		if !m.authed {
			return ""
		}
		return m.shell.view()
	default:
		return ""
	}
}

// viewSplash centers the wordmark over the splash hold.
func (m Model) viewSplash() string {
	s := m.deps.Styles

	var b strings.Builder
	b.WriteString(ui.Logo(s))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Layanan Hukum Kejaksaan dalam Genggaman"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View() + s.Muted.Render(" Menyiapkan aplikasi..."))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}
