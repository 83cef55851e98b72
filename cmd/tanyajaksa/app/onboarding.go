package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// onboardingSlide is one card of the first-launch carousel.
type onboardingSlide struct {
	title string
	body  string
}

var onboardingSlides = []onboardingSlide{
	{
		title: "Selamat Datang di Tanya Jaksa",
		body:  "Layanan hukum dari Kejaksaan untuk masyarakat dan instansi pemerintah. Konsultasi, pendampingan, dan edukasi hukum dalam satu aplikasi.",
	},
	{
		title: "Konsultasi Hukum Gratis",
		body:  "Ajukan pertanyaan hukum melalui chat, jadwalkan sesi online, atau bertemu langsung dengan jaksa di kantor kejaksaan terdekat.",
	},
	{
		title: "Edukasi & Transparansi",
		body:  "Pelajari artikel hukum praktis dan pantau perkembangan proyek pembangunan daerah yang diawasi kejaksaan.",
	},
}

// onboardingModel walks the slide carousel shown exactly once per install.
type onboardingModel struct {
	deps  Deps
	index int
}

func newOnboardingModel(deps Deps) onboardingModel {
	return onboardingModel{deps: deps}
}

func (o onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch keyMsg.String() {
	case "right", "enter", "l", " ":
		if o.index >= len(onboardingSlides)-1 {
			return o, func() tea.Msg { return onboardingDoneMsg{} }
		}
		o.index++
	case "left", "h":
		if o.index > 0 {
			o.index--
		}
	case "s", "esc":
		// Skip is a completion too; the marker must still be persisted.
		return o, func() tea.Msg { return onboardingDoneMsg{} }
	}
	return o, nil
}

func (o onboardingModel) view(width int) string {
	s := o.deps.Styles
	slide := onboardingSlides[o.index]

	dots := make([]string, len(onboardingSlides))
	for i := range onboardingSlides {
		if i == o.index {
			dots[i] = s.Bold.Render("●")
		} else {
			dots[i] = s.Muted.Render("○")
		}
	}

	next := "enter: selanjutnya"
	if o.index == len(onboardingSlides)-1 {
		next = "enter: mulai"
	}

	card := s.Card.Width(min(width-4, 64)).Render(
		s.Title.Render(slide.title) + "\n" + s.Body.Render(slide.body),
	)

	var b strings.Builder
	b.WriteString(s.Content.Render(lipgloss.JoinVertical(lipgloss.Left,
		card,
		"",
		strings.Join(dots, " "),
		"",
		s.Footer.Render(fmt.Sprintf("%s • s: lewati", next)),
	)))
	return b.String()
}
