package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tanyajaksa/internal/catalog"
	"tanyajaksa/internal/logging"
	"tanyajaksa/internal/session"
	"tanyajaksa/internal/store"
	"tanyajaksa/internal/submit"
)

// =============================================================================
// ASSISTANCE TAB (instansi only)
// =============================================================================

type assistMode int

const (
	assistList assistMode = iota
	assistKind
	assistForm
	assistDetail
)

// Text fields on the assistance form, in tab order. The category picker and
// submit button follow them.
const (
	afInstitution = iota
	afPICName
	afPICPosition
	afAddress
	afPhone
	afEmail
	afSubject
	afDescription
	afTextCount
	afCategory = afTextCount
	afSubmit   = afTextCount + 1
	afCount    = afTextCount + 2
)

var assistLabels = [afTextCount]string{
	"Nama Instansi",
	"Nama PIC",
	"Jabatan PIC",
	"Alamat Instansi",
	"Telepon",
	"Email",
	"Perihal",
	"Uraian Kebutuhan",
}

// assistanceModel handles the legal-assistance application flow: the list of
// filed applications, the request-type choice, the application form, and a
// read-only detail view. A successful submission opens a chat with the
// assigned prosecutor via the cross-tab signal.
type assistanceModel struct {
	deps Deps
	mode assistMode

	items  []catalog.Application
	cursor int

	selectedID int64

	kindIdx int // index into catalog.AssistanceKinds

	inputs      [afTextCount]textinput.Model
	categoryIdx int
	focus       int
	submitting  bool
	seq         int
	errText     string
	spinner     spinner.Model
}

func newAssistanceModel(deps Deps, snap session.Session) assistanceModel {
	var inputs [afTextCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(assistLabels[i])
		ti.CharLimit = 160
		inputs[i] = ti
	}
	// Institution name defaults to the logged-in account.
	if snap.UserName != "" {
		inputs[afInstitution].SetValue(snap.UserName)
	}
	if snap.UserEmail != "" {
		inputs[afEmail].SetValue(snap.UserEmail)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.Styles.Spinner

	return assistanceModel{
		deps:    deps,
		items:   catalog.Applications(),
		inputs:  inputs,
		spinner: sp,
	}
}

func (a assistanceModel) capturing() bool { return a.mode == assistForm }

func (a assistanceModel) update(msg tea.Msg) (assistanceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case assistanceResultMsg:
		return a.handleResult(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		switch a.mode {
		case assistList:
			return a.updateList(msg)
		case assistKind:
			return a.updateKind(msg)
		case assistForm:
			return a.updateForm(msg)
		case assistDetail:
			if msg.String() == "esc" {
				a.mode = assistList
				a.selectedID = 0
			}
			return a, nil
		}
	}
	return a, nil
}

func (a assistanceModel) updateList(msg tea.KeyMsg) (assistanceModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
	case "n":
		a.mode = assistKind
		a.kindIdx = 0
	case "enter":
		if a.cursor < len(a.items) {
			a.selectedID = a.items[a.cursor].ID
			a.mode = assistDetail
		}
	}
	return a, nil
}

func (a assistanceModel) updateKind(msg tea.KeyMsg) (assistanceModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		a.kindIdx = 1 - a.kindIdx
	case "esc":
		a.mode = assistList
	case "enter":
		a = a.resetForm()
		a.mode = assistForm
	}
	return a, nil
}

func (a assistanceModel) resetForm() assistanceModel {
	for i := range a.inputs {
		if i != afInstitution && i != afEmail {
			a.inputs[i].SetValue("")
		}
		a.inputs[i].Blur()
	}
	a.inputs[afInstitution].Focus()
	a.focus = afInstitution
	a.categoryIdx = 0
	a.errText = ""
	a.submitting = false
	return a
}

func (a assistanceModel) updateForm(msg tea.KeyMsg) (assistanceModel, tea.Cmd) {
	if a.submitting {
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.mode = assistKind
		return a, nil
	case "tab", "down":
		a = a.setFocus((a.focus + 1) % afCount)
		return a, nil
	case "shift+tab", "up":
		a = a.setFocus((a.focus + afCount - 1) % afCount)
		return a, nil
	case "left":
		if a.focus == afCategory && a.categoryIdx > 0 {
			a.categoryIdx--
		}
		return a, nil
	case "right":
		if a.focus == afCategory && a.categoryIdx < len(catalog.AssistanceCategories)-1 {
			a.categoryIdx++
		}
		return a, nil
	case "enter":
		if a.focus == afSubmit {
			return a.submit()
		}
		a = a.setFocus((a.focus + 1) % afCount)
		return a, nil
	}

	if a.focus < afTextCount {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a assistanceModel) setFocus(focus int) assistanceModel {
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	a.focus = focus
	if focus < afTextCount {
		a.inputs[focus].Focus()
	}
	return a
}

func (a assistanceModel) submit() (assistanceModel, tea.Cmd) {
	req := submit.AssistanceRequest{
		Kind:        catalog.AssistanceKinds[a.kindIdx].Value,
		Institution: strings.TrimSpace(a.inputs[afInstitution].Value()),
		PICName:     strings.TrimSpace(a.inputs[afPICName].Value()),
		PICPosition: strings.TrimSpace(a.inputs[afPICPosition].Value()),
		Address:     strings.TrimSpace(a.inputs[afAddress].Value()),
		Phone:       strings.TrimSpace(a.inputs[afPhone].Value()),
		Email:       strings.TrimSpace(a.inputs[afEmail].Value()),
		Subject:     strings.TrimSpace(a.inputs[afSubject].Value()),
		Category:    catalog.AssistanceCategories[a.categoryIdx],
		Description: strings.TrimSpace(a.inputs[afDescription].Value()),
	}

	if req.Institution == "" || req.PICName == "" || req.Subject == "" || req.Description == "" {
		a.errText = "Instansi, PIC, perihal, dan uraian wajib diisi"
		return a, nil
	}

	a.errText = ""
	a.submitting = true
	a.seq++
	seq := a.seq
	svc := a.deps.Submit
	return a, tea.Batch(a.spinner.Tick, func() tea.Msg {
		err := svc.SubmitAssistance(req)
		return assistanceResultMsg{req: req, err: err, seq: seq}
	})
}

// handleResult records the filed application, persists the conversation the
// prosecutor will answer in, and emits the cross-tab signal that sends the
// user straight to that chat.
func (a assistanceModel) handleResult(msg assistanceResultMsg) (assistanceModel, tea.Cmd) {
	if !a.submitting || msg.seq != a.seq {
		return a, nil
	}
	a.submitting = false

	if msg.err != nil {
		a.errText = msg.err.Error()
		return a, nil
	}

	chatID := a.deps.IDs.Next()
	rec := store.Conversation{
		ID:        chatID,
		Topic:     msg.req.Subject,
		Category:  msg.req.Category,
		Kind:      msg.req.Kind,
		Origin:    store.OriginAssistanceForm,
		CreatedAt: time.Now(),
	}
	if err := a.deps.Records.SaveConversation(rec); err != nil {
		logging.Get(logging.CategoryStore).Warnf("save assistance record %d: %v", chatID, err)
	}

	a.items = append(a.items, catalog.Application{
		ID:            chatID,
		Title:         msg.req.Subject,
		Kind:          msg.req.Kind,
		Institution:   msg.req.Institution,
		Category:      msg.req.Category,
		Status:        "Diproses",
		SubmittedDate: time.Now().Format("2 Jan 2006"),
	})
	a.mode = assistList
	a.cursor = 0

	logging.Get(logging.CategoryShell).Infof("assistance %d filed (kind=%s)", chatID, msg.req.Kind)
	return a, func() tea.Msg { return assistanceSubmittedMsg{chatID: chatID} }
}

// =============================================================================
// VIEW
// =============================================================================

func (a assistanceModel) view(width int) string {
	switch a.mode {
	case assistKind:
		return a.viewKind()
	case assistForm:
		return a.viewForm(width)
	case assistDetail:
		return a.viewDetail()
	default:
		return a.viewList()
	}
}

func (a assistanceModel) viewList() string {
	s := a.deps.Styles

	rows := []string{s.Title.Render("Permohonan Bantuan & Pendampingan Hukum")}
	if len(a.items) == 0 {
		rows = append(rows, s.Muted.Render("Belum ada permohonan."))
	}
	for i, app := range a.items {
		line := fmt.Sprintf("%s  %s", app.Title, s.BadgeMuted.Render(app.Status))
		sub := s.Muted.Render("   " + app.Category + " • diajukan " + app.SubmittedDate)
		if i == a.cursor {
			rows = append(rows, s.Selected.Render("▸ "+line), sub)
		} else {
			rows = append(rows, s.Body.Render("  "+line), sub)
		}
	}
	rows = append(rows, "", s.Footer.Render("enter: detail • n: permohonan baru"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a assistanceModel) viewKind() string {
	s := a.deps.Styles

	rows := []string{s.Title.Render("Jenis Permohonan"), ""}
	for i, k := range catalog.AssistanceKinds {
		if i == a.kindIdx {
			rows = append(rows, s.Selected.Render("▸ "+k.Label), s.Muted.Render("   "+k.Description))
		} else {
			rows = append(rows, s.Body.Render("  "+k.Label), s.Muted.Render("   "+k.Description))
		}
	}
	rows = append(rows, "", s.Footer.Render("enter: lanjut • esc: batal"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a assistanceModel) viewForm(width int) string {
	s := a.deps.Styles

	rows := []string{
		s.Title.Render(catalog.AssistanceKinds[a.kindIdx].Label),
	}
	for i := range a.inputs {
		box := s.Input
		if a.focus == i {
			box = s.InputFocus
		}
		rows = append(rows, s.Muted.Render(assistLabels[i]), box.Render(a.inputs[i].View()))
	}

	category := catalog.AssistanceCategories[a.categoryIdx]
	if a.focus == afCategory {
		rows = append(rows, s.Muted.Render("Kategori"), s.Selected.Render(" ◀ "+category+" ▶ "))
	} else {
		rows = append(rows, s.Muted.Render("Kategori"), "   "+category)
	}

	submitLabel := " Kirim Permohonan "
	if a.focus == afSubmit {
		rows = append(rows, "", s.Selected.Render(submitLabel))
	} else {
		rows = append(rows, "", s.Muted.Render(submitLabel))
	}

	if a.submitting {
		rows = append(rows, "", a.spinner.View()+s.Muted.Render(" Mengirim permohonan..."))
	}
	if a.errText != "" {
		rows = append(rows, "", s.Error.Render(a.errText))
	}
	rows = append(rows, "", s.Footer.Render("tab: pindah kolom • enter: kirim • esc: kembali"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a assistanceModel) viewDetail() string {
	s := a.deps.Styles

	var app catalog.Application
	found := false
	for _, it := range a.items {
		if it.ID == a.selectedID {
			app = it
			found = true
			break
		}
	}
	if !found {
		return s.Content.Render(s.Muted.Render("Permohonan tidak ditemukan."))
	}

	kindLabel := app.Kind
	for _, k := range catalog.AssistanceKinds {
		if k.Value == app.Kind {
			kindLabel = k.Label
		}
	}

	rows := []string{
		s.Title.Render(app.Title),
		s.BadgeMuted.Render(app.Status),
		s.Body.Render(kindLabel),
		s.Body.Render(app.Institution),
		s.Muted.Render(app.Category + " • diajukan " + app.SubmittedDate),
		"",
		s.Footer.Render("esc: kembali"),
	}
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
