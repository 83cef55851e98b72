package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tanyajaksa/internal/session"
	"tanyajaksa/internal/store"
	"tanyajaksa/internal/submit"
)

func newShellDeps(t *testing.T, role session.Role) Deps {
	t.Helper()
	deps := newTestDeps()
	if err := deps.Sessions.SetRole(role); err != nil {
		t.Fatal(err)
	}
	return deps
}

func hasTab(tabs []Tab, want Tab) bool {
	for _, t := range tabs {
		if t == want {
			return true
		}
	}
	return false
}

func TestShellHidesAssistanceFromMasyarakat(t *testing.T) {
	t.Parallel()

	sh := newShellModel(newShellDeps(t, session.RoleMasyarakat))
	if hasTab(sh.tabs, TabAssistance) {
		t.Error("masyarakat role must not see the assistance tab")
	}
	if !hasTab(sh.tabs, TabConsultation) || !hasTab(sh.tabs, TabEducation) {
		t.Error("shared tabs missing from masyarakat tab set")
	}
}

func TestShellShowsAssistanceToInstansi(t *testing.T) {
	t.Parallel()

	sh := newShellModel(newShellDeps(t, session.RoleInstansi))
	if !hasTab(sh.tabs, TabAssistance) {
		t.Error("instansi role should see the assistance tab")
	}
}

func TestShellIgnoresSelectOfHiddenTab(t *testing.T) {
	t.Parallel()

	sh := newShellModel(newShellDeps(t, session.RoleMasyarakat))
	sh, _ = sh.update(selectTabMsg{tab: TabAssistance})
	if sh.active == TabAssistance {
		t.Error("hidden tab became active")
	}
	sh, _ = sh.update(selectTabMsg{tab: TabEducation})
	if sh.active != TabEducation {
		t.Errorf("active = %v, want education", sh.active)
	}
}

// runAssistanceSubmission drives a successful assistance submission through
// the shell and returns the chat id the cross-tab signal carried.
func runAssistanceSubmission(t *testing.T, sh shellModel, subject string) (shellModel, int64) {
	t.Helper()

	sh.assistance.mode = assistForm
	sh.assistance.submitting = true
	sh.assistance.seq++

	sh, cmd := sh.update(assistanceResultMsg{
		req: submit.AssistanceRequest{
			Kind:        "pendampingan",
			Institution: "Dinas Kesehatan",
			PICName:     "dr. Rina",
			Subject:     subject,
			Category:    "Proyek Pembangunan",
			Description: "perlu pendampingan",
		},
		seq: sh.assistance.seq,
	})
	if cmd == nil {
		t.Fatal("successful submission should emit the cross-tab signal")
	}
	sig, ok := cmd().(assistanceSubmittedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want assistanceSubmittedMsg", cmd())
	}

	sh, _ = sh.update(sig)
	return sh, sig.chatID
}

func TestAssistanceSubmissionOpensConsultationChat(t *testing.T) {
	t.Parallel()

	deps := newShellDeps(t, session.RoleInstansi)
	sh := newShellModel(deps)
	sh.active = TabAssistance

	sh, chatID := runAssistanceSubmission(t, sh, "Pendampingan Puskesmas")

	if sh.active != TabConsultation {
		t.Errorf("active tab = %v, want consultation after submission", sh.active)
	}
	if sh.consultation.mode != consultChat {
		t.Errorf("consultation mode = %v, want chat view", sh.consultation.mode)
	}
	if sh.consultation.currentChat != chatID {
		t.Errorf("open chat = %d, want %d", sh.consultation.currentChat, chatID)
	}

	rec, ok := deps.Records.Conversation(chatID)
	if !ok {
		t.Fatalf("conversation %d not persisted", chatID)
	}
	if rec.Origin != store.OriginAssistanceForm {
		t.Errorf("origin = %q, want assistance_form", rec.Origin)
	}
	if !rec.IsNew() {
		t.Error("assistance-created conversation should read as new")
	}
}

func TestAssistanceSubmissionWorksTwice(t *testing.T) {
	t.Parallel()

	sh := newShellModel(newShellDeps(t, session.RoleInstansi))

	sh, first := runAssistanceSubmission(t, sh, "Permohonan pertama")
	sh, second := runAssistanceSubmission(t, sh, "Permohonan kedua")

	if second <= first {
		t.Errorf("ids not monotonic: first=%d second=%d", first, second)
	}
	if sh.consultation.currentChat != second {
		t.Errorf("open chat = %d, want the second submission %d", sh.consultation.currentChat, second)
	}
}

func TestOpenChatZeroIsNoOp(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	before := c.mode
	c, cmd := c.openChat(0)
	if cmd != nil || c.mode != before {
		t.Error("openChat(0) must do nothing")
	}
}

func TestAssistanceStaleResultIgnored(t *testing.T) {
	t.Parallel()

	sh := newShellModel(newShellDeps(t, session.RoleInstansi))
	sh.assistance.submitting = true
	sh.assistance.seq = 2

	sh, cmd := sh.update(assistanceResultMsg{seq: 1})
	if cmd != nil {
		t.Error("stale result must not emit the cross-tab signal")
	}
	if !sh.assistance.submitting {
		t.Error("stale result must not clear the in-flight flag")
	}
}

func TestStartChatFailureStaysOnForm(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	c.mode = consultStartChat
	c.submitting = true
	c.chatSeq = 1

	c, _ = c.handleChatResult(startChatResultMsg{err: submit.ErrChatUnavailable, seq: 1})
	if c.mode != consultStartChat {
		t.Errorf("mode = %v, want to stay on the form after failure", c.mode)
	}
	if c.errText == "" {
		t.Error("failure should surface an error message")
	}
}

func TestStartChatSuccessPersistsRecordAndOpensChat(t *testing.T) {
	t.Parallel()

	deps := newTestDeps()
	c := newConsultationModel(deps)
	c.mode = consultStartChat
	c.submitting = true
	c.chatSeq = 1

	c, _ = c.handleChatResult(startChatResultMsg{topic: "Sengketa sewa", category: "Pertanahan", seq: 1})
	if c.mode != consultChat {
		t.Fatalf("mode = %v, want chat view after success", c.mode)
	}

	rec, ok := deps.Records.Conversation(c.currentChat)
	if !ok {
		t.Fatal("chat record not persisted")
	}
	if rec.Origin != store.OriginChatForm {
		t.Errorf("origin = %q, want chat_form", rec.Origin)
	}
	if rec.ID <= 6 {
		t.Errorf("allocated id %d collides with the seeded catalog", rec.ID)
	}
	if len(c.transcripts[rec.ID]) == 0 {
		t.Error("new chat should open with a welcome message")
	}
}

func TestStartChatStaleResultIgnored(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	c.mode = consultStartChat
	c.submitting = true
	c.chatSeq = 2

	c, _ = c.handleChatResult(startChatResultMsg{topic: "lama", seq: 1, err: errors.New("boom")})
	if c.errText != "" {
		t.Error("stale failure must not surface")
	}
	if !c.submitting {
		t.Error("stale result must not clear the in-flight flag")
	}
}

func TestChatReplyLandsInOriginatingChat(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	c, _ = c.openChat(3) // seeded active chat
	seeded := len(c.transcripts[3])

	c.chatInput.SetValue("Apakah saya perlu membawa dokumen?")
	c, cmd := c.updateChat(keyEnter())
	if cmd == nil {
		t.Fatal("sending should schedule a reply")
	}

	c, _ = c.update(chatReplyMsg{chatID: 3})
	got := len(c.transcripts[3])
	if got != seeded+2 {
		t.Errorf("transcript length = %d, want seeded %d + message + reply", got, seeded)
	}
}

func TestScheduleSavedFilesPendingEntry(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	c = c.resetScheduleForm(0, "", "")
	c.mode = consultSchedule
	c.schedTopic.SetValue("Mediasi kontrak")
	c.schedDate.SetValue("30 Okt 2025, 09:00 WIB")
	c.schedSubmit = true
	c.schedSeq = 1

	c, _ = c.handleScheduleSaved(scheduleSavedMsg{seq: 1})
	if c.mode != consultList {
		t.Fatalf("mode = %v, want list after filing", c.mode)
	}
	if len(c.extra) != 1 {
		t.Fatalf("extra entries = %d, want 1", len(c.extra))
	}
	if c.extra[0].Status != "Pending Approval" {
		t.Errorf("status = %q, want pending", c.extra[0].Status)
	}
}

func TestRescheduleMovesRejectedBackToPending(t *testing.T) {
	t.Parallel()

	c := newConsultationModel(newTestDeps())
	c = c.resetScheduleForm(4, "Review Kontrak Bisnis", "Bisnis") // seeded rejected entry
	c.mode = consultSchedule
	c.schedTopic.SetValue("Review Kontrak Bisnis")
	c.schedDate.SetValue("1 Nov 2025, 13:00 WIB")
	c.schedSubmit = true
	c.schedSeq = 1

	c, _ = c.handleScheduleSaved(scheduleSavedMsg{seq: 1})
	entry, ok := c.entryByID(4)
	if !ok {
		t.Fatal("seeded entry vanished")
	}
	if entry.Status != "Pending Approval" {
		t.Errorf("status = %q, want pending after reschedule", entry.Status)
	}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}
