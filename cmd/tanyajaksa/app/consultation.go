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
	"tanyajaksa/internal/store"
)

// =============================================================================
// CONSULTATION TAB
// =============================================================================

// consultMode is the consultation tab's internal view selection.
type consultMode int

const (
	consultList consultMode = iota
	consultChoice
	consultStartChat
	consultSchedule
	consultDetail
	consultChat
)

// chatMessage is one transcript line; transcripts live in memory for the
// session, only the conversation record itself is persisted.
type chatMessage struct {
	fromUser bool
	text     string
}

const consultReplyDelay = 900 * time.Millisecond

// consultationModel owns the consultation view stack: list, new-consultation
// choice, start-chat form, schedule form, detail, and the chat view.
type consultationModel struct {
	deps Deps
	mode consultMode

	// List state. extra holds entries created this session; overrides remap
	// a seeded entry's status after a reschedule.
	listTab   int // 0 = Aktif, 1 = Riwayat
	cursor    int
	extra     []catalog.Consultation
	overrides map[int64]catalog.ConsultationStatus

	selectedID int64

	// Chat state.
	currentChat int64
	transcripts map[int64][]chatMessage
	chatInput   textinput.Model

	// Start-chat form.
	topicInput  textinput.Model
	categoryIdx int
	chatFocus   int
	submitting  bool
	chatSeq     int
	errText     string
	spinner     spinner.Model

	// Schedule form. rescheduleID != 0 means we are re-filing a rejected
	// consultation instead of creating a new one.
	schedTopic   textinput.Model
	schedDate    textinput.Model
	schedTypeIdx int // 0 = Online (Zoom), 1 = Tatap Muka
	schedCatIdx  int
	schedFocus   int
	schedSubmit  bool
	schedSeq     int
	rescheduleID int64
	notice       string

	choiceIdx int
}

func newConsultationModel(deps Deps) consultationModel {
	chatInput := textinput.New()
	chatInput.Placeholder = "tulis pesan..."
	chatInput.CharLimit = 280

	topic := textinput.New()
	topic.Placeholder = "ringkasan masalah hukum Anda"
	topic.CharLimit = 120

	schedTopic := textinput.New()
	schedTopic.Placeholder = "topik konsultasi"
	schedTopic.CharLimit = 120

	schedDate := textinput.New()
	schedDate.Placeholder = "mis. 28 Okt 2025, 10:00 WIB"
	schedDate.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = deps.Styles.Spinner

	return consultationModel{
		deps:        deps,
		overrides:   make(map[int64]catalog.ConsultationStatus),
		transcripts: make(map[int64][]chatMessage),
		chatInput:   chatInput,
		topicInput:  topic,
		schedTopic:  schedTopic,
		schedDate:   schedDate,
		spinner:     sp,
	}
}

// capturing reports whether a text field currently owns key input.
func (c consultationModel) capturing() bool {
	switch c.mode {
	case consultStartChat, consultSchedule, consultChat:
		return true
	default:
		return false
	}
}

// =============================================================================
// ENTRY LISTING
// =============================================================================

func isActiveStatus(st catalog.ConsultationStatus) bool {
	switch st {
	case catalog.StatusChatActive, catalog.StatusScheduled, catalog.StatusPending:
		return true
	default:
		return false
	}
}

// allEntries merges the seeded catalog (with status overrides) and the
// entries created this session, newest first within the extras.
func (c consultationModel) allEntries() []catalog.Consultation {
	out := catalog.Consultations()
	for i := range out {
		if st, ok := c.overrides[out[i].ID]; ok {
			out[i].Status = st
		}
	}
	return append(out, c.extra...)
}

// visibleEntries filters by the Aktif/Riwayat sub-tab.
func (c consultationModel) visibleEntries() []catalog.Consultation {
	var out []catalog.Consultation
	for _, e := range c.allEntries() {
		if isActiveStatus(e.Status) == (c.listTab == 0) {
			out = append(out, e)
		}
	}
	return out
}

func (c consultationModel) entryByID(id int64) (catalog.Consultation, bool) {
	for _, e := range c.allEntries() {
		if e.ID == id {
			return e, true
		}
	}
	return catalog.Consultation{}, false
}

// =============================================================================
// OPEN CHAT (cross-tab entry point)
// =============================================================================

// openChat jumps straight into the chat view for a conversation id. A zero id
// is the consumed-signal no-op. Records created outside this tab (assistance
// submissions) are surfaced as list entries on first open.
func (c consultationModel) openChat(id int64) (consultationModel, tea.Cmd) {
	if id == 0 {
		return c, nil
	}

	if _, ok := c.entryByID(id); !ok {
		if rec, found := c.deps.Records.Conversation(id); found {
			c.extra = append(c.extra, catalog.Consultation{
				ID:         rec.ID,
				Title:      rec.Topic,
				Type:       "Chat",
				Prosecutor: "Jaksa Piket",
				Status:     catalog.StatusChatActive,
				Date:       rec.CreatedAt.Format("2 Jan 2006"),
				Category:   rec.Category,
			})
		} else {
			logging.Get(logging.CategoryShell).Warnf("open chat %d: no record found", id)
			return c, nil
		}
	}

	c = c.seedTranscript(id)
	c.mode = consultChat
	c.currentChat = id
	c.chatInput.Focus()
	return c, nil
}

// seedTranscript installs the initial messages for a chat the first time it
// is opened: a welcome line for in-app conversations, canned history for the
// seeded ones.
func (c consultationModel) seedTranscript(id int64) consultationModel {
	if _, ok := c.transcripts[id]; ok {
		return c
	}

	if rec, found := c.deps.Records.Conversation(id); found && rec.IsNew() {
		c.transcripts[id] = []chatMessage{
			{text: "Selamat datang di layanan konsultasi Tanya Jaksa. Jaksa piket akan segera menanggapi pertanyaan Anda."},
		}
		return c
	}

	switch id {
	case 3:
		c.transcripts[id] = []chatMessage{
			{fromUser: true, text: "Selamat siang, saya ingin bertanya soal pembagian warisan tanpa wasiat."},
			{text: "Selamat siang. Tanpa wasiat, pembagian mengikuti hukum waris yang berlaku bagi keluarga Anda. Boleh dijelaskan susunan ahli warisnya?"},
			{fromUser: true, text: "Ibu saya dan tiga anak, salah satunya sudah meninggal."},
		}
	case 6:
		c.transcripts[id] = []chatMessage{
			{fromUser: true, text: "Apa saja syarat mengajukan gugatan cerai?"},
			{text: "Sesi konsultasi ini telah selesai. Ringkasan jawaban sudah dikirim ke email Anda."},
		}
	default:
		c.transcripts[id] = nil
	}
	return c
}

// =============================================================================
// UPDATE
// =============================================================================

func (c consultationModel) update(msg tea.Msg) (consultationModel, tea.Cmd) {
	switch msg := msg.(type) {
	case startChatResultMsg:
		return c.handleChatResult(msg)
	case scheduleSavedMsg:
		return c.handleScheduleSaved(msg)
	case chatReplyMsg:
		c.transcripts[msg.chatID] = append(c.transcripts[msg.chatID], chatMessage{
			text: "Terima kasih, pertanyaan Anda sudah kami terima. Jaksa piket sedang menelaah dan akan menjawab segera.",
		})
		return c, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case tea.KeyMsg:
		switch c.mode {
		case consultList:
			return c.updateList(msg)
		case consultChoice:
			return c.updateChoice(msg)
		case consultStartChat:
			return c.updateStartChat(msg)
		case consultSchedule:
			return c.updateSchedule(msg)
		case consultDetail:
			return c.updateDetail(msg)
		case consultChat:
			return c.updateChat(msg)
		}
	}
	return c, nil
}

func (c consultationModel) updateList(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	entries := c.visibleEntries()
	switch msg.String() {
	case "left", "h":
		c.listTab = 0
		c.cursor = 0
	case "right", "l":
		c.listTab = 1
		c.cursor = 0
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(entries)-1 {
			c.cursor++
		}
	case "n":
		c.mode = consultChoice
		c.choiceIdx = 0
		c.notice = ""
	case "enter":
		if c.cursor < len(entries) {
			e := entries[c.cursor]
			if e.IsChat() && e.Status == catalog.StatusChatActive {
				return c.openChat(e.ID)
			}
			c.selectedID = e.ID
			c.mode = consultDetail
		}
	}
	return c, nil
}

func (c consultationModel) updateChoice(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		c.choiceIdx = 1 - c.choiceIdx
	case "esc":
		c.mode = consultList
	case "enter":
		if c.choiceIdx == 0 {
			c = c.resetStartChatForm()
			c.mode = consultStartChat
		} else {
			c = c.resetScheduleForm(0, "", "")
			c.mode = consultSchedule
		}
	}
	return c, nil
}

// --- start-chat form ---

func (c consultationModel) resetStartChatForm() consultationModel {
	c.topicInput.SetValue("")
	c.topicInput.Focus()
	c.categoryIdx = 0
	c.chatFocus = 0
	c.errText = ""
	c.submitting = false
	return c
}

func (c consultationModel) updateStartChat(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	if c.submitting {
		return c, nil
	}

	switch msg.String() {
	case "esc":
		c.mode = consultChoice
		return c, nil
	case "tab", "down":
		c.chatFocus = (c.chatFocus + 1) % 3 // topic, category, submit
		c = c.syncStartChatFocus()
		return c, nil
	case "shift+tab", "up":
		c.chatFocus = (c.chatFocus + 2) % 3
		c = c.syncStartChatFocus()
		return c, nil
	case "left":
		if c.chatFocus == 1 && c.categoryIdx > 0 {
			c.categoryIdx--
		}
		return c, nil
	case "right":
		if c.chatFocus == 1 && c.categoryIdx < len(catalog.ChatCategories)-1 {
			c.categoryIdx++
		}
		return c, nil
	case "enter":
		return c.submitStartChat()
	}

	if c.chatFocus == 0 {
		var cmd tea.Cmd
		c.topicInput, cmd = c.topicInput.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c consultationModel) syncStartChatFocus() consultationModel {
	if c.chatFocus == 0 {
		c.topicInput.Focus()
	} else {
		c.topicInput.Blur()
	}
	return c
}

func (c consultationModel) submitStartChat() (consultationModel, tea.Cmd) {
	topic := strings.TrimSpace(c.topicInput.Value())
	if topic == "" {
		c.errText = "Topik wajib diisi"
		return c, nil
	}

	c.errText = ""
	c.submitting = true
	c.chatSeq++
	seq := c.chatSeq
	category := catalog.ChatCategories[c.categoryIdx]
	svc := c.deps.Submit
	return c, tea.Batch(c.spinner.Tick, func() tea.Msg {
		err := svc.SubmitChat(topic, category)
		return startChatResultMsg{topic: topic, category: category, err: err, seq: seq}
	})
}

// handleChatResult finishes a start-chat submission: allocate the id, persist
// the record, and drop straight into the chat. Stale results (an older
// submission, or the form already abandoned) are discarded.
func (c consultationModel) handleChatResult(msg startChatResultMsg) (consultationModel, tea.Cmd) {
	if !c.submitting || msg.seq != c.chatSeq {
		return c, nil
	}
	c.submitting = false

	if msg.err != nil {
		c.errText = msg.err.Error()
		return c, nil
	}

	id := c.deps.IDs.Next()
	rec := store.Conversation{
		ID:        id,
		Topic:     msg.topic,
		Category:  msg.category,
		Kind:      "chat",
		Origin:    store.OriginChatForm,
		CreatedAt: time.Now(),
	}
	if err := c.deps.Records.SaveConversation(rec); err != nil {
		logging.Get(logging.CategoryStore).Warnf("save chat record %d: %v", id, err)
	}
	logging.Get(logging.CategoryShell).Infof("chat %d started (topic=%q)", id, msg.topic)
	return c.openChat(id)
}

// --- schedule form ---

var consultTypes = []string{"Online (Zoom)", "Tatap Muka"}

func (c consultationModel) resetScheduleForm(rescheduleID int64, topic, category string) consultationModel {
	c.schedTopic.SetValue(topic)
	c.schedTopic.Focus()
	c.schedDate.SetValue("")
	c.schedTypeIdx = 0
	c.schedCatIdx = 0
	for i, cat := range catalog.ChatCategories {
		if cat == category {
			c.schedCatIdx = i
		}
	}
	c.schedFocus = 0
	c.schedSubmit = false
	c.rescheduleID = rescheduleID
	c.errText = ""
	return c
}

func (c consultationModel) updateSchedule(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	if c.schedSubmit {
		return c, nil
	}

	const fields = 5 // topic, type, category, date, submit
	switch msg.String() {
	case "esc":
		c.mode = consultList
		return c, nil
	case "tab", "down":
		c.schedFocus = (c.schedFocus + 1) % fields
		c = c.syncScheduleFocus()
		return c, nil
	case "shift+tab", "up":
		c.schedFocus = (c.schedFocus + fields - 1) % fields
		c = c.syncScheduleFocus()
		return c, nil
	case "left":
		switch c.schedFocus {
		case 1:
			c.schedTypeIdx = (c.schedTypeIdx + 1) % len(consultTypes)
		case 2:
			if c.schedCatIdx > 0 {
				c.schedCatIdx--
			}
		}
		return c, nil
	case "right":
		switch c.schedFocus {
		case 1:
			c.schedTypeIdx = (c.schedTypeIdx + 1) % len(consultTypes)
		case 2:
			if c.schedCatIdx < len(catalog.ChatCategories)-1 {
				c.schedCatIdx++
			}
		}
		return c, nil
	case "enter":
		return c.submitSchedule()
	}

	var cmd tea.Cmd
	switch c.schedFocus {
	case 0:
		c.schedTopic, cmd = c.schedTopic.Update(msg)
	case 3:
		c.schedDate, cmd = c.schedDate.Update(msg)
	}
	return c, cmd
}

func (c consultationModel) syncScheduleFocus() consultationModel {
	c.schedTopic.Blur()
	c.schedDate.Blur()
	switch c.schedFocus {
	case 0:
		c.schedTopic.Focus()
	case 3:
		c.schedDate.Focus()
	}
	return c
}

func (c consultationModel) submitSchedule() (consultationModel, tea.Cmd) {
	topic := strings.TrimSpace(c.schedTopic.Value())
	date := strings.TrimSpace(c.schedDate.Value())
	if topic == "" || date == "" {
		c.errText = "Topik dan waktu wajib diisi"
		return c, nil
	}

	c.errText = ""
	c.schedSubmit = true
	c.schedSeq++
	seq := c.schedSeq
	return c, tea.Batch(c.spinner.Tick, tea.Tick(c.deps.Config.ChatDelay(), func(time.Time) tea.Msg {
		return scheduleSavedMsg{seq: seq}
	}))
}

// handleScheduleSaved files the request as a pending entry. Scheduled
// consultations only live for the session; the prosecutor-side approval flow
// does not exist in this client.
func (c consultationModel) handleScheduleSaved(msg scheduleSavedMsg) (consultationModel, tea.Cmd) {
	if !c.schedSubmit || msg.seq != c.schedSeq {
		return c, nil
	}
	c.schedSubmit = false

	if c.rescheduleID != 0 {
		c.overrides[c.rescheduleID] = catalog.StatusPending
		c.notice = "Permintaan jadwal ulang diajukan, menunggu persetujuan"
	} else {
		c.extra = append(c.extra, catalog.Consultation{
			ID:            c.deps.IDs.Next(),
			Title:         strings.TrimSpace(c.schedTopic.Value()),
			Type:          consultTypes[c.schedTypeIdx],
			Prosecutor:    "Menunggu penugasan",
			Status:        catalog.StatusPending,
			Date:          strings.TrimSpace(c.schedDate.Value()),
			Category:      catalog.ChatCategories[c.schedCatIdx],
			SubmittedDate: time.Now().Format("2 Jan 2006"),
		})
		c.notice = "Pengajuan konsultasi terkirim, menunggu persetujuan"
	}

	c.mode = consultList
	c.listTab = 0
	c.cursor = 0
	return c, nil
}

// --- detail ---

func (c consultationModel) updateDetail(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	entry, ok := c.entryByID(c.selectedID)
	if !ok {
		c.mode = consultList
		return c, nil
	}

	switch msg.String() {
	case "esc":
		c.mode = consultList
		c.selectedID = 0
	case "enter":
		if entry.IsChat() && entry.Status == catalog.StatusChatActive {
			return c.openChat(entry.ID)
		}
	case "r":
		if entry.Status == catalog.StatusRejected {
			c = c.resetScheduleForm(entry.ID, entry.Title, entry.Category)
			c.mode = consultSchedule
		}
	}
	return c, nil
}

// --- chat ---

func (c consultationModel) updateChat(msg tea.KeyMsg) (consultationModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.mode = consultList
		c.currentChat = 0
		c.chatInput.Blur()
		return c, nil
	case "ctrl+f":
		// Upgrade the chat into a formal consultation request.
		if entry, ok := c.entryByID(c.currentChat); ok {
			c = c.resetScheduleForm(0, entry.Title, entry.Category)
			c.mode = consultSchedule
		}
		return c, nil
	case "enter":
		if c.chatReadOnly() {
			return c, nil
		}
		text := strings.TrimSpace(c.chatInput.Value())
		if text == "" {
			return c, nil
		}
		c.transcripts[c.currentChat] = append(c.transcripts[c.currentChat], chatMessage{fromUser: true, text: text})
		c.chatInput.SetValue("")
		id := c.currentChat
		return c, tea.Tick(consultReplyDelay, func(time.Time) tea.Msg {
			return chatReplyMsg{chatID: id}
		})
	}

	var cmd tea.Cmd
	c.chatInput, cmd = c.chatInput.Update(msg)
	return c, cmd
}

// chatReadOnly reports whether the open chat has ended.
func (c consultationModel) chatReadOnly() bool {
	entry, ok := c.entryByID(c.currentChat)
	return ok && entry.Status == catalog.StatusDone
}

// =============================================================================
// VIEW
// =============================================================================

func (c consultationModel) view(width int) string {
	switch c.mode {
	case consultChoice:
		return c.viewChoice()
	case consultStartChat:
		return c.viewStartChat(width)
	case consultSchedule:
		return c.viewSchedule(width)
	case consultDetail:
		return c.viewDetail(width)
	case consultChat:
		return c.viewChat(width)
	default:
		return c.viewList(width)
	}
}

func (c consultationModel) statusStyle(st catalog.ConsultationStatus) lipgloss.Style {
	s := c.deps.Styles
	switch st {
	case catalog.StatusChatActive:
		return s.Success
	case catalog.StatusScheduled:
		return s.Info
	case catalog.StatusPending:
		return s.Warning
	case catalog.StatusRejected:
		return s.Error
	default:
		return s.Muted
	}
}

func (c consultationModel) viewList(width int) string {
	s := c.deps.Styles
	entries := c.visibleEntries()

	tabs := []string{"Aktif", "Riwayat"}
	var tabRow []string
	for i, label := range tabs {
		if i == c.listTab {
			tabRow = append(tabRow, s.TabActive.Render(label))
		} else {
			tabRow = append(tabRow, s.TabInactive.Render(label))
		}
	}

	rows := []string{
		s.Title.Render("Konsultasi Hukum"),
		strings.Join(tabRow, " "),
		"",
	}

	if c.notice != "" {
		rows = append(rows, s.Success.Render(c.notice), "")
	}

	if len(entries) == 0 {
		rows = append(rows, s.Muted.Render("Belum ada konsultasi di sini."))
	}
	for i, e := range entries {
		line := fmt.Sprintf("%s  %s", e.Title, c.statusStyle(e.Status).Render(string(e.Status)))
		sub := s.Muted.Render("   " + e.Type + " • " + e.Date)
		if i == c.cursor {
			rows = append(rows, s.Selected.Render("▸ "+line), sub)
		} else {
			rows = append(rows, s.Body.Render("  "+line), sub)
		}
	}

	rows = append(rows, "", s.Footer.Render("←/→: tab • enter: buka • n: konsultasi baru"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c consultationModel) viewChoice() string {
	s := c.deps.Styles
	options := []struct{ title, desc string }{
		{"Chat Konsultasi", "Tanya jawab langsung dengan jaksa piket melalui chat."},
		{"Konsultasi Terjadwal", "Ajukan sesi online atau tatap muka pada waktu tertentu."},
	}

	rows := []string{s.Title.Render("Konsultasi Baru"), ""}
	for i, o := range options {
		title := o.title
		if i == c.choiceIdx {
			rows = append(rows, s.Selected.Render("▸ "+title), s.Muted.Render("   "+o.desc))
		} else {
			rows = append(rows, s.Body.Render("  "+title), s.Muted.Render("   "+o.desc))
		}
	}
	rows = append(rows, "", s.Footer.Render("enter: pilih • esc: batal"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c consultationModel) viewStartChat(width int) string {
	s := c.deps.Styles

	topicBox := s.Input
	if c.chatFocus == 0 {
		topicBox = s.InputFocus
	}
	category := catalog.ChatCategories[c.categoryIdx]
	catRow := "   " + category
	if c.chatFocus == 1 {
		catRow = s.Selected.Render(" ◀ " + category + " ▶ ")
	}
	submit := s.Muted.Render(" Mulai Chat ")
	if c.chatFocus == 2 {
		submit = s.Selected.Render(" Mulai Chat ")
	}

	rows := []string{
		s.Title.Render("Mulai Chat Konsultasi"),
		s.Muted.Render("Topik"),
		topicBox.Render(c.topicInput.View()),
		s.Muted.Render("Kategori"),
		catRow,
		"",
		submit,
	}
	if c.submitting {
		rows = append(rows, "", c.spinner.View()+s.Muted.Render(" Menghubungkan dengan jaksa piket..."))
	}
	if c.errText != "" {
		rows = append(rows, "", s.Error.Render(c.errText))
	}
	rows = append(rows, "", s.Footer.Render("tab: pindah kolom • enter: kirim • esc: kembali"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c consultationModel) viewSchedule(width int) string {
	s := c.deps.Styles

	title := "Ajukan Konsultasi Terjadwal"
	if c.rescheduleID != 0 {
		title = "Ajukan Jadwal Ulang"
	}

	box := func(ti textinput.Model, focused bool) string {
		if focused {
			return s.InputFocus.Render(ti.View())
		}
		return s.Input.Render(ti.View())
	}
	pick := func(value string, focused bool) string {
		if focused {
			return s.Selected.Render(" ◀ " + value + " ▶ ")
		}
		return "   " + value
	}
	submit := s.Muted.Render(" Ajukan ")
	if c.schedFocus == 4 {
		submit = s.Selected.Render(" Ajukan ")
	}

	rows := []string{
		s.Title.Render(title),
		s.Muted.Render("Topik"),
		box(c.schedTopic, c.schedFocus == 0),
		s.Muted.Render("Jenis"),
		pick(consultTypes[c.schedTypeIdx], c.schedFocus == 1),
		s.Muted.Render("Kategori"),
		pick(catalog.ChatCategories[c.schedCatIdx], c.schedFocus == 2),
		s.Muted.Render("Waktu"),
		box(c.schedDate, c.schedFocus == 3),
		"",
		submit,
	}
	if c.schedSubmit {
		rows = append(rows, "", c.spinner.View()+s.Muted.Render(" Mengirim pengajuan..."))
	}
	if c.errText != "" {
		rows = append(rows, "", s.Error.Render(c.errText))
	}
	rows = append(rows, "", s.Footer.Render("tab: pindah kolom • enter: ajukan • esc: batal"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c consultationModel) viewDetail(width int) string {
	s := c.deps.Styles
	entry, ok := c.entryByID(c.selectedID)
	if !ok {
		return s.Content.Render(s.Muted.Render("Konsultasi tidak ditemukan."))
	}

	rows := []string{
		s.Title.Render(entry.Title),
		c.statusStyle(entry.Status).Render(string(entry.Status)),
		s.Body.Render(entry.Type + " • " + entry.Category),
		s.Body.Render(entry.Prosecutor),
		s.Muted.Render(entry.Date),
	}
	if entry.SubmittedDate != "" {
		rows = append(rows, s.Muted.Render("Diajukan "+entry.SubmittedDate))
	}
	if entry.RejectionReason != "" {
		rows = append(rows, "", s.Error.Render(entry.RejectionReason))
	}

	hints := []string{"esc: kembali"}
	if entry.IsChat() && entry.Status == catalog.StatusChatActive {
		hints = append([]string{"enter: buka chat"}, hints...)
	}
	if entry.Status == catalog.StatusRejected {
		hints = append([]string{"r: jadwal ulang"}, hints...)
	}
	rows = append(rows, "", s.Footer.Render(strings.Join(hints, " • ")))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c consultationModel) viewChat(width int) string {
	s := c.deps.Styles
	entry, _ := c.entryByID(c.currentChat)

	rows := []string{
		s.Title.Render(entry.Title),
		s.Muted.Render(entry.Prosecutor),
		s.RenderDivider(min(width-6, 60)),
	}

	if rec, found := c.deps.Records.Conversation(c.currentChat); found && rec.IsNew() {
		rows = append(rows, s.Info.Render("Konsultasi baru — "+rec.Category), "")
	}

	for _, m := range c.transcripts[c.currentChat] {
		if m.fromUser {
			rows = append(rows, s.Bold.Render("Anda: ")+s.Body.Render(m.text))
		} else {
			rows = append(rows, s.Info.Render("Jaksa: ")+s.Body.Render(m.text))
		}
	}

	rows = append(rows, "", s.RenderDivider(min(width-6, 60)))
	if c.chatReadOnly() {
		rows = append(rows, s.Muted.Render("Sesi konsultasi telah berakhir."))
	} else {
		rows = append(rows, s.InputFocus.Render(c.chatInput.View()))
	}
	rows = append(rows, s.Footer.Render("enter: kirim • ctrl+f: ajukan konsultasi formal • esc: kembali"))
	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
