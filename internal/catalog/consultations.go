// Package catalog ships the demo data the prototype hard-codes: seeded
// consultations, legal-assistance applications, education articles, public
// projects, and demo accounts. Everything here is read-only; records created
// at runtime live in the store, not in the catalog.
package catalog

// ConsultationStatus values mirror the prototype's Indonesian labels; they
// double as display strings.
type ConsultationStatus string

const (
	StatusChatActive ConsultationStatus = "Chat Aktif"
	StatusScheduled  ConsultationStatus = "Dijadwalkan"
	StatusPending    ConsultationStatus = "Pending Approval"
	StatusRejected   ConsultationStatus = "Ditolak"
	StatusDone       ConsultationStatus = "Selesai"
)

// Consultation is a seeded consultation entry.
type Consultation struct {
	ID              int64
	Title           string
	Type            string // "Chat", "Online (Zoom)", "Tatap Muka"
	Prosecutor      string
	Status          ConsultationStatus
	Date            string
	Category        string
	SubmittedDate   string
	RejectionReason string
}

// IsChat reports whether the entry is a chat-style consultation.
func (c Consultation) IsChat() bool { return c.Type == "Chat" }

var consultations = []Consultation{
	{
		ID:         1,
		Title:      "Konsultasi Warisan Keluarga",
		Type:       "Online (Zoom)",
		Prosecutor: "Jaksa Muda: Siti Aminah, S.H.",
		Status:     StatusScheduled,
		Date:       "25 Okt 2025, 14:00 WIB",
		Category:   "Warisan",
	},
	{
		ID:            2,
		Title:         "Sengketa Tanah dengan Tetangga",
		Type:          "Tatap Muka",
		Prosecutor:    "Jaksa: Ahmad Yani, S.H., M.H.",
		Status:        StatusPending,
		Date:          "23 Okt 2025, 10:00 WIB",
		Category:      "Tanah",
		SubmittedDate: "21 Okt 2025",
	},
	{
		ID:         3,
		Title:      "Konsultasi Hukum Waris",
		Type:       "Chat",
		Prosecutor: "Jaksa: Siti Aminah, S.H.",
		Status:     StatusChatActive,
		Date:       "Dimulai 18 Okt 2025",
		Category:   "Warisan",
	},
	{
		ID:              4,
		Title:           "Review Kontrak Bisnis",
		Type:            "Online (Zoom)",
		Prosecutor:      "Jaksa: Dr. Budi Santoso, S.H.",
		Status:          StatusRejected,
		Date:            "22 Okt 2025, 15:00 WIB",
		Category:        "Bisnis",
		RejectionReason: "Mohon maaf, jadwal bentrok. Silakan pilih waktu lain.",
	},
	{
		ID:         5,
		Title:      "Mediasi Sengketa Tanah",
		Type:       "Tatap Muka",
		Prosecutor: "Jaksa: Ahmad Yani, S.H., M.H.",
		Status:     StatusDone,
		Date:       "12 Okt 2025, 10:00 WIB",
		Category:   "Tanah",
	},
	{
		ID:         6,
		Title:      "Pertanyaan Hukum Perceraian",
		Type:       "Chat",
		Prosecutor: "Jaksa: Dewi Sartika, S.H.",
		Status:     StatusDone,
		Date:       "10 Okt 2025",
		Category:   "Keluarga",
	},
}

// Consultations returns the seeded consultation list in display order.
func Consultations() []Consultation {
	out := make([]Consultation, len(consultations))
	copy(out, consultations)
	return out
}

// ConsultationByID looks up a seeded consultation.
func ConsultationByID(id int64) (Consultation, bool) {
	for _, c := range consultations {
		if c.ID == id {
			return c, true
		}
	}
	return Consultation{}, false
}

// MaxSeedConversationID is the highest id in the seeded catalog; the
// identifier allocator starts above it.
func MaxSeedConversationID() int64 {
	var max int64
	for _, c := range consultations {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// ChatCategories are the selectable categories on the start-chat form.
var ChatCategories = []string{
	"Pertanahan",
	"Hukum Waris",
	"Pernikahan",
	"Perceraian",
	"Pendirian Perusahaan",
	"Utang Piutang",
	"Lainnya",
}
