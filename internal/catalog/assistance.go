package catalog

// AssistanceKind describes the two request types on the assistance form.
type AssistanceKind struct {
	Value       string
	Label       string
	Description string
}

// AssistanceKinds lists the selectable request types.
var AssistanceKinds = []AssistanceKind{
	{
		Value:       "pendampingan",
		Label:       "Permohonan Pendampingan Hukum",
		Description: "Pendampingan hukum untuk proses hukum yang sedang berjalan, seperti pendampingan dalam persidangan, mediasi, atau negosiasi kontrak.",
	},
	{
		Value:       "bantuan",
		Label:       "Permohonan Bantuan Hukum",
		Description: "Bantuan hukum untuk konsultasi mendalam, penyusunan dokumen legal, atau analisis masalah hukum yang dihadapi instansi.",
	},
}

// AssistanceCategories are the subject categories on the assistance form.
var AssistanceCategories = []string{
	"Proyek Pembangunan",
	"Kontrak & Perjanjian",
	"Sengketa Hukum",
	"Peraturan Daerah",
	"Lainnya",
}

// Application is a seeded legal-assistance application shown on the
// instansi applications list.
type Application struct {
	ID            int64
	Title         string
	Kind          string
	Institution   string
	Category      string
	Status        string
	SubmittedDate string
}

var applications = []Application{
	{
		ID:            1,
		Title:         "Pendampingan Pembangunan Puskesmas Kecamatan",
		Kind:          "pendampingan",
		Institution:   "Dinas Kesehatan Kabupaten Kota Baru",
		Category:      "Proyek Pembangunan",
		Status:        "Diproses",
		SubmittedDate: "15 Okt 2025",
	},
	{
		ID:            2,
		Title:         "Review Kontrak Pengadaan Alat Berat",
		Kind:          "bantuan",
		Institution:   "Dinas Pekerjaan Umum",
		Category:      "Kontrak & Perjanjian",
		Status:        "Selesai",
		SubmittedDate: "02 Okt 2025",
	},
	{
		ID:            3,
		Title:         "Konsultasi Rancangan Peraturan Daerah Retribusi",
		Kind:          "bantuan",
		Institution:   "Sekretariat Daerah",
		Category:      "Peraturan Daerah",
		Status:        "Menunggu Dokumen",
		SubmittedDate: "20 Okt 2025",
	},
}

// Applications returns the seeded application list.
func Applications() []Application {
	out := make([]Application, len(applications))
	copy(out, applications)
	return out
}

// ApplicationByID looks up a seeded application.
func ApplicationByID(id int64) (Application, bool) {
	for _, a := range applications {
		if a.ID == id {
			return a, true
		}
	}
	return Application{}, false
}
