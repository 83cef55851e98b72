package catalog

// ProjectPhase is one step in a public project's timeline.
type ProjectPhase struct {
	Name   string
	Status string // "Selesai", "Berjalan", "Menunggu"
	Date   string
}

// Project is a public-transparency entry tracking a government project the
// prosecutor's office supervises.
type Project struct {
	ID       int64
	Title    string
	Budget   string
	Progress int // percent complete
	Status   string
	Phases   []ProjectPhase
}

var projects = []Project{
	{
		ID:       1,
		Title:    "Pembangunan Rumah Sakit Daerah Kota Baru",
		Budget:   "Rp 250 Miliar",
		Progress: 35,
		Status:   "Tahap Pembebasan Lahan Selesai",
		Phases: []ProjectPhase{
			{Name: "Perencanaan", Status: "Selesai", Date: "Jan 2025"},
			{Name: "Pembebasan Lahan", Status: "Selesai", Date: "Mar 2025"},
			{Name: "Konstruksi Fisik", Status: "Berjalan", Date: "Apr - Des 2025"},
			{Name: "Pengadaan Alat", Status: "Menunggu", Date: "2026"},
		},
	},
	{
		ID:       2,
		Title:    "Pembangunan Jalan Tol Kota Baru - Pelabuhan",
		Budget:   "Rp 1,2 Triliun",
		Progress: 55,
		Status:   "Konstruksi Segmen 1 & 2 Selesai",
		Phases: []ProjectPhase{
			{Name: "Perencanaan", Status: "Selesai", Date: "2024"},
			{Name: "Pembebasan Lahan", Status: "Selesai", Date: "Jan 2025"},
			{Name: "Konstruksi Segmen 1-2", Status: "Selesai", Date: "Feb - Sep 2025"},
			{Name: "Konstruksi Segmen 3-4", Status: "Berjalan", Date: "Okt 2025 - Jun 2026"},
		},
	},
	{
		ID:       3,
		Title:    "Revitalisasi Pasar Tradisional Sentral",
		Budget:   "Rp 85 Miliar",
		Progress: 80,
		Status:   "Tahap Finishing Interior",
		Phases: []ProjectPhase{
			{Name: "Perencanaan", Status: "Selesai", Date: "Des 2024"},
			{Name: "Pembongkaran & Relokasi", Status: "Selesai", Date: "Jan 2025"},
			{Name: "Konstruksi Utama", Status: "Selesai", Date: "Feb - Agt 2025"},
			{Name: "Finishing & Uji Coba", Status: "Berjalan", Date: "Sep - Nov 2025"},
		},
	},
}

// Projects returns the public-project catalog in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}
