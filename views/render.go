// Package views membangun render instruction: teks (subset Markdown) plus
// keyboard opsional. State machine mengembalikan Render dan tidak tahu
// apa-apa soal bagaimana pesan dikirim — itu urusan transport.
package views

// Button adalah satu tombol inline: label yang dilihat pengguna dan payload
// opaque yang akan dikirim balik saat tombol diklik.
type Button struct {
	Label string
	Data  string
}

// Render adalah satu instruksi tampilan.
type Render struct {
	// Text adalah isi pesan (Markdown). Kosong jika hanya Alert.
	Text string

	// Keyboard adalah grid tombol inline; nil berarti tanpa keyboard.
	Keyboard [][]Button

	// Alert, jika terisi, ditampilkan sebagai popup jawaban callback tanpa
	// mengubah pesan (mis. "keranjang kosong", "akses ditolak").
	Alert string

	// Photo, jika terisi, dikirim sebagai foto (PNG QRIS) dengan Text
	// sebagai caption.
	Photo []byte

	// Followup adalah pesan lanjutan yang dikirim setelah pesan utama
	// (struk lalu tombol langkah selanjutnya).
	Followup *Render
}

// Row membantu menyusun satu baris tombol.
func Row(buttons ...Button) []Button { return buttons }
