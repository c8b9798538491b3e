package models

// View menandai apa yang sedang dilihat pengguna, sekaligus input apa yang
// diharapkan berikutnya dari pengguna tersebut.
type View string

const (
	ViewWelcome         View = "welcome"
	ViewGettingName     View = "getting_name"
	ViewMenu            View = "menu"
	ViewItemDetail      View = "item_detail"
	ViewCheckout        View = "checkout"
	ViewWaitingCash     View = "waiting_cash"
	ViewQRIS            View = "qris"
	ViewPostTransaction View = "post_transaction"
	ViewAdminPanel      View = "admin_panel"
	ViewAdminReport     View = "admin_rekap"
)

// Session adalah state percakapan satu pengguna. Hidup hanya di memori
// selama proses berjalan; tidak ada persistensi.
type Session struct {
	UserID       int64
	CustomerName string
	Cart         Cart
	CurrentView  View

	// Total di-cache saat checkout dan menjadi acuan pembanding pembayaran
	// sampai sesi di-reset.
	Total int

	// CurrentItem hanya terisi saat CurrentView == ViewItemDetail.
	CurrentItem string
}

// NewSession membuat sesi segar di view Welcome.
func NewSession(uid int64) Session {
	return Session{
		UserID:      uid,
		Cart:        Cart{},
		CurrentView: ViewWelcome,
	}
}

// SoftReset mengosongkan nama/keranjang/total untuk pelanggan berikutnya,
// tanpa mengubah view. Otorisasi tidak disimpan di sesi sehingga tidak
// tersentuh.
func (s *Session) SoftReset() {
	s.CustomerName = ""
	s.Cart = Cart{}
	s.Total = 0
	s.CurrentItem = ""
}

// FullReset mengembalikan sesi sepenuhnya ke layar Welcome.
func (s *Session) FullReset() {
	s.SoftReset()
	s.CurrentView = ViewWelcome
}
