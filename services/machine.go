package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yeremiapane/matcha-kasir-bot/models"
	"github.com/yeremiapane/matcha-kasir-bot/store"
	"github.com/yeremiapane/matcha-kasir-bot/utils"
	"github.com/yeremiapane/matcha-kasir-bot/views"
)

// Batas panjang nama pelanggan (inklusif), dihitung per karakter setelah
// trim.
const (
	minNameLen = 2
	maxNameLen = 50
)

// Roles menjawab pertanyaan otorisasi. Membership di allow-list statis
// adalah satu-satunya mekanisme akses.
type Roles interface {
	IsAdmin(uid int64) bool
	IsAuthorized(uid int64) bool
}

// Machine adalah state machine percakapan per user: diberi sesi sekarang dan
// satu event masuk, menghasilkan sesi baru plus satu render instruction.
// Semua transisi berjalan di dalam lock per-user milik session store,
// sehingga finalisasi transaksi (append ledger + pengosongan keranjang)
// terlihat sebagai satu langkah atomik.
type Machine struct {
	catalog  models.Menu
	sessions store.SessionStore
	ledger   *store.Ledger
	qris     *QRISService
	roles    Roles

	// Dipisah supaya bisa dikunci di test
	now   func() time.Time
	newID func() string
}

func NewMachine(catalog models.Menu, sessions store.SessionStore, ledger *store.Ledger, qris *QRISService, roles Roles) *Machine {
	return &Machine{
		catalog:  catalog,
		sessions: sessions,
		ledger:   ledger,
		qris:     qris,
		roles:    roles,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// HandleStart menangani command /start: reset penuh lalu layar Welcome.
func (m *Machine) HandleStart(uid int64) views.Render {
	var out views.Render
	m.sessions.Update(uid, func(s *models.Session) {
		s.FullReset()
		out = views.WelcomeScreen(m.roles.IsAdmin(uid))
	})
	utils.InfoLogger.Printf("Session reset via /start by user %d", uid)
	return out
}

// HandleText menangani baris teks bebas. Hanya dua view yang menunggu teks:
// GettingName dan WaitingCash; selain itu pengguna diarahkan ke tombol.
func (m *Machine) HandleText(uid int64, text string) views.Render {
	var out views.Render
	m.sessions.Update(uid, func(s *models.Session) {
		switch s.CurrentView {
		case models.ViewGettingName:
			out = m.handleName(s, text)
		case models.ViewWaitingCash:
			out = m.handleCashAmount(uid, s, text)
		default:
			out = views.UseButtonsHint()
		}
	})
	return out
}

func (m *Machine) handleName(s *models.Session, text string) views.Render {
	name := strings.TrimSpace(text)
	length := utf8.RuneCountInString(name)
	if length < minNameLen || length > maxNameLen {
		return views.InvalidName()
	}
	s.CustomerName = name
	s.CurrentView = models.ViewMenu
	return views.MainMenu(*s, m.catalog, m.roles.IsAdmin(s.UserID))
}

func (m *Machine) handleCashAmount(uid int64, s *models.Session, text string) views.Render {
	amount, ok := ParseCashAmount(text)
	if !ok {
		return views.CashInvalidFormat(s.Total)
	}
	if amount < s.Total {
		return views.CashShortage(s.Total - amount)
	}
	return m.finalize(uid, s, models.PaymentCash, amount)
}

// HandleEvent menangani satu klik tombol yang sudah diparse menjadi Event.
func (m *Machine) HandleEvent(uid int64, ev models.Event) views.Render {
	var out views.Render
	m.sessions.Update(uid, func(s *models.Session) {
		out = m.transition(uid, s, ev)
	})
	return out
}

func (m *Machine) transition(uid int64, s *models.Session, ev models.Event) views.Render {
	isAdmin := m.roles.IsAdmin(uid)

	switch ev.Kind {
	case models.EventStartTransaction:
		s.SoftReset()
		s.CurrentView = models.ViewGettingName
		return views.AskCustomerName()

	case models.EventEndSession:
		s.FullReset()
		return views.WelcomeScreen(isAdmin)

	case models.EventNewCustomer:
		s.SoftReset()
		s.CurrentView = models.ViewGettingName
		return views.AskNextCustomerName()

	case models.EventContinueCustomer:
		s.CurrentView = models.ViewMenu
		return views.MainMenu(*s, m.catalog, isAdmin)

	case models.EventBackToMenu:
		s.CurrentView = models.ViewMenu
		return views.MainMenu(*s, m.catalog, isAdmin)

	case models.EventItemDetail:
		if !m.catalog.Has(ev.Item) {
			return views.UnknownItemAlert()
		}
		s.CurrentView = models.ViewItemDetail
		s.CurrentItem = ev.Item
		price, _ := m.catalog.Price(ev.Item)
		return views.ItemDetail(ev.Item, price, s.Cart.Qty(ev.Item))

	case models.EventCartUpdate:
		// Update murni; dec saat qty 0 tidak mengubah apa-apa tapi klik
		// tetap harus di-ack (transport menelan "message is not modified")
		s.Cart = s.Cart.Update(ev.Item, ev.Action)
		s.CurrentView = models.ViewItemDetail
		s.CurrentItem = ev.Item
		price, _ := m.catalog.Price(ev.Item)
		return views.ItemDetail(ev.Item, price, s.Cart.Qty(ev.Item))

	case models.EventCheckout:
		if s.Cart.IsEmpty() {
			return views.EmptyCartAlert()
		}
		s.Total = m.catalog.Total(s.Cart)
		s.CurrentView = models.ViewCheckout
		return views.CheckoutSummary(*s, m.catalog)

	case models.EventBackToCheckout:
		// Batal dari layar QRIS: render ulang ringkasan dari total cache
		if s.CurrentView != models.ViewQRIS && s.CurrentView != models.ViewCheckout {
			return views.StaleButtonAlert()
		}
		s.CurrentView = models.ViewCheckout
		return views.CheckoutSummary(*s, m.catalog)

	case models.EventPayCash:
		if s.CurrentView != models.ViewCheckout {
			return views.StaleButtonAlert()
		}
		s.CurrentView = models.ViewWaitingCash
		return views.CashPrompt(s.Total)

	case models.EventPayQRIS:
		if s.CurrentView != models.ViewCheckout {
			return views.StaleButtonAlert()
		}
		s.CurrentView = models.ViewQRIS
		return views.QRISScreen(s.Total, m.qris.GeneratePNG(s.Total))

	case models.EventQRISDone:
		// Guard view supaya klik ganda tidak mencatat transaksi kosong
		if s.CurrentView != models.ViewQRIS {
			return views.StaleButtonAlert()
		}
		return m.finalize(uid, s, models.PaymentQRIS, 0)

	case models.EventAdminPanel:
		if !isAdmin {
			return views.AccessDeniedAlert()
		}
		s.CurrentView = models.ViewAdminPanel
		return views.AdminPanel()

	case models.EventAdminReport:
		if !isAdmin {
			return views.AccessDeniedAlert()
		}
		s.CurrentView = models.ViewAdminReport
		return views.AdminReport(Summarize(m.ledger.Snapshot()))

	case models.EventAdminReset:
		if !isAdmin {
			return views.AccessDeniedAlert()
		}
		m.ledger.Clear()
		utils.InfoLogger.Printf("Daily sales data reset by admin %d", uid)
		return views.AdminResetDone()
	}

	return views.UseButtonsHint()
}

// finalize mencatat transaksi ke ledger lalu mengosongkan keranjang dan
// total dalam satu langkah (masih di dalam lock per-user), kemudian pindah
// ke view post-transaction dengan struk.
func (m *Machine) finalize(uid int64, s *models.Session, method models.PaymentMethod, cashReceived int) views.Render {
	tx := models.Transaction{
		ID:            m.newID(),
		Timestamp:     m.now(),
		CashierID:     uid,
		CustomerName:  s.CustomerName,
		Items:         s.Cart.Clone(),
		Total:         s.Total,
		PaymentMethod: method,
	}
	if method == models.PaymentCash {
		tx.CashReceived = cashReceived
		tx.Change = cashReceived - s.Total
	}
	m.ledger.Append(tx)
	utils.InfoLogger.Printf("Transaction saved: %s - %s (%s)", tx.CustomerName, utils.FormatRupiah(tx.Total), method)

	s.Cart = models.Cart{}
	s.Total = 0
	s.CurrentItem = ""
	s.CurrentView = models.ViewPostTransaction

	return views.Receipt(tx, m.catalog)
}
