package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

func TestCartSummaryFollowsCatalogOrder(t *testing.T) {
	catalog := models.NewMenu([]models.MenuItem{
		{Name: "B", Price: 2000},
		{Name: "A", Price: 1000},
	})
	cart := models.Cart{"A": 1, "B": 2}

	got := CartSummary(cart, catalog)
	assert.Equal(t, "• B x2 = Rp4.000\n• A x1 = Rp1.000", got)
}

func TestCartSummaryEmpty(t *testing.T) {
	assert.Equal(t, "Keranjang kosong.", CartSummary(models.Cart{}, models.DefaultMenu()))
}

func TestReceiptCash(t *testing.T) {
	tx := models.Transaction{
		Timestamp:     time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Budi",
		Items:         models.Cart{"🍵 Matcha OG": 2},
		Total:         24000,
		PaymentMethod: models.PaymentCash,
		CashReceived:  30000,
		Change:        6000,
	}

	r := Receipt(tx, models.DefaultMenu())

	assert.Contains(t, r.Text, "STRUK PEMBAYARAN")
	assert.Contains(t, r.Text, "Pelanggan: Budi")
	assert.Contains(t, r.Text, "01/06/25 14:30")
	assert.Contains(t, r.Text, "Metode: Cash")
	assert.Contains(t, r.Text, "Tunai: Rp30.000")
	assert.Contains(t, r.Text, "Kembalian: Rp6.000")
	require.NotNil(t, r.Followup)
	assert.Len(t, r.Followup.Keyboard, 3)
}

func TestReceiptQRISOmitsCashLines(t *testing.T) {
	tx := models.Transaction{
		Timestamp:     time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Sari",
		Items:         models.Cart{"🍓 Strawberry Matcha": 1},
		Total:         16000,
		PaymentMethod: models.PaymentQRIS,
	}

	r := Receipt(tx, models.DefaultMenu())
	assert.Contains(t, r.Text, "Metode: QRIS")
	assert.NotContains(t, r.Text, "Kembalian")
}

func TestMenuKeyboardLayout(t *testing.T) {
	catalog := models.DefaultMenu()

	kb := MenuKeyboard(catalog, false)
	// 8 item dua kolom = 4 baris, plus baris checkout
	require.Len(t, kb, 5)
	assert.Len(t, kb[0], 2)
	assert.Equal(t, models.CallbackCheckout, kb[4][0].Data)

	adminKb := MenuKeyboard(catalog, true)
	require.Len(t, adminKb, 6)
	assert.Equal(t, models.CallbackAdminPanel, adminKb[5][0].Data)
}

func TestMenuKeyboardOddItemCount(t *testing.T) {
	catalog := models.NewMenu([]models.MenuItem{
		{Name: "A", Price: 1000},
		{Name: "B", Price: 2000},
		{Name: "C", Price: 3000},
	})

	kb := MenuKeyboard(catalog, false)
	require.Len(t, kb, 3)
	assert.Len(t, kb[0], 2)
	assert.Len(t, kb[1], 1, "item ganjil menyisakan baris satu kolom")
}

func TestAdminReportEmpty(t *testing.T) {
	r := AdminReport(models.SalesSummary{})
	assert.Contains(t, r.Text, "Belum ada transaksi")
}

func TestAdminReportFull(t *testing.T) {
	r := AdminReport(models.SalesSummary{
		TransactionCount: 2,
		TotalRevenue:     40000,
		CashTotal:        24000,
		QRISTotal:        16000,
		ItemsSold: []models.ItemSale{
			{Name: "🍓 Strawberry Matcha", Qty: 1},
			{Name: "🍵 Matcha OG", Qty: 2},
		},
		Recent: []models.Transaction{
			{Timestamp: time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC), CustomerName: "Sari", PaymentMethod: models.PaymentQRIS, Total: 16000},
		},
	})

	assert.Contains(t, r.Text, "Total Transaksi: 2")
	assert.Contains(t, r.Text, "💵 Cash: Rp24.000")
	assert.Contains(t, r.Text, "📱 QRIS: Rp16.000")
	assert.Contains(t, r.Text, "Total Omzet: Rp40.000")
	assert.Contains(t, r.Text, "🍵 Matcha OG x2")
	assert.Contains(t, r.Text, "15:00 | Sari | QRIS | Rp16.000")
}
