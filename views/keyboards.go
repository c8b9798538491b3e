package views

import (
	"github.com/yeremiapane/matcha-kasir-bot/models"
)

// WelcomeKeyboard adalah keyboard layar pembuka; tombol admin hanya muncul
// untuk admin.
func WelcomeKeyboard(isAdmin bool) [][]Button {
	kb := [][]Button{
		Row(Button{Label: "✅ Mulai Sesi Transaksi", Data: models.CallbackStartTransaction}),
	}
	if isAdmin {
		kb = append(kb, Row(Button{Label: "🔧 Admin Panel", Data: models.CallbackAdminPanel}))
	}
	return kb
}

// MenuKeyboard menyusun item katalog dua kolom per baris, diikuti tombol
// checkout (dan admin panel untuk admin).
func MenuKeyboard(catalog models.Menu, isAdmin bool) [][]Button {
	items := catalog.Items()
	var kb [][]Button
	for i := 0; i < len(items); i += 2 {
		row := Row(Button{Label: items[i].Name, Data: models.ItemCallback(items[i].Name)})
		if i+1 < len(items) {
			row = append(row, Button{Label: items[i+1].Name, Data: models.ItemCallback(items[i+1].Name)})
		}
		kb = append(kb, row)
	}
	kb = append(kb, Row(Button{Label: "🛒 Checkout", Data: models.CallbackCheckout}))
	if isAdmin {
		kb = append(kb, Row(Button{Label: "🔧 Admin Panel", Data: models.CallbackAdminPanel}))
	}
	return kb
}

// ItemKeyboard adalah keyboard pengatur jumlah item.
func ItemKeyboard(item string) [][]Button {
	return [][]Button{
		Row(
			Button{Label: "➖", Data: models.CartCallback(models.CartDec, item)},
			Button{Label: "➕", Data: models.CartCallback(models.CartInc, item)},
		),
		Row(Button{Label: "⬅️ Kembali ke Menu", Data: models.CallbackBackToMenu}),
	}
}

// PaymentKeyboard adalah pilihan metode pembayaran saat checkout.
func PaymentKeyboard() [][]Button {
	return [][]Button{
		Row(
			Button{Label: "💵 Cash", Data: models.CallbackPayCash},
			Button{Label: "📱 QRIS", Data: models.CallbackPayQRIS},
		),
		Row(Button{Label: "⬅️ Kembali ke Menu", Data: models.CallbackBackToMenu}),
	}
}

// QRISKeyboard adalah konfirmasi pembayaran QRIS.
func QRISKeyboard() [][]Button {
	return [][]Button{
		Row(Button{Label: "✅ Pembayaran Selesai", Data: models.CallbackQRISDone}),
		Row(Button{Label: "❌ Batal", Data: models.CallbackBackToCheckout}),
	}
}

// AdminKeyboard adalah menu panel admin.
func AdminKeyboard() [][]Button {
	return [][]Button{
		Row(Button{Label: "📊 Rekap Penjualan", Data: models.CallbackAdminReport}),
		Row(Button{Label: "🗑️ Reset Data Harian", Data: models.CallbackAdminReset}),
		Row(Button{Label: "🔙 Halaman Utama", Data: models.CallbackEndSession}),
	}
}

// BackToAdminKeyboard dipakai layar rekap dan konfirmasi reset.
func BackToAdminKeyboard() [][]Button {
	return [][]Button{
		Row(Button{Label: "🔙 Kembali", Data: models.CallbackAdminPanel}),
	}
}

// PostTransactionKeyboard adalah pilihan langkah setelah transaksi selesai.
func PostTransactionKeyboard() [][]Button {
	return [][]Button{
		Row(Button{Label: "👤 Pelanggan Baru", Data: models.CallbackNewCustomer}),
		Row(Button{Label: "➕ Tambah Item (Pelanggan Sama)", Data: models.CallbackContinueCustomer}),
		Row(Button{Label: "🚪 Selesai Sesi (Tutup Toko)", Data: models.CallbackEndSession}),
	}
}
