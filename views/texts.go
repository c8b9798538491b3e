package views

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/matcha-kasir-bot/models"
	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

// CartSummary menghasilkan baris-baris isi keranjang, diurut mengikuti
// urutan katalog supaya render selalu deterministik.
func CartSummary(cart models.Cart, catalog models.Menu) string {
	if cart.IsEmpty() {
		return "Keranjang kosong."
	}
	var lines []string
	for _, it := range catalog.Items() {
		qty := cart.Qty(it.Name)
		if qty == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s x%d = %s", it.Name, qty, utils.FormatRupiah(it.Price*qty)))
	}
	// Item di luar katalog tidak mungkin lewat UI; kalau sampai ada, tetap
	// tampilkan supaya keranjang tidak terlihat "hilang".
	for item, qty := range cart {
		if !catalog.Has(item) {
			lines = append(lines, fmt.Sprintf("• %s x%d = %s", item, qty, utils.FormatRupiah(0)))
		}
	}
	return strings.Join(lines, "\n")
}

// WelcomeScreen adalah layar pembuka setelah /start.
func WelcomeScreen(isAdmin bool) Render {
	return Render{
		Text:     "🍵 *Selamat Datang di Matcha Kasir Bot!*\n\nSilakan mulai sesi untuk mencatat transaksi.",
		Keyboard: WelcomeKeyboard(isAdmin),
	}
}

// AskCustomerName meminta nama pelanggan (sesi baru).
func AskCustomerName() Render {
	return Render{Text: "👤 Silakan masukkan *nama pelanggan*:"}
}

// AskNextCustomerName meminta nama pelanggan berikutnya setelah transaksi.
func AskNextCustomerName() Render {
	return Render{Text: "👤 Silakan masukkan *nama pelanggan berikutnya*:"}
}

// InvalidName menolak nama di luar 2-50 karakter dan meminta ulang.
func InvalidName() Render {
	return Render{Text: "❌ Nama tidak valid (min 2, maks 50 karakter). Coba lagi:"}
}

// MainMenu adalah layar utama pemilihan item.
func MainMenu(s models.Session, catalog models.Menu, isAdmin bool) Render {
	text := fmt.Sprintf(
		"👤 *Pelanggan: %s*\n\n🛒 *Keranjang Saat Ini:*\n%s\n\n💰 *Total Sementara: %s*\n\nSilakan pilih item:",
		s.CustomerName,
		CartSummary(s.Cart, catalog),
		utils.FormatRupiah(catalog.Total(s.Cart)),
	)
	return Render{Text: text, Keyboard: MenuKeyboard(catalog, isAdmin)}
}

// ItemDetail adalah layar pengatur jumlah satu item.
func ItemDetail(item string, price, qty int) Render {
	text := fmt.Sprintf(
		"🛍️ *%s*\n\n💰 Harga: %s\n🔢 Jumlah: %d\n💵 Subtotal: %s",
		item,
		utils.FormatRupiah(price),
		qty,
		utils.FormatRupiah(price*qty),
	)
	return Render{Text: text, Keyboard: ItemKeyboard(item)}
}

// CheckoutSummary adalah ringkasan pesanan sebelum memilih pembayaran.
// Total dibaca dari cache sesi, bukan dihitung ulang.
func CheckoutSummary(s models.Session, catalog models.Menu) Render {
	text := fmt.Sprintf(
		"🧾 *Ringkasan Pesanan*\n\n👤 Pelanggan: %s\n\n🛍️ *Items:*\n%s\n\n💰 *Total: %s*\n\nPilih metode pembayaran:",
		s.CustomerName,
		CartSummary(s.Cart, catalog),
		utils.FormatRupiah(s.Total),
	)
	return Render{Text: text, Keyboard: PaymentKeyboard()}
}

// CashPrompt meminta nominal uang tunai yang diterima.
func CashPrompt(total int) Render {
	text := fmt.Sprintf(
		"💵 *Pembayaran Tunai*\n\n💰 Total: %s\n\nKetik nominal uang yang diterima:",
		utils.FormatRupiah(total),
	)
	return Render{Text: text}
}

// CashInvalidFormat menolak input nominal yang tidak bisa diparse.
func CashInvalidFormat(total int) Render {
	return Render{Text: fmt.Sprintf("❌ Format tidak valid. Masukkan angka saja.\nTotal: %s", utils.FormatRupiah(total))}
}

// CashShortage melaporkan kekurangan pembayaran tunai.
func CashShortage(shortage int) Render {
	return Render{Text: fmt.Sprintf("💰 Uang kurang. Dibutuhkan %s lagi.", utils.FormatRupiah(shortage))}
}

// QRISScreen menampilkan instruksi scan QRIS beserta gambar QR.
func QRISScreen(total int, png []byte) Render {
	text := fmt.Sprintf(
		"📱 *Pembayaran QRIS*\n\n💰 Total: %s\n\n🔲 Silakan scan QRIS dan konfirmasi pembayaran.",
		utils.FormatRupiah(total),
	)
	return Render{Text: text, Keyboard: QRISKeyboard(), Photo: png}
}

// Receipt menghasilkan struk transaksi plus pesan lanjutan berisi pilihan
// langkah berikutnya.
func Receipt(tx models.Transaction, catalog models.Menu) Render {
	sep := strings.Repeat("=", 25)
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 *STRUK PEMBAYARAN*\n%s\n", sep)
	fmt.Fprintf(&b, "👤 Pelanggan: %s\n", tx.CustomerName)
	fmt.Fprintf(&b, "📅 Waktu: %s\n", tx.Timestamp.Format("02/01/06 15:04"))
	fmt.Fprintf(&b, "💳 Metode: %s\n\n", tx.PaymentMethod)
	fmt.Fprintf(&b, "🛍️ *Pesanan:*\n%s\n\n", CartSummary(tx.Items, catalog))
	fmt.Fprintf(&b, "💰 *Total: %s*", utils.FormatRupiah(tx.Total))
	if tx.PaymentMethod == models.PaymentCash {
		fmt.Fprintf(&b, "\n💵 Tunai: %s\n💸 Kembalian: %s",
			utils.FormatRupiah(tx.CashReceived), utils.FormatRupiah(tx.Change))
	}
	fmt.Fprintf(&b, "\n\n✅ *LUNAS*\n%s", sep)

	return Render{
		Text: b.String(),
		Followup: &Render{
			Text:     "Pilih langkah selanjutnya:",
			Keyboard: PostTransactionKeyboard(),
		},
	}
}

// AdminPanel adalah layar panel admin.
func AdminPanel() Render {
	return Render{Text: "🔧 *Panel Admin*", Keyboard: AdminKeyboard()}
}

// AdminReport memformat rekap penjualan harian.
func AdminReport(sum models.SalesSummary) Render {
	if sum.TransactionCount == 0 {
		return Render{
			Text:     "📊 *Rekap Penjualan*\n\nBelum ada transaksi hari ini.",
			Keyboard: BackToAdminKeyboard(),
		}
	}

	var b strings.Builder
	b.WriteString("📊 *Rekap Penjualan Hari Ini*\n\n")
	b.WriteString("*Penjualan Item:*\n")
	for _, it := range sum.ItemsSold {
		fmt.Fprintf(&b, "• %s x%d\n", it.Name, it.Qty)
	}
	fmt.Fprintf(&b, "\n📈 Total Transaksi: %d\n", sum.TransactionCount)
	fmt.Fprintf(&b, "💵 Cash: %s\n", utils.FormatRupiah(sum.CashTotal))
	fmt.Fprintf(&b, "📱 QRIS: %s\n", utils.FormatRupiah(sum.QRISTotal))
	fmt.Fprintf(&b, "💰 *Total Omzet: %s*\n", utils.FormatRupiah(sum.TotalRevenue))

	if len(sum.Recent) > 0 {
		b.WriteString("\n*Transaksi Terakhir:*\n")
		for _, tx := range sum.Recent {
			fmt.Fprintf(&b, "• %s | %s | %s | %s\n",
				tx.Timestamp.Format("15:04"), tx.CustomerName,
				tx.PaymentMethod, utils.FormatRupiah(tx.Total))
		}
	}

	return Render{Text: b.String(), Keyboard: BackToAdminKeyboard()}
}

// AdminResetDone mengonfirmasi reset data harian.
func AdminResetDone() Render {
	return Render{
		Text:     "🗑️ *Data Penjualan Harian Berhasil Direset*",
		Keyboard: BackToAdminKeyboard(),
	}
}

// AccessDenied adalah balasan untuk pengirim di luar allow-list.
func AccessDenied() Render {
	return Render{Text: "🚫 *Akses Ditolak*. Anda tidak terdaftar."}
}

// AccessDeniedAlert adalah varian popup untuk klik tombol.
func AccessDeniedAlert() Render {
	return Render{Alert: "🚫 Akses Ditolak!"}
}

// EmptyCartAlert menolak checkout dengan keranjang kosong.
func EmptyCartAlert() Render {
	return Render{Alert: "🛒 Keranjang kosong!"}
}

// UnknownItemAlert menolak pilihan item yang tidak ada di katalog.
func UnknownItemAlert() Render {
	return Render{Alert: "❌ Item tidak dikenal."}
}

// StaleButtonAlert dibalas untuk tombol dari layar lama yang sudah tidak
// sesuai dengan state sekarang.
func StaleButtonAlert() Render {
	return Render{Alert: "ℹ️ Tombol sudah tidak berlaku. Gunakan tombol terbaru atau /start."}
}

// UseButtonsHint dibalas untuk teks bebas yang tidak sedang ditunggu.
func UseButtonsHint() Render {
	return Render{Text: "ℹ️ Silakan gunakan tombol yang tersedia atau /start untuk memulai ulang."}
}

// GenericErrorAlert dipakai saat render gagal karena error transport.
func GenericErrorAlert() Render {
	return Render{Alert: "❌ Terjadi kesalahan saat menampilkan menu."}
}
