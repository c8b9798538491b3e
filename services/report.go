package services

import (
	"sort"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

// recentDigestSize adalah jumlah transaksi terakhir yang ikut di rekap.
const recentDigestSize = 5

// Summarize mengagregasi snapshot ledger menjadi rekap penjualan: omzet
// total, subtotal per metode pembayaran, total qty per item (diurut nama),
// dan digest transaksi terbaru. Murni baca — ledger tidak disentuh.
func Summarize(entries []models.Transaction) models.SalesSummary {
	sum := models.SalesSummary{TransactionCount: len(entries)}

	itemTotals := make(map[string]int)
	for _, tx := range entries {
		sum.TotalRevenue += tx.Total
		switch tx.PaymentMethod {
		case models.PaymentCash:
			sum.CashTotal += tx.Total
		case models.PaymentQRIS:
			sum.QRISTotal += tx.Total
		}
		for item, qty := range tx.Items {
			itemTotals[item] += qty
		}
	}

	for name, qty := range itemTotals {
		sum.ItemsSold = append(sum.ItemsSold, models.ItemSale{Name: name, Qty: qty})
	}
	sort.Slice(sum.ItemsSold, func(i, j int) bool {
		return sum.ItemsSold[i].Name < sum.ItemsSold[j].Name
	})

	// Digest transaksi terbaru, urutan terbaru dulu
	n := recentDigestSize
	if n > len(entries) {
		n = len(entries)
	}
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		sum.Recent = append(sum.Recent, entries[i])
	}

	return sum
}
