package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

func tx(name string, total int, method models.PaymentMethod, items models.Cart) models.Transaction {
	return models.Transaction{
		Timestamp:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		CustomerName:  name,
		Total:         total,
		PaymentMethod: method,
		Items:         items,
	}
}

func TestSummarizeEmptyLedger(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.TransactionCount)
	assert.Zero(t, sum.TotalRevenue)
	assert.Empty(t, sum.ItemsSold)
	assert.Empty(t, sum.Recent)
}

func TestSummarizeAggregates(t *testing.T) {
	entries := []models.Transaction{
		tx("Budi", 24000, models.PaymentCash, models.Cart{"🍵 Matcha OG": 2}),
		tx("Sari", 16000, models.PaymentQRIS, models.Cart{"🍓 Strawberry Matcha": 1}),
		tx("Andi", 27000, models.PaymentCash, models.Cart{"🍵 Matcha OG": 1, "🍯 Honey Matcha": 1}),
	}

	sum := Summarize(entries)

	assert.Equal(t, 3, sum.TransactionCount)
	assert.Equal(t, 67000, sum.TotalRevenue)
	assert.Equal(t, 51000, sum.CashTotal)
	assert.Equal(t, 16000, sum.QRISTotal)

	// Item diurut berdasarkan nama supaya deterministik
	assert.Equal(t, []models.ItemSale{
		{Name: "🍓 Strawberry Matcha", Qty: 1},
		{Name: "🍯 Honey Matcha", Qty: 1},
		{Name: "🍵 Matcha OG", Qty: 3},
	}, sum.ItemsSold)
}

func TestSummarizeRecentDigest(t *testing.T) {
	var entries []models.Transaction
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, n := range names {
		entries = append(entries, tx(n, 10000, models.PaymentCash, models.Cart{"🍵 Matcha OG": 1}))
	}

	sum := Summarize(entries)

	assert.Len(t, sum.Recent, 5)
	// Terbaru dulu
	assert.Equal(t, "G", sum.Recent[0].CustomerName)
	assert.Equal(t, "C", sum.Recent[4].CustomerName)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	entries := []models.Transaction{
		tx("Budi", 24000, models.PaymentCash, models.Cart{"🍵 Matcha OG": 2}),
	}

	_ = Summarize(entries)

	assert.Equal(t, 24000, entries[0].Total)
	assert.Equal(t, 2, entries[0].Items["🍵 Matcha OG"])
}
