package models

import (
	"time"
)

// PaymentMethod adalah metode pembayaran yang didukung kasir.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Cash"
	PaymentQRIS PaymentMethod = "QRIS"
)

// Transaction adalah satu entri ledger: transaksi yang sudah selesai.
// Immutable setelah dibuat. Items adalah snapshot lepas dari keranjang dan
// Total dibekukan saat transaksi dibuat — tidak pernah dihitung ulang dari
// katalog.
type Transaction struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	CashierID     int64         `json:"cashier_id"`
	CustomerName  string        `json:"customer_name"`
	Items         Cart          `json:"items"`
	Total         int           `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`

	// Hanya terisi untuk pembayaran tunai.
	CashReceived int `json:"cash_received,omitempty"`
	Change       int `json:"change,omitempty"`
}
