package store

import (
	"sync"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

// Ledger adalah catatan transaksi harian: append-only, hanya bisa dikosongkan
// lewat reset admin. Satu mutex penulis menjamin append tidak pernah
// bersilangan dengan reset — append yang berbarengan dengan reset terjadi
// sepenuhnya sebelum atau sepenuhnya sesudah reset.
type Ledger struct {
	mu      sync.Mutex
	entries []models.Transaction
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append menambahkan satu transaksi yang sudah final.
func (l *Ledger) Append(tx models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, tx)
}

// Snapshot mengembalikan salinan seluruh isi ledger sesuai urutan append.
// Pembaca bebas memproses salinan ini tanpa memegang lock.
func (l *Ledger) Snapshot() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear mengosongkan ledger (reset data harian oleh admin).
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
