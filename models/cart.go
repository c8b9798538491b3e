package models

// CartAction adalah aksi mutasi keranjang dari tombol +/- di detail item.
type CartAction string

const (
	CartInc CartAction = "inc"
	CartDec CartAction = "dec"
)

// Cart memetakan nama item ke jumlah. Invariant: tidak pernah ada entry
// dengan qty <= 0 — qty yang turun ke nol dihapus, bukan disimpan.
type Cart map[string]int

// Update mengembalikan keranjang baru hasil penerapan aksi; keranjang asal
// tidak diubah. Inc selalu menambah; Dec hanya mengurangi jika qty > 0 dan
// menghapus entry saat tepat mencapai nol. Tidak ada failure mode: item yang
// belum ada mulai dari nol.
func (c Cart) Update(item string, action CartAction) Cart {
	next := c.Clone()
	qty := next[item]

	switch action {
	case CartInc:
		next[item] = qty + 1
	case CartDec:
		if qty > 0 {
			if qty == 1 {
				delete(next, item)
			} else {
				next[item] = qty - 1
			}
		}
	}

	return next
}

// Clone membuat salinan lepas dari keranjang (dipakai juga untuk snapshot
// transaksi supaya ledger tidak memegang referensi keranjang hidup).
func (c Cart) Clone() Cart {
	next := make(Cart, len(c))
	for item, qty := range c {
		next[item] = qty
	}
	return next
}

func (c Cart) Qty(item string) int {
	return c[item]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
