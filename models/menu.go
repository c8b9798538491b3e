package models

// MenuItem merepresentasikan satu item menu. Nama dipakai sekaligus sebagai
// label tombol dan key keranjang; harga dalam Rupiah utuh.
type MenuItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Menu adalah katalog statis yang dimuat sekali saat start. Urutan item
// dipertahankan supaya keyboard menu selalu dirender sama.
type Menu struct {
	items []MenuItem
	index map[string]int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{
		items: make([]MenuItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(m.items, items)
	for i, it := range m.items {
		m.index[it.Name] = i
	}
	return m
}

// DefaultMenu mengembalikan katalog bawaan kedai.
func DefaultMenu() Menu {
	return NewMenu([]MenuItem{
		{Name: "🍵 Matcha OG", Price: 12000},
		{Name: "🍓 Strawberry Matcha", Price: 16000},
		{Name: "🍪 Matcha Cookies", Price: 16000},
		{Name: "🍫 Choco Matcha", Price: 16000},
		{Name: "☁️ Matcha Cloud", Price: 14000},
		{Name: "🍯 Honey Matcha", Price: 15000},
		{Name: "🥥 Coconut Matcha", Price: 15000},
		{Name: "🍊 Orange Matcha", Price: 14000},
	})
}

// Items mengembalikan daftar item sesuai urutan katalog.
func (m Menu) Items() []MenuItem {
	out := make([]MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Price mengembalikan harga item; ok=false jika item tidak dikenal.
func (m Menu) Price(name string) (int, bool) {
	i, ok := m.index[name]
	if !ok {
		return 0, false
	}
	return m.items[i].Price, true
}

func (m Menu) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

func (m Menu) Len() int {
	return len(m.items)
}

// Total menghitung total harga isi keranjang terhadap katalog ini.
// Item yang tidak dikenal dihitung 0 (tidak mungkin lewat UI, tapi jangan
// sampai membuat total salah).
func (m Menu) Total(cart Cart) int {
	total := 0
	for name, qty := range cart {
		price, _ := m.Price(name)
		total += price * qty
	}
	return total
}
