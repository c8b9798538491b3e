package services

import (
	"strconv"
	"strings"
)

// maxCashDigits adalah guard overflow: nominal tunai dibatasi di bawah
// 10 digit.
const maxCashDigits = 10

// ParseCashAmount membersihkan dan mengparse input nominal tunai bebas
// format. Pemisah ribuan (".", ",", spasi) dan prefix mata uang "Rp"
// (case-insensitive) dibuang dulu; sisanya harus non-empty, semua digit, dan
// kurang dari 10 digit. Fungsi murni: input sama selalu menghasilkan output
// sama. Contoh: "20.000" -> 20000, "Rp 20000" -> 20000.
func ParseCashAmount(text string) (int, bool) {
	clean := strings.NewReplacer(".", "", ",", "", " ", "").Replace(text)
	clean = strings.ToLower(clean)
	clean = strings.ReplaceAll(clean, "rp", "")

	if clean == "" || len(clean) >= maxCashDigits {
		return 0, false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	amount, err := strconv.Atoi(clean)
	if err != nil {
		return 0, false
	}
	return amount, true
}
