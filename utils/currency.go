package utils

// FormatRupiah memformat nominal (Rupiah utuh, tanpa desimal) dengan pemisah
// ribuan. Example: 24000 -> "Rp24.000"
func FormatRupiah(amount int) string {
	if amount < 0 {
		return "-" + FormatRupiah(-amount)
	}

	// Susun digit dari belakang, sisipkan titik tiap tiga digit
	digits := []byte{}
	n := amount
	for i := 0; ; i++ {
		if i > 0 && i%3 == 0 {
			digits = append([]byte{'.'}, digits...)
		}
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}

	return "Rp" + string(digits)
}
