package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency memformat angka dengan pemisah ribuan (dipakai di
// options summary dan pesan kekurangan stok).
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(formatted, "-")
	if negative {
		formatted = formatted[1:]
	}

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(formatted); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{formatted[start:i]}, result...)
	}

	joined := strings.Join(result, ".")
	if negative {
		return "-" + joined
	}
	return joined
}
