package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/foodcourt-app/backend/models"
	"github.com/foodcourt-app/backend/utils"
)

// NormalizeSelections mengurutkan pilihan pada (group_id, choice_id) sehingga
// hash tidak tergantung urutan kiriman client. Input tidak dimutasi.
func NormalizeSelections(selections []models.OptionSelection) []models.OptionSelection {
	sorted := make([]models.OptionSelection, len(selections))
	copy(sorted, selections)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].GroupID != sorted[j].GroupID {
			return sorted[i].GroupID < sorted[j].GroupID
		}
		return sorted[i].ChoiceID < sorted[j].ChoiceID
	})
	return sorted
}

// HashSelections menghitung options_hash dari daftar pilihan yang sudah
// dinormalisasi. Ini content-addressing key untuk merge baris cart, bukan
// primitive keamanan.
func HashSelections(normalized []models.OptionSelection) string {
	parts := make([]string, 0, len(normalized))
	for _, sel := range normalized {
		parts = append(parts, fmt.Sprintf("%d:%d", sel.GroupID, sel.ChoiceID))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// BuildOptionsSummary merangkai ringkasan pilihan yang bisa dibaca manusia,
// mis. "Size: Large (+5.000), Topping: Cheese".
func BuildOptionsSummary(options []models.SelectedOption) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		part := fmt.Sprintf("%s: %s", opt.GroupName, opt.ChoiceName)
		if opt.PriceDelta > 0 {
			part += fmt.Sprintf(" (+%s)", utils.FormatCurrency(opt.PriceDelta))
		} else if opt.PriceDelta < 0 {
			part += fmt.Sprintf(" (%s)", utils.FormatCurrency(opt.PriceDelta))
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
