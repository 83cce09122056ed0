package inventory

import "labtrack/internal/models"

// DuplicateAssets возвращает номера активов, встречающиеся более одного
// раза (точное совпадение строки), вместе с количеством. Дубликаты только
// помечаются — записи не изменяются и не отбрасываются.
func DuplicateAssets(items []models.Equipment) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item.Asset]++
	}

	dups := make(map[string]int)
	for asset, n := range counts {
		if n > 1 {
			dups[asset] = n
		}
	}
	return dups
}
