package menu

import (
	"sort"

	"qrmenu-backend/internal/models"
)

// SortForDisplay menüyü vitrin sırasına sokar: sort_order küçükten büyüğe,
// nil olanlar her zaman en sonda. 0 geçerli ve en öncelikli sıradır, nil
// ile aynı şey değildir. Eşitlikte isim alfabetik.
func SortForDisplay(items []models.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].SortOrder, items[j].SortOrder

		switch {
		case a == nil && b == nil:
			return items[i].Name < items[j].Name
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return items[i].Name < items[j].Name
		}
	})
}
