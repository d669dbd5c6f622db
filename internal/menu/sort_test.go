package menu

import (
	"testing"

	"qrmenu-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(n int) *int { return &n }

func TestSortForDisplayZeroBeforeAllNilLast(t *testing.T) {
	items := []models.MenuItem{
		{Name: "iki", SortOrder: ptr(2)},
		{Name: "yok", SortOrder: nil},
		{Name: "sıfır", SortOrder: ptr(0)},
		{Name: "bir", SortOrder: ptr(1)},
	}

	SortForDisplay(items)

	require.Len(t, items, 4)
	// [2, nil, 0, 1] -> [0, 1, 2, nil]: açık 0 her şeyden önce, nil en sonda
	assert.Equal(t, "sıfır", items[0].Name)
	assert.Equal(t, "bir", items[1].Name)
	assert.Equal(t, "iki", items[2].Name)
	assert.Equal(t, "yok", items[3].Name)
}

func TestSortForDisplayNilsSortedByName(t *testing.T) {
	items := []models.MenuItem{
		{Name: "zeytin"},
		{Name: "ayran"},
		{Name: "çorba", SortOrder: ptr(3)},
	}

	SortForDisplay(items)

	assert.Equal(t, "çorba", items[0].Name)
	assert.Equal(t, "ayran", items[1].Name)
	assert.Equal(t, "zeytin", items[2].Name)
}

func TestSortForDisplayEqualRankByName(t *testing.T) {
	items := []models.MenuItem{
		{Name: "kola", SortOrder: ptr(1)},
		{Name: "fanta", SortOrder: ptr(1)},
	}

	SortForDisplay(items)

	assert.Equal(t, "fanta", items[0].Name)
	assert.Equal(t, "kola", items[1].Name)
}
