package inventory

import (
	"testing"

	"labtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.Equipment {
	return []models.Equipment{
		{ID: 1, Asset: "A-100", Manufacturer: "Thermo", Planner: "Ivanov", Site: "North", ContractEndDate: "2024-02-01T00:00:00.000Z", ContractCost: 500},
		{ID: 2, Asset: "B-200", Manufacturer: "Agilent", Planner: "Petrov", Site: "South", ContractEndDate: "2024-06-01T00:00:00.000Z", ContractCost: 1500},
		{ID: 3, Asset: "C-300", Manufacturer: "thermo fisher", Planner: "Ivanov", Site: "North", ContractEndDate: "", ContractCost: 250},
	}
}

func TestApply_IsSubset(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	queries := []Query{
		DefaultQuery(),
		{FilterField: "manufacturer", FilterValue: "thermo", SortField: "asset", SortDirection: SortAsc},
		{FilterField: "asset", Planner: "Ivanov", Site: "North", SortField: "asset", SortDirection: SortAsc},
		{FilterField: "asset", NearExpiration: true, SortField: "asset", SortDirection: SortAsc},
	}

	ids := func(items []models.Equipment) map[int64]struct{} {
		m := make(map[int64]struct{})
		for _, e := range items {
			m[e.ID] = struct{}{}
		}
		return m
	}
	all := ids(items)

	for _, q := range queries {
		got := Apply(items, q, now)
		assert.LessOrEqual(t, len(got), len(items))
		for id := range ids(got) {
			assert.Contains(t, all, id)
		}
	}
}

func TestApply_CaseInsensitiveSubstring(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	got := Apply(items, Query{FilterField: "manufacturer", FilterValue: "THERMO"}, now)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestApply_FiltersCombineWithAnd(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	got := Apply(items, Query{
		FilterField: "manufacturer",
		FilterValue: "thermo",
		Planner:     "Ivanov",
		Site:        "North",
	}, now)
	require.Len(t, got, 2)

	// добавление ещё одного условия только сужает результат
	got = Apply(items, Query{
		FilterField:    "manufacturer",
		FilterValue:    "thermo",
		Planner:        "Ivanov",
		Site:           "North",
		NearExpiration: true,
	}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "A-100", got[0].Asset)
}

func TestApply_NearExpirationToggle(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	got := Apply(items, Query{FilterField: "asset", NearExpiration: true}, now)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApply_SortStrings(t *testing.T) {
	items := []models.Equipment{
		{ID: 1, Asset: "banana"},
		{ID: 2, Asset: "Apple"},
		{ID: 3, Asset: "cherry"},
	}
	now := date("2024-01-01")

	asc := Apply(items, Query{FilterField: "asset", SortField: "asset", SortDirection: SortAsc}, now)
	assert.Equal(t, []string{"Apple", "banana", "cherry"},
		[]string{asc[0].Asset, asc[1].Asset, asc[2].Asset})

	desc := Apply(items, Query{FilterField: "asset", SortField: "asset", SortDirection: SortDesc}, now)
	assert.Equal(t, []string{"cherry", "banana", "Apple"},
		[]string{desc[0].Asset, desc[1].Asset, desc[2].Asset})
}

func TestApply_SortNumeric(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	got := Apply(items, Query{FilterField: "asset", SortField: "contractCost", SortDirection: SortAsc}, now)
	require.Len(t, got, 3)
	assert.Equal(t, []float64{250, 500, 1500},
		[]float64{got[0].ContractCost, got[1].ContractCost, got[2].ContractCost})

	got = Apply(items, Query{FilterField: "asset", SortField: "contractCost", SortDirection: SortDesc}, now)
	assert.Equal(t, []float64{1500, 500, 250},
		[]float64{got[0].ContractCost, got[1].ContractCost, got[2].ContractCost})
}

// На уникальном ключе сортировка по убыванию — точное обращение сортировки
// по возрастанию. Для равных ключей порядок не оговорён, поэтому здесь
// ключи уникальны.
func TestApply_DescReversesAscOnUniqueKeys(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	asc := Apply(items, Query{FilterField: "asset", SortField: "asset", SortDirection: SortAsc}, now)
	desc := Apply(items, Query{FilterField: "asset", SortField: "asset", SortDirection: SortDesc}, now)

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	now := date("2024-01-01")

	Apply(items, Query{FilterField: "asset", SortField: "contractCost", SortDirection: SortDesc}, now)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
}
