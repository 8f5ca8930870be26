package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endlessvault/models"
)

func makeItems(n int) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.CatalogItem{
			ID:       fmt.Sprintf("id-%02d", i),
			UniqueID: fmt.Sprintf("abc%04d", i),
			Brand:    "Hotwheels",
			Name:     fmt.Sprintf("Car %02d", i),
			Series:   "Mainline",
			MRP:      float64(100 + i),
		})
	}
	return items
}

func TestApplyPageSizeBound(t *testing.T) {
	items := makeItems(57)

	for page := 1; page <= 7; page++ {
		res := Apply(items, Params{Page: page, PageSize: 10})
		assert.LessOrEqual(t, len(res.Items), 10)
	}
}

func TestApplyPaging(t *testing.T) {
	items := makeItems(23)

	res := Apply(items, Params{Page: 3, PageSize: 10})
	assert.Len(t, res.Items, 3)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 23, res.TotalMatches)

	// A page past the end yields nothing but the totals stay intact.
	res = Apply(items, Params{Page: 4, PageSize: 10})
	assert.Empty(t, res.Items)
	assert.Equal(t, 3, res.TotalPages)
}

func TestApplyIdempotent(t *testing.T) {
	items := makeItems(30)
	p := Params{Query: "car 1", Sort: SortHighToLow, Page: 1, PageSize: 10}

	first := Apply(items, p)
	second := Apply(items, p)
	assert.Equal(t, first, second)
}

func TestApplyBrandFilterCaseInsensitive(t *testing.T) {
	items := makeItems(5)
	items = append(items,
		models.CatalogItem{ID: "m1", Brand: "matchbox", Name: "MB Jeep", MRP: 150},
		models.CatalogItem{ID: "m2", Brand: "Matchbox", Name: "MB Van", MRP: 200},
	)

	res := Apply(items, Params{Brand: "MATCHBOX", Page: 1})
	require.Len(t, res.Items, 2)
	assert.Equal(t, "m1", res.Items[0].ID)
	assert.Equal(t, "m2", res.Items[1].ID)
}

func TestApplyQueryMatchesAnyField(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "1", UniqueID: "aa11bb2", Brand: "Hotwheels", Name: "Skyline", Series: "Fast"},
		{ID: "2", UniqueID: "cc33dd4", Brand: "MiniGT", Name: "Supra", Series: "JDM Legends"},
		{ID: "3", UniqueID: "ee55ff6", Brand: "Tomica", Name: "Civic", Series: "Premium"},
	}

	cases := map[string][]string{
		"skyline": {"1"},  // name
		"minigt":  {"2"},  // brand
		"jdm":     {"2"},  // series
		"ee55":    {"3"},  // uniqueId
		"missing": nil,
	}

	for query, want := range cases {
		res := Apply(items, Params{Query: query, Page: 1})
		got := make([]string, 0, len(res.Items))
		for _, it := range res.Items {
			got = append(got, it.ID)
		}
		if want == nil {
			assert.Empty(t, got, "query %q", query)
		} else {
			assert.Equal(t, want, got, "query %q", query)
		}
	}
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "1", Brand: "Matchbox", Name: "Skyline"},
		{ID: "2", Brand: "Hotwheels", Name: "Skyline"},
		{ID: "3", Brand: "Matchbox", Name: "Jeep"},
	}

	res := Apply(items, Params{Query: "skyline", Brand: "matchbox", Page: 1})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "1", res.Items[0].ID)
}

func TestApplySortByPrice(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "a", MRP: 300},
		{ID: "b", MRP: 100},
		{ID: "c", MRP: 200},
		{ID: "d", MRP: 0}, // price unknown, coerced at decode
	}

	res := Apply(items, Params{Sort: SortLowToHigh, Page: 1})
	ids := []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID, res.Items[3].ID}
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids)

	res = Apply(items, Params{Sort: SortHighToLow, Page: 1})
	ids = []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID, res.Items[3].ID}
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids)
}

func TestApplySortIsStable(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "first", MRP: 100},
		{ID: "second", MRP: 100},
		{ID: "third", MRP: 100},
	}

	res := Apply(items, Params{Sort: SortLowToHigh, Page: 1})
	assert.Equal(t, "first", res.Items[0].ID)
	assert.Equal(t, "second", res.Items[1].ID)
	assert.Equal(t, "third", res.Items[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []models.CatalogItem{
		{ID: "a", MRP: 300},
		{ID: "b", MRP: 100},
	}

	Apply(items, Params{Sort: SortLowToHigh, Page: 1})
	assert.Equal(t, "a", items[0].ID)
}

func TestPageRange(t *testing.T) {
	cases := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{2, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{1, 1, []int{1}},
		{1, 0, nil},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PageRange(tc.current, tc.total), "current=%d total=%d", tc.current, tc.total)
	}
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortLowToHigh, ParseSort("low-to-high"))
	assert.Equal(t, SortHighToLow, ParseSort("high-to-low"))
	assert.Equal(t, SortNone, ParseSort(""))
	assert.Equal(t, SortNone, ParseSort("garbage"))
}
