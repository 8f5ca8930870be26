package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, itemCount int) *View {
	t.Helper()
	repo := &mockRepository{items: makeItems(itemCount)}
	store := NewStore(repo, testLogger())
	require.NoError(t, store.Refresh(context.Background()))
	return NewView(store)
}

func TestViewFilterChangeResetsPage(t *testing.T) {
	view := newTestView(t, 25)

	view.SetPage(3)
	_, params := view.Page()
	require.Equal(t, 3, params.Page)

	view.SetQuery("car")
	_, params = view.Page()
	assert.Equal(t, 1, params.Page)

	view.SetPage(2)
	view.SetBrand("Hotwheels")
	_, params = view.Page()
	assert.Equal(t, 1, params.Page)

	view.SetPage(2)
	view.SetSort(SortHighToLow)
	_, params = view.Page()
	assert.Equal(t, 1, params.Page)
}

func TestViewSameFilterKeepsPage(t *testing.T) {
	view := newTestView(t, 25)
	view.SetQuery("car")
	view.SetPage(2)

	view.SetQuery("car")
	_, params := view.Page()
	assert.Equal(t, 2, params.Page, "re-applying an identical filter is not a change")
}

func TestViewSetPageValidatesRange(t *testing.T) {
	view := newTestView(t, 25) // 3 pages

	view.SetPage(0)
	_, params := view.Page()
	assert.Equal(t, 1, params.Page)

	view.SetPage(4)
	_, params = view.Page()
	assert.Equal(t, 1, params.Page, "out-of-range page change is a no-op")

	view.SetPage(3)
	_, params = view.Page()
	assert.Equal(t, 3, params.Page)
}

func TestViewClampPageNoopWhenInRange(t *testing.T) {
	view := newTestView(t, 25)
	view.SetPage(2)

	view.ClampPage()
	_, params := view.Page()
	assert.Equal(t, 2, params.Page)
}
