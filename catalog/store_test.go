package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endlessvault/models"
)

type mockRepository struct {
	m     sync.Mutex
	items []models.CatalogItem
	err   error

	insertCalls int
	existsCalls int
	// existsUntil makes UniqueIDExists report taken codes for the first
	// n calls, to exercise the regeneration loop.
	existsUntil int
}

func (r *mockRepository) FetchAll(context.Context) ([]models.CatalogItem, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	items := make([]models.CatalogItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *mockRepository) Insert(_ context.Context, item models.CatalogItem) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.insertCalls++
	item.ID = fmt.Sprintf("id-%d", len(r.items))
	r.items = append(r.items, item)
	return item.ID, nil
}

func (r *mockRepository) Update(_ context.Context, id string, fields ItemFields) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			if fields.Name != nil {
				r.items[i].Name = *fields.Name
			}
			if fields.Brand != nil {
				r.items[i].Brand = *fields.Brand
			}
			if fields.Series != nil {
				r.items[i].Series = *fields.Series
			}
			if fields.MRP != nil {
				r.items[i].MRP = *fields.MRP
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *mockRepository) Delete(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *mockRepository) UniqueIDExists(context.Context, string) (bool, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return false, r.err
	}
	r.existsCalls++
	return r.existsCalls <= r.existsUntil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreRefresh(t *testing.T) {
	repo := &mockRepository{items: makeItems(3)}
	store := NewStore(repo, testLogger())

	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, 3, store.Len())
}

func TestStoreRefreshErrorRetainsPriorState(t *testing.T) {
	repo := &mockRepository{items: makeItems(3)}
	store := NewStore(repo, testLogger())
	require.NoError(t, store.Refresh(context.Background()))

	repo.m.Lock()
	repo.err = fmt.Errorf("transport down")
	repo.m.Unlock()

	err := store.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Equal(t, 3, store.Len(), "failed refresh must keep the previous items")
}

func TestStoreItemsReturnsCopy(t *testing.T) {
	repo := &mockRepository{items: makeItems(2)}
	store := NewStore(repo, testLogger())
	require.NoError(t, store.Refresh(context.Background()))

	snapshot := store.Items()
	snapshot[0].Name = "mutated"

	assert.Equal(t, "Car 00", store.Items()[0].Name)
}

func TestStoreWatchRefreshesOnSignal(t *testing.T) {
	repo := &mockRepository{items: makeItems(1)}
	store := NewStore(repo, testLogger())
	require.NoError(t, store.Refresh(context.Background()))

	signal := NewReloadSignal()
	store.Watch(signal)

	repo.m.Lock()
	repo.items = makeItems(5)
	repo.m.Unlock()

	signal.Notify()
	assert.Equal(t, 5, store.Len())
}

func TestReloadSignalFansOut(t *testing.T) {
	signal := NewReloadSignal()

	var first, second int
	signal.Subscribe(func() { first++ })
	signal.Subscribe(func() { second++ })

	signal.Notify()
	signal.Notify()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}
