package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"endlessvault/models"
)

// Store holds the whole fetched catalog in memory. There is no partial or
// incremental fetch; every refresh replaces the full list. A failed refresh
// keeps the previous list.
type Store struct {
	repo ItemRepository
	log  *slog.Logger
	sfg  singleflight.Group

	mu    sync.RWMutex
	items []models.CatalogItem
}

func NewStore(repo ItemRepository, log *slog.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Refresh reloads the catalog from the document store. Concurrent calls
// collapse into a single fetch.
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.sfg.Do("refresh", func() (interface{}, error) {
		items, err := s.repo.FetchAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}

		s.mu.Lock()
		s.items = items
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// Items returns a snapshot copy of the current catalog.
func (s *Store) Items() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CatalogItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Watch refreshes the store whenever the signal fires. Errors keep the
// prior state and are only logged; the next write will retry.
func (s *Store) Watch(sig *ReloadSignal) {
	sig.Subscribe(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.Refresh(ctx); err != nil {
			s.log.Error("catalog reload failed, keeping previous items", "error", err)
		}
	})
}
