package catalog

import (
	"context"
	"errors"

	"endlessvault/models"
)

var (
	// ErrFetch marks a whole-collection load failure. Callers keep
	// whatever they had and surface the error to the user.
	ErrFetch = errors.New("catalog fetch failed")

	// ErrPersist marks a create/update/delete failure. Nothing local is
	// mutated until the store confirms the write.
	ErrPersist = errors.New("catalog persist failed")

	ErrNotFound = errors.New("item not found")
)

// ItemFields carries a partial update. Nil fields are left untouched;
// image and both ids are immutable after creation.
type ItemFields struct {
	Brand  *string  `json:"brand"`
	Name   *string  `json:"name"`
	Series *string  `json:"series"`
	MRP    *float64 `json:"mrp"`
}

// ItemRepository is the document-store access the catalog needs.
type ItemRepository interface {
	FetchAll(ctx context.Context) ([]models.CatalogItem, error)
	Insert(ctx context.Context, item models.CatalogItem) (string, error)
	Update(ctx context.Context, id string, fields ItemFields) error
	Delete(ctx context.Context, id string) error
	UniqueIDExists(ctx context.Context, uniqueID string) (bool, error)
}
