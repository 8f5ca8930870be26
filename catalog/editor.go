package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"endlessvault/models"
)

// ErrMissingFields rejects a create with any empty field or image.
var ErrMissingFields = errors.New("all fields and an image are required")

// uniqueIDLength is the length of the short item code shown to shoppers.
const uniqueIDLength = 7

// Editor performs catalog writes against the document store and fires the
// reload signal after each successful write. Local state is never patched
// optimistically; readers pick up changes through the triggered refetch.
type Editor struct {
	repo   ItemRepository
	signal *ReloadSignal
	log    *slog.Logger
}

func NewEditor(repo ItemRepository, signal *ReloadSignal, log *slog.Logger) *Editor {
	return &Editor{repo: repo, signal: signal, log: log}
}

// CreateInput carries the new-item form. Every field is required.
type CreateInput struct {
	Brand  string  `json:"brand"`
	Name   string  `json:"name"`
	Series string  `json:"series"`
	MRP    float64 `json:"mrp"`
	Image  string  `json:"image"`
}

// Create assigns a collision-checked short unique id, persists the item
// and signals a reload.
func (e *Editor) Create(ctx context.Context, in CreateInput) (models.CatalogItem, error) {
	if in.Brand == "" || in.Name == "" || in.Series == "" || in.MRP == 0 || in.Image == "" {
		return models.CatalogItem{}, ErrMissingFields
	}

	uniqueID, err := e.newUniqueID(ctx)
	if err != nil {
		return models.CatalogItem{}, err
	}

	item := models.CatalogItem{
		UniqueID:  uniqueID,
		Brand:     in.Brand,
		Name:      in.Name,
		Series:    in.Series,
		MRP:       in.MRP,
		Image:     in.Image,
		CreatedAt: time.Now(),
	}

	id, err := e.repo.Insert(ctx, item)
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	item.ID = id

	e.log.Info("item created", "id", item.ID, "uniqueId", item.UniqueID)
	e.signal.Notify()
	return item, nil
}

// Update persists a partial change to brand/name/series/mrp. Image and ids
// stay immutable after creation.
func (e *Editor) Update(ctx context.Context, id string, fields ItemFields) error {
	if err := e.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	e.log.Info("item updated", "id", id)
	e.signal.Notify()
	return nil
}

// Delete removes the item and signals a reload. Callers holding a View
// should ClampPage afterwards in case the active page emptied.
func (e *Editor) Delete(ctx context.Context, id string) error {
	if err := e.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	e.log.Info("item deleted", "id", id)
	e.signal.Notify()
	return nil
}

// newUniqueID generates short codes until one is free in the store.
func (e *Editor) newUniqueID(ctx context.Context) (string, error) {
	for {
		code := shortCode()
		exists, err := e.repo.UniqueIDExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrPersist, err)
		}
		if !exists {
			return code, nil
		}
	}
}

func shortCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:uniqueIDLength]
}
