package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"endlessvault/models"
)

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository wraps the `hotwheels` collection as an ItemRepository.
func NewMongoRepository(collection *mongo.Collection) ItemRepository {
	return &mongoRepository{collection: collection}
}

// itemDoc mirrors the stored document. mrp and createdAt are decoded loosely
// because documents written by older clients hold them as strings.
type itemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UniqueID  string             `bson:"uniqueId"`
	Brand     string             `bson:"brand"`
	Name      string             `bson:"name"`
	Series    string             `bson:"series"`
	MRP       interface{}        `bson:"mrp"`
	Image     string             `bson:"image"`
	CreatedAt interface{}        `bson:"createdAt"`
}

func (d itemDoc) toItem() models.CatalogItem {
	return models.CatalogItem{
		ID:        d.ID.Hex(),
		UniqueID:  d.UniqueID,
		Brand:     d.Brand,
		Name:      d.Name,
		Series:    d.Series,
		MRP:       models.CoercePrice(d.MRP),
		Image:     d.Image,
		CreatedAt: coerceTime(d.CreatedAt),
	}
}

func coerceTime(v interface{}) time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time()
	case time.Time:
		return t
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}

func (m *mongoRepository) FetchAll(ctx context.Context) ([]models.CatalogItem, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]models.CatalogItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items, nil
}

func (m *mongoRepository) Insert(ctx context.Context, item models.CatalogItem) (string, error) {
	doc := itemDoc{
		ID:        primitive.NewObjectID(),
		UniqueID:  item.UniqueID,
		Brand:     item.Brand,
		Name:      item.Name,
		Series:    item.Series,
		MRP:       item.MRP,
		Image:     item.Image,
		CreatedAt: primitive.NewDateTimeFromTime(item.CreatedAt),
	}

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to insert item: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (m *mongoRepository) Update(ctx context.Context, id string, fields ItemFields) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{}
	if fields.Brand != nil {
		update["brand"] = *fields.Brand
	}
	if fields.Name != nil {
		update["name"] = *fields.Name
	}
	if fields.Series != nil {
		update["series"] = *fields.Series
	}
	if fields.MRP != nil {
		update["mrp"] = *fields.MRP
	}
	if len(update) == 0 {
		return nil
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *mongoRepository) UniqueIDExists(ctx context.Context, uniqueID string) (bool, error) {
	err := m.collection.FindOne(ctx, bson.M{"uniqueId": uniqueID}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, fmt.Errorf("failed to check unique id: %w", err)
}
