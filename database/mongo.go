package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo bundles the client and the storefront database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(uri, dbName string) (*Mongo, error) {
	if uri == "" || dbName == "" {
		return nil, fmt.Errorf("MONGO_URI and DB_NAME must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection error: %w", err)
	}

	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

// Items is the catalog collection.
func (m *Mongo) Items() *mongo.Collection {
	return m.DB.Collection("hotwheels")
}

// BlacklistTokens holds logged-out admin tokens until they expire.
func (m *Mongo) BlacklistTokens() *mongo.Collection {
	return m.DB.Collection("blacklist_tokens")
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
