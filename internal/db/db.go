package db

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectToDB() (*mongo.Database, context.CancelFunc, error) {
	mongoURI := os.Getenv("MONGODB_URI")

	uri, err := url.Parse(mongoURI)
	if err != nil {
		log.Fatalf("Error parsing MongoDB URI: %v", err)
		return nil, nil, err
	}

	dbName := strings.TrimPrefix(uri.Path, "/")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Error pinging MongoDB: %v", err)
		return nil, nil, err
	}

	db := client.Database(dbName)

	return db, cancel, nil
}

// EnsureIndexes creates the natural-key and lookup indexes the catalog
// relies on. Safe to call on every startup, CreateMany is a no-op for
// indexes that already exist.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"games": {
			{Keys: bson.D{{Key: "rawg_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		"entities": {
			{Keys: bson.D{{Key: "rawg_id", Value: 1}, {Key: "type", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}, {Key: "type", Value: 1}}},
		},
		"trailers": {
			{Keys: bson.D{{Key: "rawg_id", Value: 1}}, Options: unique},
		},
		"achievements": {
			{Keys: bson.D{{Key: "rawg_id", Value: 1}}, Options: unique},
		},
		"screenshots": {
			{Keys: bson.D{{Key: "rawg_id", Value: 1}}, Options: unique},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		},
		"reviews": {
			{Keys: bson.D{{Key: "game_id", Value: 1}, {Key: "created_by", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"game_lists": {
			{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "game_id", Value: 1}, {Key: "type", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	return nil
}
