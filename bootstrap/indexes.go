// Package bootstrap performs one-time startup work against the
// database.
package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique and query indexes the handlers rely
// on. Index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "department", Value: 1}}},
		},
		"departments": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"group_members": {
			{Keys: bson.D{{Key: "group", Value: 1}, {Key: "user", Value: 1}}, Options: unique},
		},
		"posts": {
			{Keys: bson.D{{Key: "author", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "group", Value: 1}}},
			{Keys: bson.D{{Key: "department", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "post", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		"chats": {
			{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updated_at", Value: -1}}},
		},
		"messages": {
			{Keys: bson.D{{Key: "chat", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"events": {
			{Keys: bson.D{{Key: "start_date", Value: 1}}},
			{Keys: bson.D{{Key: "attendees", Value: 1}}},
		},
		"news": {
			{Keys: bson.D{{Key: "publish_date", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		"files": {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
			{Keys: bson.D{{Key: "shared_with", Value: 1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "is_read", Value: 1}}},
		},
		"activity_logs": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		"quick_access_items": {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "order", Value: 1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
