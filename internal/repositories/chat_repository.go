package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/internal/models"
)

type ChatRepository interface {
	Insert(ctx context.Context, c models.Chat) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Chat, error)
	FindDirect(ctx context.Context, a, b bson.ObjectID) (models.Chat, error)
	ListByParticipant(ctx context.Context, user bson.ObjectID) ([]models.Chat, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Chat, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	SetLastMessage(ctx context.Context, id bson.ObjectID, message *bson.ObjectID) error
}

type chatRepository struct {
	col *mongo.Collection
}

func NewChatRepository(db *mongo.Database) ChatRepository {
	return &chatRepository{col: db.Collection("chats")}
}

func (r *chatRepository) Insert(ctx context.Context, c models.Chat) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *chatRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Chat, error) {
	var c models.Chat
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, err
}

// FindDirect locates the one-to-one chat holding exactly both participants.
func (r *chatRepository) FindDirect(ctx context.Context, a, b bson.ObjectID) (models.Chat, error) {
	var c models.Chat
	filter := bson.M{
		"is_group":     false,
		"participants": bson.M{"$all": bson.A{a, b}, "$size": 2},
	}
	err := r.col.FindOne(ctx, filter).Decode(&c)
	return c, err
}

func (r *chatRepository) ListByParticipant(ctx context.Context, user bson.ObjectID) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"participants": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var chats []models.Chat
	if err := cur.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Chat, error) {
	var c models.Chat
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	return c, err
}

func (r *chatRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetLastMessage also bumps updated_at so the chat list keeps recency order.
func (r *chatRepository) SetLastMessage(ctx context.Context, id bson.ObjectID, message *bson.ObjectID) error {
	update := bson.M{"$set": bson.M{"updated_at": time.Now()}}
	if message != nil {
		update["$set"].(bson.M)["last_message"] = *message
	} else {
		update["$unset"] = bson.M{"last_message": ""}
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
