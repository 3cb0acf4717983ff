package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type MessageRepository interface {
	Insert(ctx context.Context, m models.Message) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Message, error)
	ListByChat(ctx context.Context, chat bson.ObjectID, q dto.PageQuery) ([]models.Message, int64, error)
	FindLatestExcept(ctx context.Context, chat, except bson.ObjectID) (models.Message, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Message, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByChat(ctx context.Context, chat bson.ObjectID) error
	MarkAllRead(ctx context.Context, chat, user bson.ObjectID) error
}

type messageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{col: db.Collection("messages")}
}

func (r *messageRepository) Insert(ctx context.Context, m models.Message) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *messageRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Message, error) {
	var m models.Message
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

// ListByChat pages backwards from the newest message, then reverses the
// window so callers receive it in chronological order.
func (r *messageRepository) ListByChat(ctx context.Context, chat bson.ObjectID, q dto.PageQuery) ([]models.Message, int64, error) {
	filter := bson.M{"chat": chat}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var messages []models.Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, total, nil
}

// FindLatestExcept returns the newest message in the chat other than the
// given one, used to rewind last_message after a deletion.
func (r *messageRepository) FindLatestExcept(ctx context.Context, chat, except bson.ObjectID) (models.Message, error) {
	var m models.Message
	filter := bson.M{"chat": chat, "_id": bson.M{"$ne": except}}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.col.FindOne(ctx, filter, opts).Decode(&m)
	return m, err
}

func (r *messageRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Message, error) {
	var m models.Message
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	return m, err
}

func (r *messageRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *messageRepository) DeleteByChat(ctx context.Context, chat bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"chat": chat})
	return err
}

func (r *messageRepository) MarkAllRead(ctx context.Context, chat, user bson.ObjectID) error {
	filter := bson.M{"chat": chat, "sender": bson.M{"$ne": user}}
	_, err := r.col.UpdateMany(ctx, filter, bson.M{"$addToSet": bson.M{"read_by": user}})
	return err
}
