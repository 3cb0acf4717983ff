package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Notification, error)
	ListByRecipient(ctx context.Context, user bson.ObjectID, q dto.PageQuery) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context, user bson.ObjectID) (int64, error)
	MarkRead(ctx context.Context, id bson.ObjectID) (models.Notification, error)
	MarkAllRead(ctx context.Context, user bson.ObjectID) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type notificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{col: db.Collection("notifications")}
}

func (r *notificationRepository) Insert(ctx context.Context, n models.Notification) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Notification, error) {
	var n models.Notification
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	return n, err
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, user bson.ObjectID, q dto.PageQuery) ([]models.Notification, int64, error) {
	filter := bson.M{"recipient": user}
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

	var items []models.Notification
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, user bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"recipient": user, "is_read": false})
}

func (r *notificationRepository) MarkRead(ctx context.Context, id bson.ObjectID) (models.Notification, error) {
	var n models.Notification
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}}, opts).Decode(&n)
	return n, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, user bson.ObjectID) error {
	filter := bson.M{"recipient": user, "is_read": false}
	_, err := r.col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
