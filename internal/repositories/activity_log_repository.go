package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry models.ActivityLog) error
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.ActivityLog, int64, error)
	Recent(ctx context.Context, limit int64) ([]models.ActivityLog, error)
}

type activityLogRepository struct {
	col *mongo.Collection
}

func NewActivityLogRepository(db *mongo.Database) ActivityLogRepository {
	return &activityLogRepository{col: db.Collection("activity_logs")}
}

func (r *activityLogRepository) Insert(ctx context.Context, entry models.ActivityLog) error {
	_, err := r.col.InsertOne(ctx, entry)
	return err
}

func (r *activityLogRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.ActivityLog, int64, error) {
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

	var entries []models.ActivityLog
	if err := cur.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *activityLogRepository) Recent(ctx context.Context, limit int64) ([]models.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ActivityLog
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
