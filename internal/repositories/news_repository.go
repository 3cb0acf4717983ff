package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type NewsRepository interface {
	Insert(ctx context.Context, n models.News) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.News, error)
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.News, int64, error)
	ListFeatured(ctx context.Context, limit int64) ([]models.News, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.News, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type newsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) NewsRepository {
	return &newsRepository{col: db.Collection("news")}
}

func (r *newsRepository) Insert(ctx context.Context, n models.News) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *newsRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.News, error) {
	var n models.News
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	return n, err
}

func (r *newsRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.News, int64, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publish_date", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []models.News
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *newsRepository) ListFeatured(ctx context.Context, limit int64) ([]models.News, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "publish_date", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"is_featured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.News
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	res := r.col.Distinct(ctx, "category", bson.M{})
	if err := res.Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *newsRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.News, error) {
	var n models.News
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&n)
	return n, err
}

func (r *newsRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *newsRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
