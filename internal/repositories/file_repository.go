package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type FileRepository interface {
	Insert(ctx context.Context, f models.File) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.File, error)
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.File, int64, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.File, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Share(ctx context.Context, id bson.ObjectID, users []bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type fileRepository struct {
	col *mongo.Collection
}

func NewFileRepository(db *mongo.Database) FileRepository {
	return &fileRepository{col: db.Collection("files")}
}

func (r *fileRepository) Insert(ctx context.Context, f models.File) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *fileRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.File, error) {
	var f models.File
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	return f, err
}

func (r *fileRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.File, int64, error) {
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

	var files []models.File
	if err := cur.All(ctx, &files); err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (r *fileRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.File, error) {
	var f models.File
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&f)
	return f, err
}

func (r *fileRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *fileRepository) Share(ctx context.Context, id bson.ObjectID, users []bson.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"shared_with": bson.M{"$each": users}}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *fileRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
