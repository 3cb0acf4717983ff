package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type PostRepository interface {
	Insert(ctx context.Context, p models.Post) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error)
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Post, int64, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddLike(ctx context.Context, id, user bson.ObjectID) error
	RemoveLike(ctx context.Context, id, user bson.ObjectID) error
	PushComment(ctx context.Context, id, comment bson.ObjectID) error
	PullComment(ctx context.Context, id, comment bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type postRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{col: db.Collection("posts")}
}

func (r *postRepository) Insert(ctx context.Context, p models.Post) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *postRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

// List returns a created_at-descending window plus the total matching count.
func (r *postRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Post, int64, error) {
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

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Post, error) {
	var p models.Post
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p)
	return p, err
}

func (r *postRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *postRepository) AddLike(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"likes": user}})
	return err
}

func (r *postRepository) RemoveLike(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"likes": user}})
	return err
}

func (r *postRepository) PushComment(ctx context.Context, id, comment bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"comments": comment}})
	return err
}

func (r *postRepository) PullComment(ctx context.Context, id, comment bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"comments": comment}})
	return err
}

func (r *postRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
