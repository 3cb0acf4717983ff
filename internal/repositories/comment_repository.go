package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/internal/models"
)

type CommentRepository interface {
	Insert(ctx context.Context, c models.Comment) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error)
	ListByPost(ctx context.Context, post bson.ObjectID) ([]models.Comment, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByPost(ctx context.Context, post bson.ObjectID) error
	AddLike(ctx context.Context, id, user bson.ObjectID) error
	RemoveLike(ctx context.Context, id, user bson.ObjectID) error
}

type commentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{col: db.Collection("comments")}
}

func (r *commentRepository) Insert(ctx context.Context, c models.Comment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *commentRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error) {
	var c models.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, err
}

func (r *commentRepository) ListByPost(ctx context.Context, post bson.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"post": post}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Comment, error) {
	var c models.Comment
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c)
	return c, err
}

func (r *commentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *commentRepository) DeleteByPost(ctx context.Context, post bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"post": post})
	return err
}

func (r *commentRepository) AddLike(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"likes": user}})
	return err
}

func (r *commentRepository) RemoveLike(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"likes": user}})
	return err
}
