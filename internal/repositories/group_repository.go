package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type GroupRepository interface {
	Insert(ctx context.Context, g models.Group) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Group, error)
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Group, int64, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Group, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	PushMember(ctx context.Context, id, member bson.ObjectID) error
	PullMember(ctx context.Context, id, member bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type groupRepository struct {
	col *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) GroupRepository {
	return &groupRepository{col: db.Collection("groups")}
}

func (r *groupRepository) Insert(ctx context.Context, g models.Group) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *groupRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Group, error) {
	var g models.Group
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	return g, err
}

func (r *groupRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Group, int64, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}

func (r *groupRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Group, error) {
	var g models.Group
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&g)
	return g, err
}

func (r *groupRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *groupRepository) PushMember(ctx context.Context, id, member bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"members": member}})
	return err
}

func (r *groupRepository) PullMember(ctx context.Context, id, member bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"members": member}})
	return err
}

func (r *groupRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
