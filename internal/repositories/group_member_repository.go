package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type GroupMemberRepository interface {
	Insert(ctx context.Context, m models.GroupMember) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.GroupMember, error)
	Find(ctx context.Context, group, user bson.ObjectID) (models.GroupMember, error)
	ListByGroup(ctx context.Context, group bson.ObjectID, q dto.PageQuery) ([]models.GroupMember, int64, error)
	ListByUser(ctx context.Context, user bson.ObjectID) ([]models.GroupMember, error)
	UpdateRole(ctx context.Context, id bson.ObjectID, role string) (models.GroupMember, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByGroup(ctx context.Context, group bson.ObjectID) error
	CountAdmins(ctx context.Context, group bson.ObjectID) (int64, error)
}

type groupMemberRepository struct {
	col *mongo.Collection
}

func NewGroupMemberRepository(db *mongo.Database) GroupMemberRepository {
	return &groupMemberRepository{col: db.Collection("group_members")}
}

func (r *groupMemberRepository) Insert(ctx context.Context, m models.GroupMember) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *groupMemberRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.GroupMember, error) {
	var m models.GroupMember
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

func (r *groupMemberRepository) Find(ctx context.Context, group, user bson.ObjectID) (models.GroupMember, error) {
	var m models.GroupMember
	err := r.col.FindOne(ctx, bson.M{"group": group, "user": user}).Decode(&m)
	return m, err
}

// ListByGroup sorts admins before plain members, then by join time.
func (r *groupMemberRepository) ListByGroup(ctx context.Context, group bson.ObjectID, q dto.PageQuery) ([]models.GroupMember, int64, error) {
	filter := bson.M{"group": group}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "role", Value: 1}, {Key: "joined_at", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var members []models.GroupMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *groupMemberRepository) ListByUser(ctx context.Context, user bson.ObjectID) ([]models.GroupMember, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.GroupMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *groupMemberRepository) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (models.GroupMember, error) {
	var m models.GroupMember
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}}, opts).Decode(&m)
	return m, err
}

func (r *groupMemberRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *groupMemberRepository) DeleteByGroup(ctx context.Context, group bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"group": group})
	return err
}

func (r *groupMemberRepository) CountAdmins(ctx context.Context, group bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"group": group, "role": models.GroupRoleAdmin})
}
