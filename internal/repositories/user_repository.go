package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type UserRepository interface {
	Insert(ctx context.Context, u models.User) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error)
	List(ctx context.Context, q dto.PageQuery) ([]models.User, int64, error)
	ListByDepartment(ctx context.Context, department bson.ObjectID) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M, unset bson.M) (models.User, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
	TouchLastActive(ctx context.Context, id bson.ObjectID) error
}

type userRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection("users")}
}

func (r *userRepository) Insert(ctx context.Context, u models.User) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *userRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, err
}

func (r *userRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, bson.M{
		"reset_password_token":  tokenHash,
		"reset_password_expire": bson.M{"$gt": now},
	}).Decode(&u)
	return u, err
}

func (r *userRepository) List(ctx context.Context, q dto.PageQuery) ([]models.User, int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) ListByDepartment(ctx context.Context, department bson.ObjectID) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{"department": department})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M, unset bson.M) (models.User, error) {
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var u models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	return u, err
}

func (r *userRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}

func (r *userRepository) TouchLastActive(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_active": time.Now().UTC()}})
	return err
}
