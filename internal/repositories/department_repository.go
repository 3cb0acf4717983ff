package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/internal/models"
)

type DepartmentRepository interface {
	Insert(ctx context.Context, d models.Department) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M, unset bson.M) (models.Department, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	CountChildren(ctx context.Context, id bson.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) DepartmentRepository {
	return &departmentRepository{col: db.Collection("departments")}
}

func (r *departmentRepository) Insert(ctx context.Context, d models.Department) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Department, error) {
	var d models.Department
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	return d, err
}

func (r *departmentRepository) List(ctx context.Context) ([]models.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var departments []models.Department
	if err := cur.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M, unset bson.M) (models.Department, error) {
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var d models.Department
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	return d, err
}

func (r *departmentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *departmentRepository) CountChildren(ctx context.Context, id bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"parent": id})
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
