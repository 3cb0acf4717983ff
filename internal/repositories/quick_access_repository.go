package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"intranet-backend/internal/models"
)

type QuickAccessRepository interface {
	Insert(ctx context.Context, item models.QuickAccessItem) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.QuickAccessItem, error)
	ListByUser(ctx context.Context, user bson.ObjectID) ([]models.QuickAccessItem, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.QuickAccessItem, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	MaxOrder(ctx context.Context, user bson.ObjectID) (int, error)
	SetOrder(ctx context.Context, id, user bson.ObjectID, order int) error
}

type quickAccessRepository struct {
	col *mongo.Collection
}

func NewQuickAccessRepository(db *mongo.Database) QuickAccessRepository {
	return &quickAccessRepository{col: db.Collection("quick_access_items")}
}

func (r *quickAccessRepository) Insert(ctx context.Context, item models.QuickAccessItem) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *quickAccessRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.QuickAccessItem, error) {
	var item models.QuickAccessItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	return item, err
}

func (r *quickAccessRepository) ListByUser(ctx context.Context, user bson.ObjectID) ([]models.QuickAccessItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.QuickAccessItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *quickAccessRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.QuickAccessItem, error) {
	var item models.QuickAccessItem
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	return item, err
}

func (r *quickAccessRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MaxOrder returns the highest order value among the user's shortcuts,
// or -1 when the user has none.
func (r *quickAccessRepository) MaxOrder(ctx context.Context, user bson.ObjectID) (int, error) {
	var item models.QuickAccessItem
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	err := r.col.FindOne(ctx, bson.M{"user": user}, opts).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}
	return item.Order, nil
}

func (r *quickAccessRepository) SetOrder(ctx context.Context, id, user bson.ObjectID, order int) error {
	filter := bson.M{"_id": id, "user": user}
	_, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"order": order}})
	return err
}
