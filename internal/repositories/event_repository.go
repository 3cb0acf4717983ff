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

type EventRepository interface {
	Insert(ctx context.Context, e models.Event) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Event, error)
	List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Event, int64, error)
	ListBetween(ctx context.Context, user bson.ObjectID, from, to time.Time) ([]models.Event, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Event, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	AddAttendee(ctx context.Context, id, user bson.ObjectID) error
	RemoveAttendee(ctx context.Context, id, user bson.ObjectID) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type eventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{col: db.Collection("events")}
}

func (r *eventRepository) Insert(ctx context.Context, e models.Event) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *eventRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Event, error) {
	var e models.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	return e, err
}

func (r *eventRepository) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Event, int64, error) {
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListBetween returns calendar events the user created or attends that
// overlap the [from, to] window.
func (r *eventRepository) ListBetween(ctx context.Context, user bson.ObjectID, from, to time.Time) ([]models.Event, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"creator": user},
			bson.M{"attendees": user},
		},
		"start_date": bson.M{"$lte": to},
		"end_date":   bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Event, error) {
	var e models.Event
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&e)
	return e, err
}

func (r *eventRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *eventRepository) AddAttendee(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"attendees": user}})
	return err
}

func (r *eventRepository) RemoveAttendee(ctx context.Context, id, user bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"attendees": user}})
	return err
}

func (r *eventRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.col.CountDocuments(ctx, filter)
}
