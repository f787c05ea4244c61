package database

import (
	"ticketing-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo struct {
	col *mongo.Collection
}

func NewEventRepo(db *mongo.Database) *EventRepo {
	return &EventRepo{col: db.Collection("events")}
}

func (r *EventRepo) Insert(event model.Event) error {
	_, err := r.col.InsertOne(ctx, event)
	return err
}

// FindAll returns every event, newest first.
func (r *EventRepo) FindAll() ([]model.Event, error) {
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	events := []model.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepo) FindByID(id primitive.ObjectID) (model.Event, error) {
	var event model.Event
	err := r.col.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return model.Event{}, ErrNotFound
	}
	if err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// Replace swaps the whole stored document; the handler is responsible for
// merging unchanged fields beforehand.
func (r *EventRepo) Replace(event model.Event) error {
	res, err := r.col.ReplaceOne(ctx, bson.D{primitive.E{Key: "_id", Value: event.Id}}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) Delete(id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
