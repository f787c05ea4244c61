package database

import (
	"ticketing-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo struct {
	col *mongo.Collection
}

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{col: db.Collection("bookings")}
}

func (r *BookingRepo) Insert(booking model.Booking) error {
	_, err := r.col.InsertOne(ctx, booking)
	return err
}

// FindAll returns every booking, newest first.
func (r *BookingRepo) FindAll() ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	bookings := []model.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepo) FindByID(id primitive.ObjectID) (model.Booking, error) {
	var booking model.Booking
	err := r.col.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// FindByTicketNumber returns the first booking carrying the given ticket
// number. Ticket numbers are not guaranteed unique.
func (r *BookingRepo) FindByTicketNumber(ticketNumber int) (model.Booking, error) {
	var booking model.Booking
	err := r.col.FindOne(ctx, bson.D{primitive.E{Key: "ticket_number", Value: ticketNumber}}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepo) UpdateStatus(id primitive.ObjectID, status string) error {
	res, err := r.col.UpdateByID(ctx, id,
		bson.D{primitive.E{Key: "$set", Value: bson.D{primitive.E{Key: "status", Value: status}}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Delete(id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
