package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusPending   string = "Pending"
	StatusPaid      string = "Paid"
	StatusUnpaid    string = "Unpaid"
	StatusCancelled string = "Cancelled"
)

type Booking struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	FirstName     string             `json:"first_name" bson:"first_name"`
	LastName      string             `json:"last_name" bson:"last_name"`
	ContactNumber string             `json:"contact_number" bson:"contact_number"`
	EmailAddress  string             `json:"email_address" bson:"email_address"`
	CityName      string             `json:"city_name" bson:"city_name"`
	TicketType    string             `json:"ticket_type" bson:"ticket_type"`
	EventId       primitive.ObjectID `json:"event_id" bson:"event_id"`
	TicketNumber  int                `json:"ticket_number" bson:"ticket_number"`
	ReceiptImage  string             `json:"receipt_image" bson:"receipt_image"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     string             `json:"created_at" bson:"created_at"`
}

// BookingWithEvent is the list-view shape: the booking with its referenced
// event resolved. Event is nil when the reference dangles.
type BookingWithEvent struct {
	Booking
	Event *Event `json:"event"`
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPaid, StatusUnpaid, StatusCancelled:
		return true
	}
	return false
}
