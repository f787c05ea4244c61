package handlers

import (
	"testing"

	"ticketing-webapp/database"
	"ticketing-webapp/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stub store where a chosen set of ticket numbers is already taken.
type takenTicketsStore struct {
	taken map[int]bool
}

func (s *takenTicketsStore) Insert(booking model.Booking) error          { return nil }
func (s *takenTicketsStore) FindAll() ([]model.Booking, error)           { return nil, nil }
func (s *takenTicketsStore) Delete(id primitive.ObjectID) error          { return nil }
func (s *takenTicketsStore) UpdateStatus(id primitive.ObjectID, status string) error {
	return nil
}
func (s *takenTicketsStore) FindByID(id primitive.ObjectID) (model.Booking, error) {
	return model.Booking{}, database.ErrNotFound
}
func (s *takenTicketsStore) FindByTicketNumber(ticketNumber int) (model.Booking, error) {
	if s.taken[ticketNumber] {
		return model.Booking{TicketNumber: ticketNumber}, nil
	}
	return model.Booking{}, database.ErrNotFound
}

func TestNewTicketNumberRange(t *testing.T) {
	h := &Handler{Bookings: &takenTicketsStore{taken: map[int]bool{}}}

	for i := 0; i < 1000; i++ {
		ticketNumber := h.newTicketNumber()
		assert.GreaterOrEqual(t, ticketNumber, 100000)
		assert.LessOrEqual(t, ticketNumber, 999999)
	}
}

func TestNewTicketNumberRedrawsOnCollision(t *testing.T) {
	store := &takenTicketsStore{taken: map[int]bool{}}
	h := &Handler{Bookings: store}

	// mark a first draw as taken and check a later draw avoids it most of
	// the time; with 5 redraws against a single taken number the chance of
	// returning it is negligible
	taken := h.newTicketNumber()
	store.taken[taken] = true

	for i := 0; i < 100; i++ {
		assert.NotEqual(t, taken, h.newTicketNumber())
	}
}
