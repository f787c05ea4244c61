package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"ticketing-webapp/database"
	"ticketing-webapp/errors"
	"ticketing-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const receiptImageFolder = "receipts"

const ticketNumberMin = 100000
const ticketNumberSpan = 900000

// newTicketNumber draws a 6-digit ticket number, redrawing a few times when
// the draw is already taken. After that collisions are accepted.
func (h *Handler) newTicketNumber() int {
	draw := 0
	for attempt := 0; attempt < 5; attempt++ {
		draw = ticketNumberMin + rand.Intn(ticketNumberSpan)
		if _, err := h.Bookings.FindByTicketNumber(draw); err == database.ErrNotFound {
			return draw
		}
	}
	return draw
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	form, formErr := c.MultipartForm()
	if formErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", formErr))
	}

	receipts := form.File["receiptImage"]
	if len(receipts) == 0 {
		return errors.RaiseBadRequestError(c, "receipt image is required")
	}

	eventIdHex := formValue(form, "event_id", "")
	if eventIdHex == "" {
		return errors.RaiseBadRequestError(c, "event id is required")
	}
	eventId, idErr := primitive.ObjectIDFromHex(eventIdHex)
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed event id %v", eventIdHex))
	}

	// The referenced event is not required to exist, there is no foreign-key
	// enforcement on bookings.
	newBooking := model.Booking{
		Id:            primitive.NewObjectID(),
		FirstName:     formValue(form, "first_name", ""),
		LastName:      formValue(form, "last_name", ""),
		ContactNumber: formValue(form, "contact_number", ""),
		EmailAddress:  formValue(form, "email_address", ""),
		CityName:      formValue(form, "city_name", ""),
		TicketType:    formValue(form, "ticket_type", ""),
		EventId:       eventId,
		Status:        model.StatusPending,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	receiptUpload, uploadErr := h.uploadFormFile(c, receipts[0], receiptImageFolder)
	if uploadErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("media store error: %v", uploadErr))
	}
	newBooking.ReceiptImage = receiptUpload.URL
	newBooking.TicketNumber = h.newTicketNumber()

	if writeErr := h.Bookings.Insert(newBooking); writeErr != nil {
		h.discardUploads(c, []string{receiptUpload.PublicID})
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newBookingJson, jsonErr := json.MarshalIndent(newBooking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newBookingJson))
}

// GetBookings lists all bookings newest first with the referenced event
// resolved in memory. Dangling references come back with a null event.
func (h *Handler) GetBookings(c *fiber.Ctx) error {
	bookings, dbErr := h.Bookings.FindAll()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	eventCache := map[primitive.ObjectID]*model.Event{}
	populated := []model.BookingWithEvent{}
	for _, booking := range bookings {
		event, cached := eventCache[booking.EventId]
		if !cached {
			found, findErr := h.Events.FindByID(booking.EventId)
			if findErr == nil {
				event = &found
			} else if findErr != database.ErrNotFound {
				return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", findErr))
			}
			eventCache[booking.EventId] = event
		}
		populated = append(populated, model.BookingWithEvent{Booking: booking, Event: event})
	}

	bookingsJson, jsonErr := json.MarshalIndent(populated, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingsJson))
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id %v", c.Params("id")))
	}

	booking, dbErr := h.Bookings.FindByID(objId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", c.Params("id")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	bookingJson, jsonErr := json.MarshalIndent(booking, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(bookingJson))
}

func (h *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id %v", c.Params("id")))
	}

	payload := new(struct {
		Status string `json:"status"`
	})
	if jsonErr := c.BodyParser(payload); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status payload: %v", jsonErr))
	}

	if !model.IsValidStatus(payload.Status) {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("status %v is not one of Pending, Paid, Unpaid, Cancelled", payload.Status))
	}

	updateErr := h.Bookings.UpdateStatus(objId, payload.Status)
	if updateErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", c.Params("id")))
	}
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "booking status updated",
		"data":    payload.Status})
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	if !h.IsAdmin(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id %v", c.Params("id")))
	}

	deleteErr := h.Bookings.Delete(objId)
	if deleteErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", c.Params("id")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("booking with id %v was deleted", c.Params("id"))})
}
