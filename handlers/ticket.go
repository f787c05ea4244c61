package handlers

import (
	"fmt"
	"strconv"

	"ticketing-webapp/database"
	"ticketing-webapp/errors"
	"ticketing-webapp/model"
	"ticketing-webapp/notify"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const qrCodeSize = 256

// VerifyTicket is a presence check: the ticket is valid exactly when some
// booking carries the number.
func (h *Handler) VerifyTicket(c *fiber.Ctx) error {
	ticketNumber, parseErr := strconv.Atoi(c.Params("ticketNumber"))
	if parseErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed ticket number %v", c.Params("ticketNumber")))
	}

	booking, dbErr := h.Bookings.FindByTicketNumber(ticketNumber)
	if dbErr == database.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"valid":   false,
			"message": fmt.Sprintf("no booking with ticket number %v", ticketNumber),
			"data":    nil})
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"valid":   true,
		"message": "ticket is valid",
		"data":    booking})
}

func (h *Handler) verifyURL(ticketNumber int) string {
	return fmt.Sprintf("%s/api/booking/verify/%d", h.VerifyBase, ticketNumber)
}

// loadBookingForMail resolves the :id path param to a booking and its event
// title. When ok is false the response has already been written and the
// handler must return respErr as-is.
func (h *Handler) loadBookingForMail(c *fiber.Ctx) (booking model.Booking, eventTitle string, respErr error, ok bool) {
	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return model.Booking{}, "", errors.RaiseBadRequestError(c, fmt.Sprintf("malformed booking id %v", c.Params("id"))), false
	}

	booking, dbErr := h.Bookings.FindByID(objId)
	if dbErr == database.ErrNotFound {
		return model.Booking{}, "", errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v not found", c.Params("id"))), false
	}
	if dbErr != nil {
		return model.Booking{}, "", errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr)), false
	}

	// A dangling event reference still gets an email, just without a title.
	eventTitle = "your event"
	if event, findErr := h.Events.FindByID(booking.EventId); findErr == nil {
		eventTitle = event.Title
	}

	return booking, eventTitle, nil, true
}

// SendTicketEmail mails the default ticket template with the verification QR
// attached as an inline content-id image.
func (h *Handler) SendTicketEmail(c *fiber.Ctx) error {
	booking, eventTitle, respErr, ok := h.loadBookingForMail(c)
	if !ok {
		return respErr
	}

	qrPng, qrErr := notify.QRCodePNG(h.verifyURL(booking.TicketNumber), qrCodeSize)
	if qrErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("qr generation error: %v", qrErr))
	}

	mailErr := h.Mail.Send(notify.TicketMail{
		To:        booking.EmailAddress,
		Subject:   fmt.Sprintf("Your ticket for %s", eventTitle),
		HTMLBody:  notify.TicketEmailHTML(booking.FirstName, eventTitle, booking.TicketNumber),
		InlinePNG: qrPng,
	})
	if mailErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("mail transport error: %v", mailErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "ticket email sent",
		"data":    booking.EmailAddress})
}

// SendTicketEmailV2 takes caller-supplied HTML and substitutes a data-URI QR
// for the {{qrcode}} placeholder instead of attaching an inline part.
func (h *Handler) SendTicketEmailV2(c *fiber.Ctx) error {
	booking, eventTitle, respErr, ok := h.loadBookingForMail(c)
	if !ok {
		return respErr
	}

	payload := new(struct {
		Html string `json:"html"`
	})
	if jsonErr := c.BodyParser(payload); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable email payload: %v", jsonErr))
	}
	if payload.Html == "" {
		return errors.RaiseBadRequestError(c, "email html body is required")
	}

	qrDataURI, qrErr := notify.QRCodeDataURI(h.verifyURL(booking.TicketNumber), qrCodeSize)
	if qrErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("qr generation error: %v", qrErr))
	}

	mailErr := h.Mail.Send(notify.TicketMail{
		To:       booking.EmailAddress,
		Subject:  fmt.Sprintf("Your ticket for %s", eventTitle),
		HTMLBody: notify.SubstituteQRCode(payload.Html, qrDataURI),
	})
	if mailErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("mail transport error: %v", mailErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "ticket email sent",
		"data":    booking.EmailAddress})
}
