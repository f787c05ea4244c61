package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"ticketing-webapp/model"
	"ticketing-webapp/notify"
	"ticketing-webapp/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStore interface {
	Insert(event model.Event) error
	FindAll() ([]model.Event, error)
	FindByID(id primitive.ObjectID) (model.Event, error)
	Replace(event model.Event) error
	Delete(id primitive.ObjectID) error
}

type BookingStore interface {
	Insert(booking model.Booking) error
	FindAll() ([]model.Booking, error)
	FindByID(id primitive.ObjectID) (model.Booking, error)
	FindByTicketNumber(ticketNumber int) (model.Booking, error)
	UpdateStatus(id primitive.ObjectID, status string) error
	Delete(id primitive.ObjectID) error
}

type UserStore interface {
	FindByLogin(login string) (model.UserData, error)
}

// Handler carries the explicitly constructed collaborators for every route.
// IsAdmin is an injectable authorization predicate; it defaults to the JWT
// role-claim check and can be swapped out in tests.
type Handler struct {
	Events     EventStore
	Bookings   BookingStore
	Users      UserStore
	Media      storage.Uploader
	Mail       notify.Sender
	IsAdmin    func(c *fiber.Ctx) bool
	JWTSecret  string
	VerifyBase string
}

func New(events EventStore, bookings BookingStore, users UserStore,
	media storage.Uploader, mail notify.Sender, jwtSecret string, verifyBase string) *Handler {
	return &Handler{
		Events:     events,
		Bookings:   bookings,
		Users:      users,
		Media:      media,
		Mail:       mail,
		IsAdmin:    isAdminRole,
		JWTSecret:  jwtSecret,
		VerifyBase: verifyBase,
	}
}

func isAdminRole(c *fiber.Ctx) bool {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// formValue reads a trimmed multipart field, falling back when the client
// did not supply it.
func formValue(form *multipart.Form, key string, fallback string) string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 && strings.TrimSpace(vals[0]) != "" {
		return strings.TrimSpace(vals[0])
	}
	return fallback
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open uploaded file %v: %v", fileHeader.Filename, err)
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (h *Handler) uploadFormFile(c *fiber.Ctx, fileHeader *multipart.FileHeader, folder string) (storage.UploadResult, error) {
	fileBytes, err := readFormFile(fileHeader)
	if err != nil {
		return storage.UploadResult{}, err
	}
	return h.Media.Upload(c.Context(), fileBytes, folder)
}

// discardUploads is the compensation path: a database write failed after the
// uploads succeeded, so remove the orphaned assets best-effort.
func (h *Handler) discardUploads(c *fiber.Ctx, publicIDs []string) {
	for _, publicID := range publicIDs {
		if err := h.Media.Destroy(c.Context(), publicID); err != nil {
			log.Printf("failed to discard orphaned upload %v: %v", publicID, err)
		}
	}
}
