package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"ticketing-webapp/database"
	"ticketing-webapp/handlers"
	"ticketing-webapp/model"
	"ticketing-webapp/notify"
	"ticketing-webapp/router"
	"ticketing-webapp/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"
const testVerifyBase = "http://localhost:8080"

type fakeEventStore struct {
	events     []model.Event
	findCalls  int
	failInsert bool
}

func (s *fakeEventStore) Insert(event model.Event) error {
	if s.failInsert {
		return fmt.Errorf("insert refused")
	}
	s.events = append(s.events, event)
	return nil
}

func (s *fakeEventStore) FindAll() ([]model.Event, error) {
	return s.events, nil
}

func (s *fakeEventStore) FindByID(id primitive.ObjectID) (model.Event, error) {
	s.findCalls++
	for _, event := range s.events {
		if event.Id == id {
			return event, nil
		}
	}
	return model.Event{}, database.ErrNotFound
}

func (s *fakeEventStore) Replace(event model.Event) error {
	for i := range s.events {
		if s.events[i].Id == event.Id {
			s.events[i] = event
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeEventStore) Delete(id primitive.ObjectID) error {
	for i := range s.events {
		if s.events[i].Id == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

type fakeBookingStore struct {
	bookings   []model.Booking
	failInsert bool
}

func (s *fakeBookingStore) Insert(booking model.Booking) error {
	if s.failInsert {
		return fmt.Errorf("insert refused")
	}
	s.bookings = append(s.bookings, booking)
	return nil
}

func (s *fakeBookingStore) FindAll() ([]model.Booking, error) {
	return s.bookings, nil
}

func (s *fakeBookingStore) FindByID(id primitive.ObjectID) (model.Booking, error) {
	for _, booking := range s.bookings {
		if booking.Id == id {
			return booking, nil
		}
	}
	return model.Booking{}, database.ErrNotFound
}

func (s *fakeBookingStore) FindByTicketNumber(ticketNumber int) (model.Booking, error) {
	for _, booking := range s.bookings {
		if booking.TicketNumber == ticketNumber {
			return booking, nil
		}
	}
	return model.Booking{}, database.ErrNotFound
}

func (s *fakeBookingStore) UpdateStatus(id primitive.ObjectID, status string) error {
	for i := range s.bookings {
		if s.bookings[i].Id == id {
			s.bookings[i].Status = status
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeBookingStore) Delete(id primitive.ObjectID) error {
	for i := range s.bookings {
		if s.bookings[i].Id == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

type fakeUserStore struct {
	users []model.UserData
}

func (s *fakeUserStore) FindByLogin(login string) (model.UserData, error) {
	for _, user := range s.users {
		if user.Login == login {
			return user, nil
		}
	}
	return model.UserData{}, database.ErrNotFound
}

type fakeUploader struct {
	uploads  []string
	destroys []string
	fail     bool
}

func (u *fakeUploader) Upload(ctx context.Context, data []byte, folder string) (storage.UploadResult, error) {
	if u.fail {
		return storage.UploadResult{}, fmt.Errorf("upload refused")
	}
	publicID := fmt.Sprintf("%s/upload-%d", folder, len(u.uploads))
	u.uploads = append(u.uploads, publicID)
	return storage.UploadResult{URL: "https://media.test/" + publicID, PublicID: publicID}, nil
}

func (u *fakeUploader) Destroy(ctx context.Context, publicID string) error {
	u.destroys = append(u.destroys, publicID)
	return nil
}

type fakeMailer struct {
	sent []notify.TicketMail
	fail bool
}

func (m *fakeMailer) Send(mail notify.TicketMail) error {
	if m.fail {
		return fmt.Errorf("send refused")
	}
	m.sent = append(m.sent, mail)
	return nil
}

type fixture struct {
	app      *fiber.App
	events   *fakeEventStore
	bookings *fakeBookingStore
	users    *fakeUserStore
	media    *fakeUploader
	mail     *fakeMailer
}

func newFixture() *fixture {
	f := &fixture{
		events:   &fakeEventStore{},
		bookings: &fakeBookingStore{},
		users:    &fakeUserStore{},
		media:    &fakeUploader{},
		mail:     &fakeMailer{},
	}
	h := handlers.New(f.events, f.bookings, f.users, f.media, f.mail, testSecret, testVerifyBase)

	f.app = fiber.New()
	router.SetupRoutes(f.app, h, router.Config{
		JWTSecret:      testSecret,
		AllowedOrigins: "*",
		StaticDir:      "./testdata",
	})
	return f
}

func signedToken(t *testing.T, role string) string {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = "fake_admin"
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	claims["role"] = role

	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("cannot sign test token: %v", err)
	}
	return signed
}

type filePart struct {
	field string
	name  string
	data  []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []filePart) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			t.Fatalf("cannot write form field %v: %v", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.name)
		if err != nil {
			t.Fatalf("cannot write form file %v: %v", file.field, err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("cannot write form file %v: %v", file.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("cannot finalize multipart body: %v", err)
	}

	return body, writer.FormDataContentType()
}
