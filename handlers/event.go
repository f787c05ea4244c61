package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"ticketing-webapp/database"
	"ticketing-webapp/errors"
	"ticketing-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxSponsorLogos = 10

const eventImageFolder = "events"
const sponsorLogoFolder = "sponsors"

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	if !h.IsAdmin(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	form, formErr := c.MultipartForm()
	if formErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", formErr))
	}

	newEvent := model.Event{
		Id:            primitive.NewObjectID(),
		Title:         formValue(form, "title", ""),
		Description:   formValue(form, "description", ""),
		Date:          formValue(form, "date", ""),
		Location:      formValue(form, "location", ""),
		Category:      formValue(form, "category", ""),
		Address:       formValue(form, "address", ""),
		StandardPrice: formValue(form, "standard_price", ""),
		VipPrice:      formValue(form, "vip_price", ""),
		EventTime:     formValue(form, "event_time", ""),
		Refreshments:  formValue(form, "refreshments", ""),
		SponsorLogos:  []string{},
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	if newEvent.Title == "" || newEvent.Date == "" {
		return errors.RaiseBadRequestError(c, "event title and date are required")
	}

	images := form.File["imageUrl"]
	if len(images) == 0 {
		return errors.RaiseBadRequestError(c, "event image is required")
	}
	logos := form.File["sponsorLogos"]
	if len(logos) > maxSponsorLogos {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("at most %v sponsor logos are allowed, got %v", maxSponsorLogos, len(logos)))
	}

	uploadedIDs := []string{}

	imageUpload, uploadErr := h.uploadFormFile(c, images[0], eventImageFolder)
	if uploadErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("media store error: %v", uploadErr))
	}
	newEvent.ImageUrl = imageUpload.URL
	uploadedIDs = append(uploadedIDs, imageUpload.PublicID)

	for _, logo := range logos {
		logoUpload, uploadErr := h.uploadFormFile(c, logo, sponsorLogoFolder)
		if uploadErr != nil {
			h.discardUploads(c, uploadedIDs)
			return errors.RaiseInternalServerError(c, fmt.Sprintf("media store error: %v", uploadErr))
		}
		newEvent.SponsorLogos = append(newEvent.SponsorLogos, logoUpload.URL)
		uploadedIDs = append(uploadedIDs, logoUpload.PublicID)
	}

	if writeErr := h.Events.Insert(newEvent); writeErr != nil {
		h.discardUploads(c, uploadedIDs)
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	newEventJson, jsonErr := json.MarshalIndent(newEvent, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(newEventJson))
}

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	events, dbErr := h.Events.FindAll()
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	eventsJson, jsonErr := json.MarshalIndent(events, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(eventsJson))
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed event id %v", c.Params("id")))
	}

	event, dbErr := h.Events.FindByID(objId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", c.Params("id")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	eventJson, jsonErr := json.MarshalIndent(event, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(eventJson))
}

// UpdateEvent is a partial update: every missing field keeps its previous
// value, and images are replaced only when new files are attached.
func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	if !h.IsAdmin(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed event id %v", c.Params("id")))
	}

	prevEvent, dbErr := h.Events.FindByID(objId)
	if dbErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", c.Params("id")))
	}
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	form, formErr := c.MultipartForm()
	if formErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable event parameters: %v", formErr))
	}

	updatedEvent := prevEvent
	updatedEvent.Title = formValue(form, "title", prevEvent.Title)
	updatedEvent.Description = formValue(form, "description", prevEvent.Description)
	updatedEvent.Date = formValue(form, "date", prevEvent.Date)
	updatedEvent.Location = formValue(form, "location", prevEvent.Location)
	updatedEvent.Category = formValue(form, "category", prevEvent.Category)
	updatedEvent.Address = formValue(form, "address", prevEvent.Address)
	updatedEvent.StandardPrice = formValue(form, "standard_price", prevEvent.StandardPrice)
	updatedEvent.VipPrice = formValue(form, "vip_price", prevEvent.VipPrice)
	updatedEvent.EventTime = formValue(form, "event_time", prevEvent.EventTime)
	updatedEvent.Refreshments = formValue(form, "refreshments", prevEvent.Refreshments)

	logos := form.File["sponsorLogos"]
	if len(logos) > maxSponsorLogos {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("at most %v sponsor logos are allowed, got %v", maxSponsorLogos, len(logos)))
	}

	uploadedIDs := []string{}

	if images := form.File["imageUrl"]; len(images) > 0 {
		imageUpload, uploadErr := h.uploadFormFile(c, images[0], eventImageFolder)
		if uploadErr != nil {
			return errors.RaiseInternalServerError(c, fmt.Sprintf("media store error: %v", uploadErr))
		}
		updatedEvent.ImageUrl = imageUpload.URL
		uploadedIDs = append(uploadedIDs, imageUpload.PublicID)
	}

	if len(logos) > 0 {
		updatedEvent.SponsorLogos = []string{}
		for _, logo := range logos {
			logoUpload, uploadErr := h.uploadFormFile(c, logo, sponsorLogoFolder)
			if uploadErr != nil {
				h.discardUploads(c, uploadedIDs)
				return errors.RaiseInternalServerError(c, fmt.Sprintf("media store error: %v", uploadErr))
			}
			updatedEvent.SponsorLogos = append(updatedEvent.SponsorLogos, logoUpload.URL)
			uploadedIDs = append(uploadedIDs, logoUpload.PublicID)
		}
	}

	if updateErr := h.Events.Replace(updatedEvent); updateErr != nil {
		h.discardUploads(c, uploadedIDs)
		if updateErr == database.ErrNotFound {
			return errors.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", c.Params("id")))
		}
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	updatedEventJson, jsonErr := json.MarshalIndent(updatedEvent, "", "	")
	if jsonErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", jsonErr))
	}

	return c.SendString(string(updatedEventJson))
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	if !h.IsAdmin(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	objId, idErr := primitive.ObjectIDFromHex(c.Params("id"))
	if idErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("malformed event id %v", c.Params("id")))
	}

	deleteErr := h.Events.Delete(objId)
	if deleteErr == database.ErrNotFound {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("event %v not found", c.Params("id")))
	}
	if deleteErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("event with id %v was deleted", c.Params("id"))})
}
