package handlers

import (
	"fmt"
	"time"

	"ticketing-webapp/database"
	"ticketing-webapp/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func (h *Handler) Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, getErr := h.Users.FindByLogin(creds.Login)
	if getErr == database.ErrNotFound {
		return errors.RaisePermissionsError(c, "invalid login or password")
	}
	if getErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", getErr))
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return errors.RaisePermissionsError(c, "invalid login or password")
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()
	claims["role"] = user.Role

	t, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot sign token: %v", err))
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}
