package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"ticketing-webapp/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	f := newFixture()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	f.users.users = append(f.users.users, model.UserData{
		Id:             primitive.NewObjectID(),
		Login:          "fake_admin",
		HashedPassword: string(hash),
		Role:           "admin",
	})

	tests := []struct {
		description  string
		bodyinput    []byte
		expectedCode int
	}{
		{
			description:  "admin login",
			bodyinput:    []byte("{\"login\":\"fake_admin\",\"password\":\"admin-pass\"}"),
			expectedCode: 200,
		},
		{
			description:  "wrong password",
			bodyinput:    []byte("{\"login\":\"fake_admin\",\"password\":\"guess\"}"),
			expectedCode: 401,
		},
		{
			description:  "unknown user",
			bodyinput:    []byte("{\"login\":\"nobody\",\"password\":\"admin-pass\"}"),
			expectedCode: 401,
		},
	}

	for _, test := range tests {
		req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(test.bodyinput))
		req.Header.Set("Content-Type", "application/json")

		res, err := f.app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)

		if test.expectedCode == 200 {
			var envelope map[string]interface{}
			resBody, _ := io.ReadAll(res.Body)
			assert.NoError(t, json.Unmarshal(resBody, &envelope))
			token, _ := envelope["data"].(string)
			assert.NotEmpty(t, token, "login must hand back a token")
		}
	}
}
