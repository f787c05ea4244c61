package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserData holds the admin credentials record. Regular attendees never log
// in; the only role in use is "admin".
type UserData struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"password_hash" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
}
