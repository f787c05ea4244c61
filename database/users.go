package database

import (
	"fmt"

	"ticketing-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

func (r *UserRepo) FindByLogin(login string) (model.UserData, error) {
	var user model.UserData
	err := r.col.FindOne(ctx, bson.D{primitive.E{Key: "login", Value: login}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return model.UserData{}, ErrNotFound
	}
	if err != nil {
		return model.UserData{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}
	return user, nil
}
