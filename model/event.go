package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Event struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Date          string             `json:"date" bson:"date"`
	Location      string             `json:"location" bson:"location"`
	Category      string             `json:"category" bson:"category"`
	Address       string             `json:"address" bson:"address"`
	StandardPrice string             `json:"standard_price" bson:"standard_price"`
	VipPrice      string             `json:"vip_price" bson:"vip_price"`
	EventTime     string             `json:"event_time" bson:"event_time"`
	Refreshments  string             `json:"refreshments" bson:"refreshments"`
	ImageUrl      string             `json:"image_url" bson:"image_url"`
	SponsorLogos  []string           `json:"sponsor_logos" bson:"sponsor_logos"`
	CreatedAt     string             `json:"created_at" bson:"created_at"`
}
