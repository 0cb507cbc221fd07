package domain

import "time"

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"imageUrl" json:"image_url"`
	UserID      string    `bson:"userId" json:"user_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
