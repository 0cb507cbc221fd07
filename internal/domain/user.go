package domain

import "time"

type User struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"password" json:"-"`
	ResetToken    string    `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExp time.Time `bson:"resetTokenExp,omitempty" json:"-"`
	Cart          Cart      `bson:"cart" json:"cart"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
