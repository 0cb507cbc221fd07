package domain

import "time"

// Order is a frozen snapshot of a user's cart taken at checkout time. Only
// productId and quantity are stored per line; price and title are joined
// from the live product collection when the order is displayed. Orders are
// immutable after creation, with one exception: the referential-integrity
// sweep removes lines whose product was deleted.
type Order struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	Cart      Cart      `bson:"cart" json:"cart"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ResolvedOrder is an order joined against current product records.
type ResolvedOrder struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Lines      []ResolvedLine `json:"products"`
	TotalPrice float64        `json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
}
