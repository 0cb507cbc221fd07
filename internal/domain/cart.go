package domain

// CartLine is a single productId/quantity pair inside a cart. A cart holds
// at most one line per product.
type CartLine struct {
	ProductID string `bson:"productId" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Cart is a value object embedded in its owning User document. It has no
// identity of its own. TotalPrice is a cached running total; PlaceOrder and
// the sweeper recompute it from live product data instead of trusting it.
type Cart struct {
	Lines      []CartLine `bson:"products" json:"products"`
	TotalPrice float64    `bson:"totalPrice" json:"total_price"`
}

// Add increments the quantity of an existing line by 1, or inserts a new
// quantity-1 line, and bumps the cached total by the product's price. The
// caller must have resolved the product already: a cart is never mutated for
// a product that does not exist.
func (c *Cart) Add(productID string, price float64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			c.TotalPrice += price
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ProductID: productID, Quantity: 1})
	c.TotalPrice += price
}

// Remove deletes the line matching productID and decrements the cached total
// by quantity*price. Removing an absent product is a no-op: the cart is
// returned unchanged and Remove reports false, so the total cannot drift.
func (c *Cart) Remove(productID string, price float64) bool {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.TotalPrice -= float64(line.Quantity) * price
			return true
		}
	}
	return false
}

// Line returns the cart line for productID, if present.
func (c *Cart) Line(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Clear empties the cart. Used after an order snapshot is taken.
func (c *Cart) Clear() {
	c.Lines = nil
	c.TotalPrice = 0
}

// ComputeTotalPrice sums quantity*price over every line whose product is
// present in resolved. Lines referencing a vanished product contribute
// nothing. Pure function, same inputs always yield the same total.
func ComputeTotalPrice(lines []CartLine, resolved map[string]Product) float64 {
	var total float64
	for _, line := range lines {
		if p, ok := resolved[line.ProductID]; ok {
			total += float64(line.Quantity) * p.Price
		}
	}
	return total
}

// ResolvedLine joins a cart or order line to its live product record.
type ResolvedLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

// ResolvedCart is a cart joined against live product data for display and
// checkout. Lines whose product no longer exists are dropped during
// resolution, so TotalPrice here is always recomputed, never the cached one.
type ResolvedCart struct {
	Lines      []ResolvedLine `json:"products"`
	TotalPrice float64        `json:"total_price"`
}
