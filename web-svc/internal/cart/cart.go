package cart

import (
	"reddys-kitchen/web-svc/internal/catalog"
	"reddys-kitchen/web-svc/internal/domain"
)

const DeliveryFee = 40.0

// Line is one distinct item in the cart. Name and price are copied from the
// catalog when the line is created.
type Line struct {
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	ItemID         string  `json:"itemId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Qty            int     `json:"qty"`
}

func (l Line) Amount() float64 { return float64(l.Qty) * l.Price }

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// Cart holds at most one line per (restaurant, item) pair, each with qty >= 1.
// The zero value is an empty cart.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add puts one unit of the item into the cart. It reports false and leaves
// the cart unchanged when the restaurant or item is unknown.
func (c *Cart) Add(restaurants []domain.Restaurant, restaurantID, itemID string) bool {
	restaurant, ok := catalog.Find(restaurants, restaurantID)
	if !ok {
		return false
	}
	item, ok := restaurant.Item(itemID)
	if !ok {
		return false
	}

	if i := c.index(restaurantID, itemID); i >= 0 {
		c.lines[i].Qty++
		return true
	}
	c.lines = append(c.lines, Line{
		RestaurantID:   restaurantID,
		RestaurantName: restaurant.Name,
		ItemID:         item.ID,
		Name:           item.Name,
		Price:          item.Price,
		Qty:            1,
	})
	return true
}

func (c *Cart) Increment(restaurantID, itemID string) {
	if i := c.index(restaurantID, itemID); i >= 0 {
		c.lines[i].Qty++
	}
}

// Decrement drops the line once its quantity reaches zero.
func (c *Cart) Decrement(restaurantID, itemID string) {
	i := c.index(restaurantID, itemID)
	if i < 0 {
		return
	}
	c.lines[i].Qty--
	if c.lines[i].Qty <= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Remove(restaurantID, itemID string) {
	if i := c.index(restaurantID, itemID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Clear() { c.lines = nil }

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Totals() Totals {
	return ComputeTotals(c.lines)
}

func ComputeTotals(lines []Line) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Amount()
	}
	var delivery float64
	if subtotal > 0 {
		delivery = DeliveryFee
	}
	return Totals{Subtotal: subtotal, Delivery: delivery, Total: subtotal + delivery}
}

func (c *Cart) index(restaurantID, itemID string) int {
	for i, l := range c.lines {
		if l.RestaurantID == restaurantID && l.ItemID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
