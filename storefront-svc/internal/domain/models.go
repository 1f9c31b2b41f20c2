package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// DeliveryFee is the flat charge added to every non-empty order.
const DeliveryFee = 40.0

// Restaurant is a catalog record as stored in the catalog file.
type Restaurant struct {
	ID      string     `json:"_id" yaml:"_id"`
	Name    string     `json:"name" yaml:"name"`
	Cuisine string     `json:"cuisine" yaml:"cuisine"`
	Rating  float64    `json:"rating" yaml:"rating"`
	Time    string     `json:"time" yaml:"time"`
	Image   string     `json:"image,omitempty" yaml:"image,omitempty"`
	Emoji   string     `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Menu    []MenuItem `json:"menu" yaml:"menu"`
}

// MenuItem keeps optional fields as pointers so absent values survive the
// round trip and clients can apply their own defaults.
type MenuItem struct {
	Name     string   `json:"name" yaml:"name"`
	Desc     string   `json:"desc,omitempty" yaml:"desc,omitempty"`
	Price    float64  `json:"price" yaml:"price"`
	Veg      *bool    `json:"veg,omitempty" yaml:"veg,omitempty"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

type Order struct {
	ID           string      `json:"_id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Payment      string      `json:"payment"`
	Total        float64     `json:"total"`
	Items        []OrderItem `json:"items"`
	QRCode       string      `json:"qr_code,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type OrderItem struct {
	RestaurantName string  `json:"restaurantName"`
	Name           string  `json:"name"`
	Qty            int     `json:"qty"`
	Price          float64 `json:"price"`
}

// Subtotal sums qty × price over the order lines.
func (o *Order) Subtotal() float64 {
	subtotal := 0.0
	for _, item := range o.Items {
		subtotal += float64(item.Qty) * item.Price
	}
	return subtotal
}

const OrderPlacedEvent = "order_placed"

type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	Timestamp time.Time   `json:"timestamp"`
}

// Ranking periods for popular dishes.
const (
	PeriodAll   = "all"
	PeriodToday = "today"
)

// PopularDish is one entry of the aggregated dish ranking.
type PopularDish struct {
	RestaurantName string  `json:"restaurantName"`
	Name           string  `json:"name"`
	Ordered        float64 `json:"ordered"`
}
