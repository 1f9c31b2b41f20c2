package domain

import "time"

const OrderPlacedEvent = "order_placed"

type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	Timestamp time.Time   `json:"timestamp"`
}

type OrderItem struct {
	RestaurantName string  `json:"restaurantName"`
	Name           string  `json:"name"`
	Qty            int     `json:"qty"`
	Price          float64 `json:"price"`
}

// DishMember is the sorted set member naming one dish.
func DishMember(restaurantName, name string) string {
	return restaurantName + "|" + name
}
