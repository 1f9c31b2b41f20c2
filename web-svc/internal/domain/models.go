package domain

import "time"

type Restaurant struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Cuisine string     `json:"cuisine"`
	Rating  float64    `json:"rating"`
	Time    string     `json:"time"`
	Image   string     `json:"image"`
	Emoji   string     `json:"emoji"`
	Menu    []MenuItem `json:"menu"`
}

// MenuItem IDs are unique across the whole catalog, not just within one menu.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Desc     string  `json:"desc"`
	Price    float64 `json:"price"`
	Veg      bool    `json:"veg"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	Tags     string  `json:"tags"`
}

// Dish is a menu item annotated with the restaurant it belongs to.
type Dish struct {
	MenuItem
	RestaurantID     string  `json:"restaurantId"`
	RestaurantName   string  `json:"restaurantName"`
	RestaurantRating float64 `json:"restaurantRating"`
}

type Order struct {
	ID           string      `json:"_id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Payment      string      `json:"payment"`
	Total        float64     `json:"total"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type OrderItem struct {
	RestaurantName string  `json:"restaurantName"`
	Name           string  `json:"name"`
	Qty            int     `json:"qty"`
	Price          float64 `json:"price"`
}

func (r Restaurant) Item(itemID string) (MenuItem, bool) {
	for _, item := range r.Menu {
		if item.ID == itemID {
			return item, true
		}
	}
	return MenuItem{}, false
}
