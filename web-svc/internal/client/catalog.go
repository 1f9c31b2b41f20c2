package client

import (
	"fmt"

	"reddys-kitchen/web-svc/internal/domain"
)

const (
	DefaultImage    = "https://images.pexels.com/photos/11170284/pexels-photo-11170284.jpeg"
	DefaultEmoji    = "🍛"
	DefaultCategory = "Main Course"
	DefaultRating   = 4.5
)

type restaurantRecord struct {
	ID      string           `json:"_id"`
	Name    string           `json:"name"`
	Cuisine string           `json:"cuisine"`
	Rating  float64          `json:"rating"`
	Time    string           `json:"time"`
	Image   string           `json:"image"`
	Emoji   string           `json:"emoji"`
	Menu    []menuItemRecord `json:"menu"`
}

type menuItemRecord struct {
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	Price    float64  `json:"price"`
	Veg      *bool    `json:"veg"`
	Category string   `json:"category"`
	Rating   *float64 `json:"rating"`
}

// transform fills client defaults and assigns catalog-wide item ids of the
// form {restaurantID}-m{index}.
func transform(records []restaurantRecord) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(records))
	for _, r := range records {
		restaurant := domain.Restaurant{
			ID:      r.ID,
			Name:    r.Name,
			Cuisine: r.Cuisine,
			Rating:  r.Rating,
			Time:    r.Time,
			Image:   r.Image,
			Emoji:   r.Emoji,
			Menu:    make([]domain.MenuItem, 0, len(r.Menu)),
		}
		if restaurant.Image == "" {
			restaurant.Image = DefaultImage
		}
		if restaurant.Emoji == "" {
			restaurant.Emoji = DefaultEmoji
		}

		for i, m := range r.Menu {
			item := domain.MenuItem{
				ID:       ItemID(r.ID, i),
				Name:     m.Name,
				Desc:     m.Desc,
				Price:    m.Price,
				Veg:      m.Veg != nil && *m.Veg,
				Rating:   DefaultRating,
				Category: m.Category,
			}
			if m.Rating != nil && *m.Rating != 0 {
				item.Rating = *m.Rating
			}
			if item.Category == "" {
				item.Category = DefaultCategory
			}
			item.Tags = Tags(item.Veg)
			restaurant.Menu = append(restaurant.Menu, item)
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants
}

func ItemID(restaurantID string, index int) string {
	return fmt.Sprintf("%s-m%d", restaurantID, index)
}

func Tags(veg bool) string {
	if veg {
		return "Veg"
	}
	return "Non-Veg"
}

// DemoCatalog is shown when the storefront cannot be reached.
func DemoCatalog() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: "r1", Name: "Reddys Kitchen", Cuisine: "Indian", Rating: 4.6, Time: "30 mins",
			Image: DefaultImage, Emoji: DefaultEmoji,
			Menu: []domain.MenuItem{{
				ID: ItemID("r1", 0), Name: "Chicken Biryani", Price: 240,
				Rating: DefaultRating, Category: "Biryani", Tags: Tags(false),
			}},
		},
		{
			ID: "r2", Name: "Shoel Biriyani", Cuisine: "Arabian", Rating: 4.5, Time: "32 mins",
			Image: "https://images.pexels.com/photos/11232406/pexels-photo-11232406.jpeg", Emoji: DefaultEmoji,
			Menu: []domain.MenuItem{{
				ID: ItemID("r2", 0), Name: "Mandi Special", Price: 420,
				Rating: DefaultRating, Category: "Mandi", Tags: Tags(false),
			}},
		},
	}
}
