package catalog

import "reddys-kitchen/web-svc/internal/domain"

// AllDishes flattens every menu in catalog order.
func AllDishes(restaurants []domain.Restaurant) []domain.Dish {
	var dishes []domain.Dish
	for _, r := range restaurants {
		for _, item := range r.Menu {
			dishes = append(dishes, domain.Dish{
				MenuItem:         item,
				RestaurantID:     r.ID,
				RestaurantName:   r.Name,
				RestaurantRating: r.Rating,
			})
		}
	}
	return dishes
}

// HomeRow is a named strip of dishes on the landing page.
type HomeRow struct {
	Key        string   `json:"key"`
	Categories []string `json:"categories"`
}

var HomeRows = []HomeRow{
	{Key: "biryani", Categories: []string{"Biryani"}},
	{Key: "mandi", Categories: []string{"Mandi"}},
	{Key: "fastfood", Categories: []string{"Pizza", "Burger", "Veg"}},
	{Key: "dessert", Categories: []string{"Dessert", "Beverage"}},
}

func (row HomeRow) Dishes(dishes []domain.Dish) []domain.Dish {
	out := make([]domain.Dish, 0, HomeRowSize)
	for _, d := range dishes {
		if len(out) == HomeRowSize {
			break
		}
		for _, category := range row.Categories {
			if d.Category == category {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// Home builds every landing page row keyed by row name.
func Home(restaurants []domain.Restaurant) map[string][]domain.Dish {
	dishes := AllDishes(restaurants)
	rows := make(map[string][]domain.Dish, len(HomeRows))
	for _, row := range HomeRows {
		rows[row.Key] = row.Dishes(dishes)
	}
	return rows
}
