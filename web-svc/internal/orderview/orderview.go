package orderview

import (
	"fmt"
	"time"

	"reddys-kitchen/web-svc/internal/domain"
)

const (
	shortIDLength  = 6
	missingID      = "N/A"
	noItems        = "No items"
	timestampStyle = "1/2/2006, 3:04:05 PM"
)

type Card struct {
	ShortID      string   `json:"shortId"`
	PlacedAt     string   `json:"placedAt"`
	Total        float64  `json:"total"`
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone"`
	Items        []string `json:"items"`
}

// Page is the order history. Empty is set when there is nothing to show so
// the UI renders its empty state instead of a blank list.
type Page struct {
	Empty  bool   `json:"empty"`
	Orders []Card `json:"orders"`
}

// Build renders orders in the order the store returned them.
func Build(orders []domain.Order, loc *time.Location) Page {
	if loc == nil {
		loc = time.Local
	}
	cards := make([]Card, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, Card{
			ShortID:      ShortID(o.ID),
			PlacedAt:     Timestamp(o.CreatedAt, loc),
			Total:        o.Total,
			CustomerName: o.CustomerName,
			Phone:        o.Phone,
			Items:        itemLines(o.Items),
		})
	}
	return Page{Empty: len(cards) == 0, Orders: cards}
}

func ShortID(id string) string {
	if id == "" {
		return missingID
	}
	if len(id) <= shortIDLength {
		return id
	}
	return id[len(id)-shortIDLength:]
}

func Timestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(timestampStyle)
}

func itemLines(items []domain.OrderItem) []string {
	if len(items) == 0 {
		return []string{noItems}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%d × %s (%s)", item.Qty, item.Name, item.RestaurantName))
	}
	return out
}
