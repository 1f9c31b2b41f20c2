package catalog

import "reddys-kitchen/web-svc/internal/domain"

const (
	PreviewSize = 3
	HomeRowSize = 6
	DefaultTime = "30 mins"
)

// Card is one restaurant as shown in the restaurant list.
type Card struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Time       string            `json:"time"`
	Preview    []domain.MenuItem `json:"preview"`
}

// View returns the cards for every restaurant passing the filter, in catalog order.
func View(restaurants []domain.Restaurant, filter Filter) []Card {
	cards := make([]Card, 0, len(restaurants))
	for _, r := range restaurants {
		if !filter.Includes(r) {
			continue
		}
		eta := r.Time
		if eta == "" {
			eta = DefaultTime
		}
		cards = append(cards, Card{Restaurant: r, Time: eta, Preview: Preview(r, filter.Type)})
	}
	return cards
}

// Preview picks the menu items shown on a restaurant card. The type filter is
// applied regardless of which predicate selected the restaurant; when nothing
// matches, the first unfiltered items are shown instead.
func Preview(r domain.Restaurant, typ TypeFilter) []domain.MenuItem {
	items := r.Menu
	if !typ.IsAll() {
		matched := make([]domain.MenuItem, 0, len(r.Menu))
		for _, item := range r.Menu {
			if typ.Matches(item) {
				matched = append(matched, item)
			}
		}
		if len(matched) > 0 {
			items = matched
		}
	}
	if len(items) > PreviewSize {
		items = items[:PreviewSize]
	}
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}

func Find(restaurants []domain.Restaurant, id string) (domain.Restaurant, bool) {
	for _, r := range restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Restaurant{}, false
}
