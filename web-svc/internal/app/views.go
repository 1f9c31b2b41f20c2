package app

import (
	"reddys-kitchen/web-svc/internal/cart"
	"reddys-kitchen/web-svc/internal/catalog"
	"reddys-kitchen/web-svc/internal/checkout"
	"reddys-kitchen/web-svc/internal/domain"
	"reddys-kitchen/web-svc/internal/orderview"
)

type FilterState struct {
	Cuisine string `json:"cuisine"`
	Type    string `json:"type"`
	Search  string `json:"search"`
}

type State struct {
	View        View          `json:"view"`
	Filter      FilterState   `json:"filter"`
	Form        checkout.Form `json:"form"`
	CartCount   int           `json:"cartCount"`
	Notice      string        `json:"notice,omitempty"`
	DemoCatalog bool          `json:"demoCatalog"`
}

type RestaurantsPage struct {
	Filter FilterState    `json:"filter"`
	Cards  []catalog.Card `json:"cards"`
	Empty  bool           `json:"empty"`
}

type CartPage struct {
	Lines  []cart.Line `json:"lines"`
	Totals cart.Totals `json:"totals"`
	Empty  bool        `json:"empty"`
}

func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return State{
		View:        a.view,
		Filter:      a.filterState(),
		Form:        a.form,
		CartCount:   a.cart.Len(),
		Notice:      a.notice,
		DemoCatalog: a.demo,
	}
}

func (a *App) Restaurants() RestaurantsPage {
	a.mu.Lock()
	defer a.mu.Unlock()
	cards := catalog.View(a.restaurants, a.filter)
	return RestaurantsPage{Filter: a.filterState(), Cards: cards, Empty: len(cards) == 0}
}

func (a *App) Home() map[string][]domain.Dish {
	a.mu.Lock()
	defer a.mu.Unlock()
	return catalog.Home(a.restaurants)
}

func (a *App) Cart() CartPage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return CartPage{Lines: a.cart.Lines(), Totals: a.cart.Totals(), Empty: a.cart.IsEmpty()}
}

func (a *App) Orders() orderview.Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return orderview.Build(a.orders, a.loc)
}

func (a *App) filterState() FilterState {
	return FilterState{
		Cuisine: a.filter.Cuisine,
		Type:    a.filter.Type.String(),
		Search:  a.filter.Search,
	}
}
