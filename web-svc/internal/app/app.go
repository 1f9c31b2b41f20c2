package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"reddys-kitchen/web-svc/internal/cart"
	"reddys-kitchen/web-svc/internal/catalog"
	"reddys-kitchen/web-svc/internal/checkout"
	"reddys-kitchen/web-svc/internal/client"
	"reddys-kitchen/web-svc/internal/domain"
)

const (
	NoticeEmptyCart    = "Your cart is empty."
	NoticeOrderPlaced  = "✅ Order placed successfully!"
	NoticeSubmitFailed = "Failed to place order. Please try again."
)

var ErrUnknownView = errors.New("unknown view")

type Store interface {
	FetchCatalog(ctx context.Context) ([]domain.Restaurant, error)
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	SubmitOrder(ctx context.Context, submission checkout.Submission) (*domain.Order, error)
}

var _ Store = (*client.StoreClient)(nil)

type View string

const (
	ViewHome        View = "home"
	ViewRestaurants View = "restaurants"
	ViewCart        View = "cart"
	ViewOrders      View = "orders"
)

func ParseView(value string) (View, error) {
	switch v := View(value); v {
	case ViewHome, ViewRestaurants, ViewCart, ViewOrders:
		return v, nil
	default:
		return "", ErrUnknownView
	}
}

// App owns the storefront UI state. Commands take the lock only while they
// touch state, never across a store call, so browsing keeps working while a
// fetch or checkout is in flight. The last call to resolve wins.
type App struct {
	store Store
	log   *zap.Logger
	loc   *time.Location

	mu          sync.Mutex
	restaurants []domain.Restaurant
	demo        bool
	cart        *cart.Cart
	filter      catalog.Filter
	form        checkout.Form
	orders      []domain.Order
	view        View
	notice      string
}

func New(store Store, log *zap.Logger, loc *time.Location) *App {
	if loc == nil {
		loc = time.Local
	}
	return &App{
		store:  store,
		log:    log,
		loc:    loc,
		cart:   cart.New(),
		filter: catalog.NewFilter(),
		view:   ViewHome,
	}
}

// LoadCatalog replaces the catalog with the store's. When the store fails the
// built-in demo catalog is used instead.
func (a *App) LoadCatalog(ctx context.Context) {
	restaurants, err := a.store.FetchCatalog(ctx)
	demo := false
	if err != nil {
		a.log.Warn("Failed to load restaurants, using demo catalog", zap.Error(err))
		restaurants = client.DemoCatalog()
		demo = true
	} else {
		a.log.Info("Restaurants loaded", zap.Int("count", len(restaurants)))
	}

	a.mu.Lock()
	a.restaurants = restaurants
	a.demo = demo
	a.mu.Unlock()
}

// RefreshOrders replaces the order history. Failures leave it empty.
func (a *App) RefreshOrders(ctx context.Context) {
	orders, err := a.store.FetchOrders(ctx)
	if err != nil {
		a.log.Warn("Failed to load orders", zap.Error(err))
		orders = nil
	}

	a.mu.Lock()
	a.orders = orders
	a.mu.Unlock()
}

func (a *App) SetCuisine(cuisine string) {
	if cuisine == "" {
		cuisine = catalog.AllValue
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.Cuisine = cuisine
}

func (a *App) SetType(value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.Type = catalog.ParseType(value)
}

// JumpToType is the home page category shortcut.
func (a *App) JumpToType(value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value != "" {
		a.filter.Type = catalog.ParseType(value)
	}
	a.view = ViewRestaurants
}

func (a *App) Search(term string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.filter.Search = strings.TrimSpace(term)
	a.view = ViewRestaurants
}

func (a *App) Navigate(view View) error {
	if _, err := ParseView(string(view)); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = view
	return nil
}

// Add puts an item in the cart and shows the cart. Unknown ids are ignored.
func (a *App) Add(restaurantID, itemID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cart.Add(a.restaurants, restaurantID, itemID) {
		a.log.Debug("Ignoring add for unknown item", zap.String("restaurant_id", restaurantID), zap.String("item_id", itemID))
		return false
	}
	a.view = ViewCart
	return true
}

func (a *App) Increment(restaurantID, itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Increment(restaurantID, itemID)
}

func (a *App) Decrement(restaurantID, itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Decrement(restaurantID, itemID)
}

func (a *App) Remove(restaurantID, itemID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Remove(restaurantID, itemID)
}

// Checkout submits the cart with the given delivery details. On success the
// cart and form are cleared, orders are refreshed, and the orders view is
// shown, in that order. On a failed submission cart and form are kept for a
// retry. An empty cart is rejected before the form is recorded.
func (a *App) Checkout(ctx context.Context, form checkout.Form) (*domain.Order, error) {
	a.mu.Lock()
	lines := a.cart.Lines()
	if len(lines) == 0 {
		a.notice = NoticeEmptyCart
		a.mu.Unlock()
		return nil, checkout.ErrEmptyCart
	}
	a.form = form
	a.mu.Unlock()

	order, err := checkout.Submit(ctx, a.store, lines, form)
	if err != nil {
		a.log.Error("Order error", zap.Error(err))
		a.mu.Lock()
		a.notice = NoticeSubmitFailed
		a.mu.Unlock()
		return nil, err
	}

	a.mu.Lock()
	a.cart.Clear()
	a.form = checkout.Form{}
	a.mu.Unlock()

	a.RefreshOrders(ctx)

	a.mu.Lock()
	a.notice = NoticeOrderPlaced
	a.view = ViewOrders
	a.mu.Unlock()

	a.log.Info("Order placed", zap.String("order_id", order.ID), zap.Float64("total", order.Total))
	return order, nil
}

func (a *App) DismissNotice() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notice = ""
}
