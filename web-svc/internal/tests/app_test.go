package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reddys-kitchen/web-svc/internal/app"
	"reddys-kitchen/web-svc/internal/cart"
	"reddys-kitchen/web-svc/internal/checkout"
	"reddys-kitchen/web-svc/internal/domain"
	"reddys-kitchen/web-svc/internal/mocks"
)

var sampleCatalog = []domain.Restaurant{
	{
		ID: "r1", Name: "Reddys Kitchen", Cuisine: "Indian", Rating: 4.6, Time: "30 mins",
		Menu: []domain.MenuItem{
			{ID: "r1-m0", Name: "Chicken Biryani", Price: 240, Category: "Biryani", Tags: "Non-Veg"},
			{ID: "r1-m1", Name: "Veg Biryani", Price: 190, Veg: true, Category: "Biryani", Tags: "Veg"},
		},
	},
	{
		ID: "r2", Name: "Shoel Biriyani", Cuisine: "Arabian", Rating: 4.5, Time: "32 mins",
		Menu: []domain.MenuItem{
			{ID: "r2-m0", Name: "Mandi Special", Price: 420, Category: "Mandi", Tags: "Non-Veg"},
		},
	},
}

var deliveryForm = checkout.Form{Name: "Asha", Phone: "9999999999", Address: "12 MG Road", Payment: "cod"}

func loadedApp(t *testing.T) (*app.App, *mocks.Store) {
	store := mocks.NewStore(t)
	store.On("FetchCatalog", mock.Anything).Return(sampleCatalog, nil).Once()

	a := app.New(store, zap.NewNop(), time.UTC)
	a.LoadCatalog(context.Background())
	return a, store
}

func TestApp_LoadCatalog(t *testing.T) {
	t.Run("from store", func(t *testing.T) {
		a, _ := loadedApp(t)
		assert.False(t, a.State().DemoCatalog)
		assert.Len(t, a.Restaurants().Cards, 2)
	})

	t.Run("falls back to demo catalog", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("FetchCatalog", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		a := app.New(store, zap.NewNop(), time.UTC)
		a.LoadCatalog(context.Background())

		page := a.Restaurants()
		assert.True(t, a.State().DemoCatalog)
		require.Len(t, page.Cards, 2)
		assert.Equal(t, "r1", page.Cards[0].Restaurant.ID)
		assert.True(t, a.Add("r1", "r1-m0"))
	})

	t.Run("empty catalog renders empty state", func(t *testing.T) {
		store := mocks.NewStore(t)
		store.On("FetchCatalog", mock.Anything).Return([]domain.Restaurant{}, nil).Once()

		a := app.New(store, zap.NewNop(), time.UTC)
		a.LoadCatalog(context.Background())

		page := a.Restaurants()
		assert.True(t, page.Empty)
		assert.NotNil(t, page.Cards)
	})
}

func TestApp_RefreshOrders(t *testing.T) {
	a, store := loadedApp(t)

	store.On("FetchOrders", mock.Anything).Return([]domain.Order{{ID: "65f0c0ffee1234567890abcd", Total: 520}}, nil).Once()
	a.RefreshOrders(context.Background())
	page := a.Orders()
	require.False(t, page.Empty)
	assert.Equal(t, "90abcd", page.Orders[0].ShortID)

	store.On("FetchOrders", mock.Anything).Return(nil, errors.New("timeout")).Once()
	a.RefreshOrders(context.Background())
	assert.True(t, a.Orders().Empty)
}

func TestApp_Filters(t *testing.T) {
	a, _ := loadedApp(t)

	a.SetCuisine("Arabian")
	assert.Equal(t, []string{"r2"}, cardIDs(a.Restaurants()))

	a.SetType("Veg")
	assert.Equal(t, []string{"r2"}, cardIDs(a.Restaurants()), "cuisine takes precedence over type")

	a.SetCuisine("")
	assert.Equal(t, []string{"r1"}, cardIDs(a.Restaurants()))
	assert.Equal(t, "all", a.State().Filter.Cuisine)
	assert.Equal(t, "Veg", a.State().Filter.Type)

	a.Search("  MANDI ")
	state := a.State()
	assert.Equal(t, app.ViewRestaurants, state.View)
	assert.Equal(t, "MANDI", state.Filter.Search)
	assert.Equal(t, []string{"r2"}, cardIDs(a.Restaurants()))

	a.Search("")
	a.SetType("all")
	assert.Equal(t, []string{"r1", "r2"}, cardIDs(a.Restaurants()))
}

func TestApp_JumpToType(t *testing.T) {
	a, _ := loadedApp(t)

	a.JumpToType("Mandi")
	state := a.State()
	assert.Equal(t, app.ViewRestaurants, state.View)
	assert.Equal(t, "Mandi", state.Filter.Type)
	assert.Equal(t, []string{"r2"}, cardIDs(a.Restaurants()))

	a.JumpToType("")
	assert.Equal(t, "Mandi", a.State().Filter.Type)
}

func TestApp_Navigate(t *testing.T) {
	a, _ := loadedApp(t)
	assert.Equal(t, app.ViewHome, a.State().View)

	require.NoError(t, a.Navigate(app.ViewOrders))
	assert.Equal(t, app.ViewOrders, a.State().View)

	assert.ErrorIs(t, a.Navigate("checkout"), app.ErrUnknownView)
	assert.Equal(t, app.ViewOrders, a.State().View)
}

func TestApp_CartCommands(t *testing.T) {
	a, _ := loadedApp(t)

	require.True(t, a.Add("r1", "r1-m0"))
	require.True(t, a.Add("r1", "r1-m0"))
	assert.Equal(t, app.ViewCart, a.State().View)

	page := a.Cart()
	assert.Equal(t, []cart.Line{{
		RestaurantID: "r1", RestaurantName: "Reddys Kitchen", ItemID: "r1-m0",
		Name: "Chicken Biryani", Price: 240, Qty: 2,
	}}, page.Lines)
	assert.Equal(t, cart.Totals{Subtotal: 480, Delivery: 40, Total: 520}, page.Totals)

	require.NoError(t, a.Navigate(app.ViewHome))
	assert.False(t, a.Add("r1", "r9-m0"))
	assert.Equal(t, app.ViewHome, a.State().View, "unknown items do not navigate")

	a.Add("r2", "r2-m0")
	a.Increment("r2", "r2-m0")
	a.Decrement("r1", "r1-m0")
	a.Decrement("r1", "r1-m0")
	a.Decrement("r1", "r1-m0")
	page = a.Cart()
	require.Len(t, page.Lines, 1)
	assert.Equal(t, 2, page.Lines[0].Qty)

	a.Remove("r2", "r2-m0")
	assert.True(t, a.Cart().Empty)
	assert.Equal(t, cart.Totals{}, a.Cart().Totals)
}

func TestApp_Home(t *testing.T) {
	a, _ := loadedApp(t)
	rows := a.Home()
	assert.Len(t, rows["biryani"], 2)
	assert.Len(t, rows["mandi"], 1)
	assert.Empty(t, rows["dessert"])
}

func TestApp_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart never reaches the store", func(t *testing.T) {
		a, store := loadedApp(t)

		_, err := a.Checkout(ctx, deliveryForm)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		state := a.State()
		assert.Equal(t, app.NoticeEmptyCart, state.Notice)
		assert.Equal(t, checkout.Form{}, state.Form)
		assert.True(t, a.Cart().Empty)
		store.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
	})

	t.Run("success clears cart and shows orders", func(t *testing.T) {
		a, store := loadedApp(t)
		a.Add("r1", "r1-m0")
		a.Add("r2", "r2-m0")
		a.Increment("r2", "r2-m0")

		placed := domain.Order{ID: "65f0c0ffee1234567890abcd", CustomerName: "Asha", Total: 1120}
		store.On("SubmitOrder", mock.Anything, mock.MatchedBy(func(s checkout.Submission) bool {
			return s.Total == 1120 && s.CustomerName == "Asha" && len(s.Items) == 2 && s.Items[1].Qty == 2
		})).Return(&placed, nil).Once()
		store.On("FetchOrders", mock.Anything).Return([]domain.Order{placed}, nil).Once()

		order, err := a.Checkout(ctx, deliveryForm)
		require.NoError(t, err)
		assert.Equal(t, placed.ID, order.ID)

		state := a.State()
		assert.True(t, a.Cart().Empty)
		assert.Equal(t, checkout.Form{}, state.Form)
		assert.Equal(t, app.ViewOrders, state.View)
		assert.Equal(t, app.NoticeOrderPlaced, state.Notice)
		assert.Len(t, a.Orders().Orders, 1)

		a.DismissNotice()
		assert.Empty(t, a.State().Notice)
	})

	t.Run("failure keeps cart and form", func(t *testing.T) {
		a, store := loadedApp(t)
		a.Add("r1", "r1-m0")

		store.On("SubmitOrder", mock.Anything, mock.Anything).Return(nil, errors.New("unexpected status 500")).Once()

		_, err := a.Checkout(ctx, deliveryForm)
		assert.ErrorIs(t, err, checkout.ErrSubmitFailed)

		state := a.State()
		assert.Equal(t, app.NoticeSubmitFailed, state.Notice)
		assert.Equal(t, app.ViewCart, state.View)
		assert.Equal(t, deliveryForm, state.Form)
		assert.Equal(t, 1, state.CartCount)
		store.AssertNotCalled(t, "FetchOrders", mock.Anything)
	})

	t.Run("browsing continues while submitting", func(t *testing.T) {
		a, store := loadedApp(t)
		a.Add("r1", "r1-m0")

		submitted := make(chan struct{})
		release := make(chan struct{})
		store.On("SubmitOrder", mock.Anything, mock.Anything).Return(
			func(context.Context, checkout.Submission) (*domain.Order, error) {
				close(submitted)
				<-release
				return &domain.Order{ID: "abc"}, nil
			}).Once()
		store.On("FetchOrders", mock.Anything).Return([]domain.Order{}, nil).Once()

		done := make(chan error, 1)
		go func() {
			_, err := a.Checkout(ctx, deliveryForm)
			done <- err
		}()

		<-submitted
		a.SetCuisine("Indian")
		assert.Equal(t, []string{"r1"}, cardIDs(a.Restaurants()))
		close(release)

		require.NoError(t, <-done)
		assert.Equal(t, app.ViewOrders, a.State().View)
	})
}

func cardIDs(page app.RestaurantsPage) []string {
	out := make([]string, 0, len(page.Cards))
	for _, c := range page.Cards {
		out = append(out, c.Restaurant.ID)
	}
	return out
}
