package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddys-kitchen/agg-svc/internal/domain"
	"reddys-kitchen/agg-svc/internal/storage"
)

func setupStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewStore(rdb), mr
}

func TestStore_RecordOrder(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)

	event := domain.OrderEvent{
		Type:    domain.OrderPlacedEvent,
		OrderID: "a",
		Items: []domain.OrderItem{
			{RestaurantName: "Reddys Kitchen", Name: "Chicken Biryani", Qty: 1},
			{RestaurantName: "Shoel Biriyani", Name: "Mandi Special", Qty: 2},
		},
		Timestamp: day,
	}
	require.NoError(t, store.RecordOrder(ctx, event))

	event.OrderID = "b"
	event.Items = []domain.OrderItem{{RestaurantName: "Shoel Biriyani", Name: "Mandi Special", Qty: 3}}
	require.NoError(t, store.RecordOrder(ctx, event))

	score, err := mr.ZScore(storage.PopularKey, "Shoel Biriyani|Mandi Special")
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)

	score, err = mr.ZScore(storage.PopularKey, "Reddys Kitchen|Chicken Biryani")
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	dailyKey := storage.DailyKey(day)
	assert.Equal(t, "dishes:popular:2026-03-07", dailyKey)
	score, err = mr.ZScore(dailyKey, "Shoel Biriyani|Mandi Special")
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(dailyKey))
	assert.Equal(t, time.Duration(0), mr.TTL(storage.PopularKey))

	mr.FastForward(8 * 24 * time.Hour)
	assert.False(t, mr.Exists(dailyKey))
	assert.True(t, mr.Exists(storage.PopularKey))
}

func TestStore_RecordOrderSkipsEmptyItems(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, domain.OrderEvent{Type: domain.OrderPlacedEvent}))
	assert.False(t, mr.Exists(storage.PopularKey))

	require.NoError(t, store.RecordOrder(ctx, domain.OrderEvent{
		Type:  domain.OrderPlacedEvent,
		Items: []domain.OrderItem{{RestaurantName: "Reddys Kitchen", Name: "Chicken Biryani", Qty: 0}},
	}))
	assert.False(t, mr.Exists(storage.PopularKey))
}

func TestStore_RecordOrderRedisDown(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	err := store.RecordOrder(context.Background(), domain.OrderEvent{
		OrderID: "a",
		Items:   []domain.OrderItem{{RestaurantName: "Reddys Kitchen", Name: "Chicken Biryani", Qty: 1}},
	})
	assert.ErrorContains(t, err, "record order a")
}
