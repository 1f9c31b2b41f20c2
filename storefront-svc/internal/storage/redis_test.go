package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddys-kitchen/storefront-svc/internal/domain"
)

func setupRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), server
}

func TestRedisCache_CatalogRoundTripAndExpiry(t *testing.T) {
	cache, server := setupRedisCache(t)
	ctx := context.Background()

	_, ok, err := cache.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	veg := true
	restaurants := []domain.Restaurant{{
		ID:      "r1",
		Name:    "Reddys Kitchen",
		Cuisine: "Indian",
		Menu:    []domain.MenuItem{{Name: "Paneer Tikka", Price: 180, Veg: &veg}},
	}}
	require.NoError(t, cache.SetCatalog(ctx, restaurants))

	cached, ok, err := cache.GetCatalog(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, restaurants, cached)

	server.FastForward(2 * time.Minute)
	_, ok, err = cache.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_CorruptCatalogIsAnError(t *testing.T) {
	cache, server := setupRedisCache(t)
	require.NoError(t, server.Set(catalogKey, "{not json"))

	_, ok, err := cache.GetCatalog(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisCache_TopDishes(t *testing.T) {
	cache, server := setupRedisCache(t)
	_, err := server.ZAdd(popularKey, 3, "Reddys Kitchen|Chicken Biryani")
	require.NoError(t, err)
	_, err = server.ZAdd(popularKey, 7, "Shoel Biriyani|Mandi Special")
	require.NoError(t, err)
	_, err = server.ZAdd(popularKey, 1, "Orphan Dish")
	require.NoError(t, err)

	dishes, err := cache.TopDishes(context.Background(), time.Time{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.PopularDish{
		{RestaurantName: "Shoel Biriyani", Name: "Mandi Special", Ordered: 7},
		{RestaurantName: "Reddys Kitchen", Name: "Chicken Biryani", Ordered: 3},
	}, dishes)

	all, err := cache.TopDishes(context.Background(), time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, domain.PopularDish{Name: "Orphan Dish", Ordered: 1}, all[2])
}

func TestRedisCache_TopDishesForDay(t *testing.T) {
	cache, server := setupRedisCache(t)
	day := time.Date(2026, 3, 7, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	_, err := server.ZAdd("dishes:popular:2026-03-07", 4, "Shoel Biriyani|Mandi Special")
	require.NoError(t, err)
	_, err = server.ZAdd(popularKey, 9, "Reddys Kitchen|Chicken Biryani")
	require.NoError(t, err)

	dishes, err := cache.TopDishes(context.Background(), day, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.PopularDish{{RestaurantName: "Shoel Biriyani", Name: "Mandi Special", Ordered: 4}}, dishes)

	dishes, err = cache.TopDishes(context.Background(), day.AddDate(0, 0, 1), 5)
	require.NoError(t, err)
	assert.Empty(t, dishes)
}
