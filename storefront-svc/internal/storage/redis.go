package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"reddys-kitchen/storefront-svc/internal/domain"
)

const (
	catalogKey = "catalog:restaurants"
	// Written by agg-svc; members are "restaurantName|dishName".
	popularKey = "dishes:popular"
)

func popularKeyFor(day time.Time) string {
	if day.IsZero() {
		return popularKey
	}
	return popularKey + ":" + day.UTC().Format("2006-01-02")
}

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetCatalog(ctx context.Context) ([]domain.Restaurant, bool, error) {
	raw, err := c.Client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, false, err
	}
	return restaurants, true, nil
}

func (c *RedisCache) SetCatalog(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}

func (c *RedisCache) TopDishes(ctx context.Context, day time.Time, limit int) ([]domain.PopularDish, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, popularKeyFor(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	dishes := make([]domain.PopularDish, 0, len(entries))
	for _, entry := range entries {
		member, _ := entry.Member.(string)
		restaurantName, name, found := strings.Cut(member, "|")
		if !found {
			name, restaurantName = member, ""
		}
		dishes = append(dishes, domain.PopularDish{
			RestaurantName: restaurantName,
			Name:           name,
			Ordered:        entry.Score,
		})
	}
	return dishes, nil
}
