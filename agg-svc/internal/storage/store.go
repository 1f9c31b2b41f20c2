package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reddys-kitchen/agg-svc/internal/domain"
)

const (
	PopularKey  = "dishes:popular"
	dailyPrefix = "dishes:popular:"
	dailyTTL    = 7 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func DailyKey(day time.Time) string {
	return dailyPrefix + day.UTC().Format("2006-01-02")
}

// RecordOrder adds every item quantity to the all-time and daily dish
// rankings. The daily key is bucketed by the event timestamp.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	if len(event.Items) == 0 {
		return nil
	}

	day := event.Timestamp
	if day.IsZero() {
		day = time.Now()
	}
	dailyKey := DailyKey(day)

	pipe := s.rdb.TxPipeline()
	for _, item := range event.Items {
		if item.Qty <= 0 {
			continue
		}
		member := domain.DishMember(item.RestaurantName, item.Name)
		pipe.ZIncrBy(ctx, PopularKey, float64(item.Qty), member)
		pipe.ZIncrBy(ctx, dailyKey, float64(item.Qty), member)
	}
	pipe.Expire(ctx, dailyKey, dailyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record order %s: %w", event.OrderID, err)
	}
	return nil
}
