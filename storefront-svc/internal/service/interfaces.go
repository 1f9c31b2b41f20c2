package service

import (
	"context"
	"time"

	"reddys-kitchen/storefront-svc/internal/domain"
)

type CatalogSource interface {
	Load() ([]domain.Restaurant, error)
}

type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]domain.Restaurant, bool, error)
	SetCatalog(ctx context.Context, restaurants []domain.Restaurant) error
}

type PopularityReader interface {
	// TopDishes reads the ranking for one UTC day, or the all-time ranking
	// when day is zero.
	TopDishes(ctx context.Context, day time.Time, limit int) ([]domain.PopularDish, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Popular(ctx context.Context, period string, limit int) ([]domain.PopularDish, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
	QRLink(id string) string
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
