package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reddys-kitchen/storefront-svc/internal/domain"
)

var (
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrTotalMismatch = errors.New("order total does not match its items")
	ErrInvalidPeriod = errors.New("unknown ranking period")
)

const maxPopularLimit = 50

type CatalogService struct {
	source     CatalogSource
	cache      CatalogCache
	popularity PopularityReader
	log        *zap.Logger
	now        func() time.Time
}

// NewCatalogService accepts nil cache and popularity reader; both are optional.
func NewCatalogService(source CatalogSource, cache CatalogCache, popularity PopularityReader, log *zap.Logger) *CatalogService {
	return &CatalogService{
		source:     source,
		cache:      cache,
		popularity: popularity,
		log:        log,
		now:        time.Now,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		restaurants, ok, err := s.cache.GetCatalog(ctx)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return restaurants, nil
		}
	}

	restaurants, err := s.source.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, restaurants); err != nil {
			s.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return restaurants, nil
}

func (s *CatalogService) Popular(ctx context.Context, period string, limit int) ([]domain.PopularDish, error) {
	var day time.Time
	switch period {
	case "", domain.PeriodAll:
	case domain.PeriodToday:
		day = s.now().UTC()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	if s.popularity == nil {
		return []domain.PopularDish{}, nil
	}
	if limit <= 0 || limit > maxPopularLimit {
		limit = maxPopularLimit
	}
	return s.popularity.TopDishes(ctx, day, limit)
}

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
	log       *zap.Logger
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		qrEncoder: qr,
		log:       log,
		now:       time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := ValidateOrder(order); err != nil {
		return err
	}

	order.ID = uuid.NewString()
	order.CreatedAt = s.now().UTC()
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("store order: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      domain.OrderPlacedEvent,
			OrderID:   order.ID,
			Total:     order.Total,
			Items:     order.Items,
			Timestamp: order.CreatedAt,
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			s.log.Warn("publish order event failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)))
	return nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, nil
	}
	return s.qrEncoder.Generate(id)
}

func (s *OrderService) QRLink(id string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", id)
}

// ValidateOrder checks the customer details and lines of an incoming order and
// that its total equals the line subtotal plus the delivery fee.
func ValidateOrder(order *domain.Order) error {
	if strings.TrimSpace(order.CustomerName) == "" ||
		strings.TrimSpace(order.Phone) == "" ||
		strings.TrimSpace(order.Address) == "" {
		return fmt.Errorf("%w: customer name, phone and address are required", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for i, item := range order.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidOrder, i)
		}
		if item.Qty < 1 {
			return fmt.Errorf("%w: item %q has quantity %d", ErrInvalidOrder, item.Name, item.Qty)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrInvalidOrder, item.Name)
		}
	}

	expected := order.Subtotal() + domain.DeliveryFee
	if math.Abs(expected-order.Total) > 0.005 {
		return fmt.Errorf("%w: got %.2f, expected %.2f", ErrTotalMismatch, order.Total, expected)
	}
	return nil
}
