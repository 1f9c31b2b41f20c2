package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"reddys-kitchen/agg-svc/internal/domain"
	"reddys-kitchen/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
