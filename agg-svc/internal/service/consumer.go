package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"reddys-kitchen/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	log    *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		log:    log,
	}
}

// Start reads order events until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.log.Info("Starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.log.Info("Aggregation consumer stopped")
				return
			}
			c.log.Error("Error reading message", zap.Error(err))
			continue
		}
		c.HandleMessage(ctx, message)
	}
}

// HandleMessage decodes one message. Malformed payloads and unknown event
// types are skipped.
func (c *Consumer) HandleMessage(ctx context.Context, message kafka.Message) {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.log.Warn("Skipping malformed message", zap.Int64("offset", message.Offset), zap.Error(err))
		return
	}

	if event.Type != domain.OrderPlacedEvent {
		c.log.Debug("Ignoring event", zap.String("type", event.Type))
		return
	}

	if err := c.ProcessOrder(ctx, event); err != nil {
		c.log.Error("Error recording order", zap.String("order_id", event.OrderID), zap.Error(err))
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) error {
	if event.Type != domain.OrderPlacedEvent {
		return nil
	}
	if err := c.Store.RecordOrder(ctx, event); err != nil {
		return err
	}
	c.log.Info("Recorded order", zap.String("order_id", event.OrderID), zap.Int("items", len(event.Items)))
	return nil
}
