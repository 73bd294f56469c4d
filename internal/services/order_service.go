// Package services orchestrates the order ledger across storage and AMQP.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"buyurtma/internal/amqp"
	"buyurtma/internal/core"
	"buyurtma/internal/orders"
)

// OrderService sits between the HTTP handlers and the repository. It applies
// editor-boundary validation, then announces changes over AMQP when a client
// is configured.
type OrderService struct {
	repo   *orders.Repository
	events *amqp.Client
}

func NewOrderService(repo *orders.Repository, events *amqp.Client) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
	}
}

// Load pulls the persisted collection into memory. A load error still leaves
// the repository usable, so it is reported but not fatal.
func (s *OrderService) Load(ctx context.Context) ([]core.Order, error) {
	return s.repo.Load(ctx)
}

func (s *OrderService) ListOrders() []core.Order {
	return s.repo.List()
}

func (s *OrderService) CreateOrder(ctx context.Context, draft core.Order) (core.Order, error) {
	if err := draft.Validate(); err != nil {
		return core.Order{}, fmt.Errorf("validate order: %w", err)
	}

	saved, err := s.repo.Add(ctx, draft)
	if err != nil {
		return core.Order{}, fmt.Errorf("add order: %w", err)
	}

	s.notify(ctx, amqp.ActionCreated, saved.ID)
	return saved, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, order core.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validate order: %w", err)
	}

	if _, err := s.repo.Update(ctx, order); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	s.notify(ctx, amqp.ActionUpdated, order.ID)
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove order: %w", err)
	}

	s.notify(ctx, amqp.ActionDeleted, id)
	return nil
}

func (s *OrderService) ClearOrders(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}

	s.notify(ctx, amqp.ActionCleared, "")
	return nil
}

// Summary aggregates the in-memory collection for the given period.
// Month 0 means the whole year.
func (s *OrderService) Summary(year, month int) core.Summary {
	return core.Summarize(s.repo.List(), year, month)
}

// Flush retries persisting the in-memory collection after a failed save.
func (s *OrderService) Flush(ctx context.Context) error {
	return s.repo.Flush(ctx)
}

// notify publishes a change event. Publish failures are logged and swallowed:
// the mutation already succeeded locally.
func (s *OrderService) notify(ctx context.Context, action, orderID string) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishOrderEvent(ctx, action, orderID, s.repo.Count()); err != nil {
		slog.ErrorContext(ctx, "Failed to publish order event",
			"action", action,
			"order_id", orderID,
			"error", err)
	}
}

func (s *OrderService) Close() error {
	if s.events != nil {
		if err := s.events.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
