package services

import (
	"context"
	"errors"
	"testing"

	"buyurtma/internal/blob/memory"
	"buyurtma/internal/core"
	"buyurtma/internal/orders"
)

func newTestService(t *testing.T) *OrderService {
	t.Helper()
	repo := orders.New(memory.New())
	if _, err := repo.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewOrderService(repo, nil)
}

func validOrder() core.Order {
	return core.Order{
		Date:            core.ParseDate("2025-03-05"),
		DiscountPercent: "10",
		Items: []core.Item{
			{Name: "Teapot", Price: "100", Customer: "Aziza"},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.CreateOrder(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected an assigned id")
	}
	if got := len(svc.ListOrders()); got != 1 {
		t.Errorf("expected 1 order, got %d", got)
	}
}

func TestCreateOrderRejectsInvalid(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name  string
		order core.Order
		want  error
	}{
		{"no items", core.Order{Date: core.ParseDate("2025-03-05")}, core.ErrNoItems},
		{"incomplete item", core.Order{
			Date:  core.ParseDate("2025-03-05"),
			Items: []core.Item{{Name: "Teapot"}},
		}, core.ErrIncompleteItem},
		{"bad discount", core.Order{
			Date:            core.ParseDate("2025-03-05"),
			DiscountPercent: "150",
			Items:           []core.Item{{Name: "Teapot", Price: "100"}},
		}, core.ErrInvalidDiscount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(context.Background(), tc.order); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
	if got := len(svc.ListOrders()); got != 0 {
		t.Errorf("rejected orders must not be stored, got %d", got)
	}
}

func TestUpdateOrder(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.CreateOrder(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	saved.Items[0].Price = "250"
	if err := svc.UpdateOrder(context.Background(), saved); err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	got := svc.ListOrders()
	if got[0].Items[0].Price != "250" {
		t.Errorf("price = %s, want 250", got[0].Items[0].Price)
	}

	missing := saved
	missing.ID = "no-such-id"
	if err := svc.UpdateOrder(context.Background(), missing); !errors.Is(err, orders.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteOrder(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.CreateOrder(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if err := svc.DeleteOrder(context.Background(), saved.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if got := len(svc.ListOrders()); got != 0 {
		t.Errorf("expected empty collection, got %d", got)
	}
	if err := svc.DeleteOrder(context.Background(), saved.ID); !errors.Is(err, orders.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestClearOrders(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CreateOrder(context.Background(), validOrder()); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if err := svc.ClearOrders(context.Background()); err != nil {
		t.Fatalf("ClearOrders: %v", err)
	}
	if got := len(svc.ListOrders()); got != 0 {
		t.Errorf("expected empty collection after clear, got %d", got)
	}
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)

	first := validOrder()
	if _, err := svc.CreateOrder(context.Background(), first); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	second := core.Order{
		Date: core.ParseDate("2025-07-01"),
		Items: []core.Item{
			{Name: "Vase", Price: "50", IsGift: true},
		},
	}
	if _, err := svc.CreateOrder(context.Background(), second); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	march := svc.Summary(2025, 3)
	if march.Orders != 1 || march.Revenue != 100 || march.Discount != 10 {
		t.Errorf("march summary = %+v", march)
	}

	year := svc.Summary(2025, core.WholeYear)
	if year.Orders != 2 || year.Revenue != 150 || year.GiftCost != 50 {
		t.Errorf("yearly summary = %+v", year)
	}
}
