package memory

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := New()

	if _, ok, err := store.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Get on empty store = ok %v err %v", ok, err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, ok, _ := store.Get(ctx, "k"); !ok || got != "v" {
		t.Fatalf("Get = %q ok %v", got, ok)
	}
	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatal("value survived Remove")
	}
}
