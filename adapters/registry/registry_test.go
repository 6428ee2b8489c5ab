// Package registry - In-memory registry and change feed tests
package registry

import (
	"context"
	"testing"

	"nava-ops/internal/errors"
)

func TestMemoryRegistryLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry(nil)

	a, err := reg.Create(ctx, "brand-1", "Downtown", "Riyadh")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.ID == "" || !a.Active {
		t.Fatalf("unexpected branch: %+v", a)
	}

	if _, err := reg.Create(ctx, "brand-1", "Airport", "Riyadh"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := reg.Create(ctx, "brand-2", "Marina", "Jeddah"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	count, err := reg.CountActive(ctx, "brand-1")
	if err != nil {
		t.Fatalf("CountActive failed: %v", err)
	}
	if count != 2 {
		t.Errorf("CountActive(brand-1) = %d, want 2", count)
	}

	branches, err := reg.List(ctx, "brand-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(branches) != 2 {
		t.Errorf("List(brand-1) returned %d branches, want 2", len(branches))
	}

	if err := reg.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	count, _ = reg.CountActive(ctx, "brand-1")
	if count != 1 {
		t.Errorf("CountActive after delete = %d, want 1", count)
	}

	if _, err := reg.Get(ctx, a.ID); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Get after delete = %v, want NOT_FOUND", err)
	}
}

func TestMemoryRegistryRejectsEmptyInput(t *testing.T) {
	reg := NewMemoryRegistry(nil)
	if _, err := reg.Create(context.Background(), "", "Downtown", ""); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Create with empty brand = %v, want INPUT_ERROR", err)
	}
	if _, err := reg.Create(context.Background(), "brand-1", "", ""); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Create with empty name = %v, want INPUT_ERROR", err)
	}
}

func TestHubDeliversRegistryEvents(t *testing.T) {
	ctx := context.Background()
	hub := NewHub()
	reg := NewMemoryRegistry(hub)

	events, cancel := hub.Subscribe()
	defer cancel()

	branch, err := reg.Create(ctx, "brand-1", "Downtown", "Riyadh")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := reg.Delete(ctx, branch.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	ev := <-events
	if ev.Type != BranchCreated || ev.Branch.ID != branch.ID {
		t.Errorf("first event = %s/%s, want %s/%s", ev.Type, ev.Branch.ID, BranchCreated, branch.ID)
	}
	ev = <-events
	if ev.Type != BranchDeleted {
		t.Errorf("second event = %s, want %s", ev.Type, BranchDeleted)
	}
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	if hub.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", hub.SubscriberCount())
	}
	cancel()
	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount after cancel = %d, want 0", hub.SubscriberCount())
	}
	// double cancel must be safe
	cancel()
}

func TestHubDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	// overflow the buffer; Publish must not block
	for i := 0; i < subscriberBuffer*2; i++ {
		hub.Publish(Event{Type: BranchCreated})
	}

	received := 0
	for {
		select {
		case <-events:
			received++
			continue
		default:
		}
		break
	}
	if received != subscriberBuffer {
		t.Errorf("received %d buffered events, want %d", received, subscriberBuffer)
	}
}
