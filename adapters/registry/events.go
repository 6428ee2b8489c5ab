// Package registry - Branch change feed
//
// Registry mutations publish events on an explicit channel. Presentation
// layers subscribe and re-invoke the pure pricing functions on each event;
// no subscription logic lives inside the calculator.
package registry

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"nava-ops/core/types"
	"nava-ops/internal/logging"
)

// EventType identifies a branch change
type EventType string

const (
	// BranchCreated fires after a branch is registered
	BranchCreated EventType = "branch.created"

	// BranchDeleted fires after a branch is removed
	BranchDeleted EventType = "branch.deleted"
)

// Event is one branch change notification
type Event struct {
	// Type is the change kind
	Type EventType `json:"type"`

	// Branch is the affected branch
	Branch *types.Branch `json:"branch"`

	// At is when the change happened
	At time.Time `json:"at"`
}

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind starts losing events.
const subscriberBuffer = 16

// Hub fans branch change events out to subscribers
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber. The returned cancel function
// removes the subscription and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Event, subscriberBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers an event to all subscribers. Delivery never blocks;
// a full subscriber drops the event.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			logging.Warn("dropping branch event for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("event", string(ev.Type)))
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
