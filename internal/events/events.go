package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	EventUserSignedUp     = "user_signed_up"
	EventPostCreated      = "post_created"
	EventBlogCreated      = "blog_created"
	EventQueryCreated     = "query_created"
	EventQueryResolved    = "query_resolved"
	EventItineraryCreated = "itinerary_created"
	EventTicketBooked     = "ticket_booked"
	EventTicketCancelled  = "ticket_cancelled"
	EventCoinsAwarded     = "coins_awarded"
)

// CoinEventPayload describes a ledger movement for event consumers.
type CoinEventPayload struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// EntryEventPayload describes a created feed entry for event consumers.
type EntryEventPayload struct {
	EntryID  string `json:"entry_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Title    string `json:"title,omitempty"`
}

// TicketEventPayload describes a ticket state change for event consumers.
type TicketEventPayload struct {
	TicketID string `json:"ticket_id"`
	UserID   string `json:"user_id"`
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Status   string `json:"status"`
}

// Event represents a lightweight domain event.
type Event struct {
	ID        int64
	Type      string
	Payload   []byte
	CreatedAt time.Time
	Processed bool
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for events.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		// Handlers run synchronously; caller decides concurrency model.
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
