// Package feed relays database change events to WebSocket subscribers.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sapphire/internal/domain/entity"
	"sapphire/internal/infra/metrics"
)

// AllCollections subscribes a client to every collection.
const AllCollections = "*"

// Subscriber is one connected client.
type Subscriber interface {
	// Collection is the collection the client asked for, or AllCollections.
	Collection() string
	// Enqueue hands the payload to the client's writer without blocking.
	// It reports false when the client cannot keep up.
	Enqueue(payload []byte) bool
	// Close stops the client's writer.
	Close()
}

// Message is the frame sent to clients.
type Message struct {
	Collection string          `json:"collection"`
	Operation  string          `json:"operation"`
	Data       json.RawMessage `json:"data"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

type broadcast struct {
	collection string
	payload    []byte
}

// Hub fans change events out to the subscribers of their collection.
// The client set is owned by the Run goroutine.
type Hub struct {
	clients    map[string]map[Subscriber]struct{}
	register   chan Subscriber
	unregister chan Subscriber
	broadcast  chan broadcast
	done       chan struct{}
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewHub creates a hub; call Run to start it.
func NewHub(logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		clients:    make(map[string]map[Subscriber]struct{}),
		register:   make(chan Subscriber),
		unregister: make(chan Subscriber),
		broadcast:  make(chan broadcast, 64),
		done:       make(chan struct{}),
		logger:     logger,
		metrics:    m,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, set := range h.clients {
				for client := range set {
					h.drop(client)
				}
			}
			h.clients = map[string]map[Subscriber]struct{}{}

			return
		case client := <-h.register:
			set, ok := h.clients[client.Collection()]
			if !ok {
				set = make(map[Subscriber]struct{})
				h.clients[client.Collection()] = set
			}
			set[client] = struct{}{}
			h.gauge(1)
		case client := <-h.unregister:
			if h.remove(client) {
				h.drop(client)
			}
		case msg := <-h.broadcast:
			h.fanOut(h.clients[msg.collection], msg.payload)
			if msg.collection != AllCollections {
				h.fanOut(h.clients[AllCollections], msg.payload)
			}
		}
	}
}

func (h *Hub) fanOut(set map[Subscriber]struct{}, payload []byte) {
	for client := range set {
		if !client.Enqueue(payload) {
			h.logger.Warn("Dropping slow change feed client", slog.String("collection", client.Collection()))
			h.remove(client)
			h.drop(client)
		}
	}
}

func (h *Hub) remove(client Subscriber) bool {
	set, ok := h.clients[client.Collection()]
	if !ok {
		return false
	}
	if _, ok := set[client]; !ok {
		return false
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.Collection())
	}

	return true
}

func (h *Hub) drop(client Subscriber) {
	client.Close()
	h.gauge(-1)
}

func (h *Hub) gauge(delta int) {
	if h.metrics != nil {
		h.metrics.WebSocketConnected(delta)
	}
}

// Register adds a client. It returns false once the hub has stopped.
func (h *Hub) Register(client Subscriber) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and closes it.
func (h *Hub) Unregister(client Subscriber) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish encodes the event and queues it for delivery.
func (h *Hub) Publish(event *entity.ChangeEvent) {
	data := json.RawMessage(event.Payload)
	if !json.Valid(data) {
		data = json.RawMessage("null")
	}

	payload, err := json.Marshal(Message{
		Collection: event.Collection,
		Operation:  event.Operation,
		Data:       data,
		ReceivedAt: event.ReceivedAt,
	})
	if err != nil {
		h.logger.Error("Failed to encode change event", slog.Any("error", err))

		return
	}

	if h.metrics != nil {
		h.metrics.ChangeEventRelayed(event.Collection)
	}

	select {
	case h.broadcast <- broadcast{collection: event.Collection, payload: payload}:
	case <-h.done:
	}
}
