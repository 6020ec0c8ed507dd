package feed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"sapphire/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	collection string
	capacity   int

	mu       sync.Mutex
	received [][]byte
	closed   bool
}

func (f *fakeSubscriber) Collection() string { return f.collection }

func (f *fakeSubscriber) Enqueue(payload []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.received) >= f.capacity {
		return false
	}
	f.received = append(f.received, payload)

	return true
}

func (f *fakeSubscriber) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSubscriber) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([][]byte(nil), f.received...)
}

func (f *fakeSubscriber) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	return hub, cancel
}

func TestHub_FansOutByCollection(t *testing.T) {
	hub, _ := startHub(t)
	users := &fakeSubscriber{collection: "users", capacity: 10}
	groups := &fakeSubscriber{collection: "groups", capacity: 10}
	all := &fakeSubscriber{collection: AllCollections, capacity: 10}
	for _, s := range []Subscriber{users, groups, all} {
		require.True(t, hub.Register(s))
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hub.Publish(&entity.ChangeEvent{Collection: "users", Operation: "insert", Payload: []byte(`{"id":"1"}`), ReceivedAt: at})

	require.Eventually(t, func() bool { return len(all.messages()) == 1 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return len(users.messages()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, groups.messages())

	var msg Message
	require.NoError(t, json.Unmarshal(users.messages()[0], &msg))
	assert.Equal(t, "users", msg.Collection)
	assert.Equal(t, "insert", msg.Operation)
	assert.JSONEq(t, `{"id":"1"}`, string(msg.Data))
	assert.True(t, at.Equal(msg.ReceivedAt))
}

func TestHub_InvalidPayloadBecomesNull(t *testing.T) {
	hub, _ := startHub(t)
	sub := &fakeSubscriber{collection: "hosts", capacity: 1}
	require.True(t, hub.Register(sub))

	hub.Publish(&entity.ChangeEvent{Collection: "hosts", Operation: "delete", Payload: []byte("not json")})

	require.Eventually(t, func() bool { return len(sub.messages()) == 1 }, time.Second, 10*time.Millisecond)
	var msg Message
	require.NoError(t, json.Unmarshal(sub.messages()[0], &msg))
	assert.Equal(t, "null", string(msg.Data))
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub, _ := startHub(t)
	slow := &fakeSubscriber{collection: "devices", capacity: 1}
	require.True(t, hub.Register(slow))

	for range 3 {
		hub.Publish(&entity.ChangeEvent{Collection: "devices", Operation: "update", Payload: []byte(`{}`)})
	}

	require.Eventually(t, slow.isClosed, time.Second, 10*time.Millisecond)
	assert.Len(t, slow.messages(), 1)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub, _ := startHub(t)
	sub := &fakeSubscriber{collection: "users", capacity: 1}
	require.True(t, hub.Register(sub))

	hub.Unregister(sub)

	require.Eventually(t, sub.isClosed, time.Second, 10*time.Millisecond)
}

func TestHub_StopClosesClientsAndRefusesNewOnes(t *testing.T) {
	hub, cancel := startHub(t)
	sub := &fakeSubscriber{collection: "users", capacity: 1}
	require.True(t, hub.Register(sub))

	cancel()

	require.Eventually(t, sub.isClosed, time.Second, 10*time.Millisecond)
	assert.False(t, hub.Register(&fakeSubscriber{collection: "users"}))

	// Publishing after stop must not block.
	hub.Publish(&entity.ChangeEvent{Collection: "users", Payload: []byte(`{}`)})
}
