package mongodb

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestChangeFeed_Decode(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	feed := &changeFeed{logger: slog.Default(), now: func() time.Time { return fixed }}

	raw, err := bson.Marshal(bson.D{
		{Key: "operationType", Value: "update"},
		{Key: "ns", Value: bson.D{{Key: "db", Value: "Sapphire_db"}, {Key: "coll", Value: "groups"}}},
		{Key: "documentKey", Value: bson.D{{Key: "_id", Value: "g-1"}}},
		{Key: "fullDocument", Value: bson.D{{Key: "_id", Value: "g-1"}, {Key: "updatedAt", Value: fixed}}},
	})
	require.NoError(t, err)

	event, err := feed.decode(raw)

	require.NoError(t, err)
	assert.Equal(t, "groups", event.Collection)
	assert.Equal(t, "update", event.Operation)
	assert.Equal(t, fixed, event.ReceivedAt)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	doc, ok := payload["fullDocument"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"$date": "2024-05-01T08:00:00Z"}, doc["updatedAt"])
}

func TestChangeFeed_DecodeWithoutNamespace(t *testing.T) {
	feed := &changeFeed{logger: slog.Default(), now: time.Now}
	raw, err := bson.Marshal(bson.D{{Key: "operationType", Value: "invalidate"}})
	require.NoError(t, err)

	_, err = feed.decode(raw)

	assert.Error(t, err)
}
