package postgres

import (
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"testing"
	"time"

	"sapphire/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFeed_Decode(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := &changeFeed{logger: slog.Default(), now: func() time.Time { return fixed }}
	payload := `{"collection":"devices","operation":"update","documentKey":{"id":"a"},"fullDocument":{"udid":"X"}}`

	event, err := feed.decode(payload)

	require.NoError(t, err)
	assert.Equal(t, "devices", event.Collection)
	assert.Equal(t, "update", event.Operation)
	assert.JSONEq(t, payload, string(event.Payload))
	assert.Equal(t, fixed, event.ReceivedAt)
}

func TestChangeFeed_DecodeRejectsGarbage(t *testing.T) {
	feed := &changeFeed{logger: slog.Default(), now: time.Now}

	_, err := feed.decode("not json")
	require.Error(t, err)

	_, err = feed.decode(`{"operation":"insert"}`)
	assert.Error(t, err)
}

func TestChangeFeed_DecodeKeyOnlyNotification(t *testing.T) {
	feed := &changeFeed{logger: slog.Default(), now: time.Now}
	payload := `{"collection":"hosts","operation":"insert","documentKey":{"id":"b"},"truncated":true}`

	event, err := feed.decode(payload)

	require.NoError(t, err)
	assert.Equal(t, "hosts", event.Collection)
	assert.JSONEq(t, payload, string(event.Payload))
}

// The notify trigger must never emit a payload NOTIFY refuses, or the write that fired it fails.
func TestMigrations_NotifyTriggerCapsPayload(t *testing.T) {
	goose.SetBaseFS(migrations.FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	collected, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)

	var latest string
	for _, m := range collected {
		raw, err := fs.ReadFile(migrations.FS, path.Base(m.Source))
		require.NoError(t, err)
		up, _, _ := strings.Cut(string(raw), "-- +goose Down")
		if strings.Contains(up, "FUNCTION sapphire_notify_change") {
			latest = up
		}
	}

	require.NotEmpty(t, latest)
	assert.Contains(t, latest, "octet_length(payload) >= 7900")
	assert.Contains(t, latest, "'truncated', true")
}
