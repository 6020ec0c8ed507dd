package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sapphire/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		fx.Provide(context.Background),
	)
}

func TestServeGraph(t *testing.T) {
	for _, driver := range []string{config.StorageMongo, config.StoragePostgres} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.StorageConfig{Driver: driver}}

			require.NoError(t, fx.ValidateApp(testInfra(cfg), serveModules(cfg)))
		})
	}
}

func TestWorkerGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(testInfra(&config.Config{}), workerModules()))
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"serve", "migrate", "superuser", "worker"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.RunE, "bare invocation serves the API")
}
