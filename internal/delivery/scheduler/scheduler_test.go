package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	mockusecase "sapphire/internal/mocks/usecase"
	"sapphire/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOncePurges(t *testing.T) {
	maintenance := mockusecase.NewMockMaintenanceUsecase(t)
	maintenance.EXPECT().PurgeExpired(mock.Anything).Return(&usecase.PurgeResult{Tokens: 2, OTPs: 1}, nil).Once()

	s := newScheduler("@every 1m", maintenance, nil, discardLogger())
	s.RunOnce()
}

func TestScheduler_RunOnceSwallowsErrors(t *testing.T) {
	maintenance := mockusecase.NewMockMaintenanceUsecase(t)
	maintenance.EXPECT().PurgeExpired(mock.Anything).Return(nil, errors.New("db down")).Once()

	s := newScheduler("@every 1m", maintenance, nil, discardLogger())
	assert.NotPanics(t, s.RunOnce)
}

func TestScheduler_ServeStopsOnShutdown(t *testing.T) {
	maintenance := mockusecase.NewMockMaintenanceUsecase(t)
	s := newScheduler("@every 1h", maintenance, nil, discardLogger())

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	require.NoError(t, s.stop(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestScheduler_ServeRejectsBadSchedule(t *testing.T) {
	maintenance := mockusecase.NewMockMaintenanceUsecase(t)
	s := newScheduler("not a schedule", maintenance, nil, discardLogger())

	assert.Error(t, s.Serve(context.Background()))
}
