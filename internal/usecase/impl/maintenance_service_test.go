package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_PurgeExpired(t *testing.T) {
	repos := newRepoMocks(t)
	srv := &maintenanceService{txManager: newTxManager(t, repos), logger: newDiscardLogger(), now: fixedClock}
	ctx := context.Background()

	repos.tokens.EXPECT().DeleteExpired(ctx, fixedNow).Return(3, nil)
	repos.otps.EXPECT().DeleteExpired(ctx, fixedNow).Return(1, nil)

	result, err := srv.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Tokens)
	assert.Equal(t, int64(1), result.OTPs)
}

func TestMaintenanceService_PurgeExpired_Error(t *testing.T) {
	repos := newRepoMocks(t)
	srv := &maintenanceService{txManager: newTxManager(t, repos), logger: newDiscardLogger(), now: fixedClock}
	ctx := context.Background()

	repos.tokens.EXPECT().DeleteExpired(ctx, fixedNow).Return(0, errors.New("connection reset"))

	_, err := srv.PurgeExpired(ctx)

	assert.ErrorContains(t, err, "connection reset")
}
