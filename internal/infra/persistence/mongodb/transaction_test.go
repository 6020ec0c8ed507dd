package mongodb

import (
	"context"
	"errors"
	"testing"

	"sapphire/config"
	"sapphire/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestTransactionManager_WithoutTransactions(t *testing.T) {
	mt := newMockMT(t)

	mt.Run("runs fn with the caller context", func(mt *mtest.T) {
		cfg := &config.Config{Mongo: &config.MongoConfig{Transactions: false}}
		tm := NewTransactionManager(mt.DB, cfg)

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")

		var called bool
		err := tm.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
			called = true
			assert.Equal(mt, "v", txCtx.Value(key{}))
			assert.NotNil(mt, repos.UserRepo())
			assert.NotNil(mt, repos.OTPRepo())

			return nil
		})

		require.NoError(mt, err)
		assert.True(mt, called)
	})

	mt.Run("propagates fn error", func(mt *mtest.T) {
		tm := NewTransactionManager(mt.DB, &config.Config{})
		boom := errors.New("boom")

		err := tm.Execute(context.Background(), func(context.Context, repository.RepositoryFactory) error {
			return boom
		})

		assert.ErrorIs(mt, err, boom)
	})
}
