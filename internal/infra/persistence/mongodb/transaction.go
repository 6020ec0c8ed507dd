package mongodb

import (
	"context"

	"sapphire/config"
	"sapphire/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// sessionTransactionManager runs fn inside a session transaction when the deployment supports it.
type sessionTransactionManager struct {
	db           *mongo.Database
	transactions bool
}

// repositoryFactory hands out repositories on db. The session travels in the context.
type repositoryFactory struct {
	db *mongo.Database
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}

func (f *repositoryFactory) GroupRepo() repository.GroupRepository {
	return NewGroupRepository(f.db)
}

func (f *repositoryFactory) ProjectRepo() repository.ProjectRepository {
	return NewProjectRepository(f.db)
}

func (f *repositoryFactory) HostRepo() repository.HostRepository {
	return NewHostRepository(f.db)
}

func (f *repositoryFactory) DeviceRepo() repository.DeviceRepository {
	return NewDeviceRepository(f.db)
}

func (f *repositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.db)
}

func (f *repositoryFactory) TokenRepo() repository.TokenRepository {
	return NewTokenRepository(f.db)
}

func (f *repositoryFactory) OTPRepo() repository.OTPRepository {
	return NewOTPRepository(f.db)
}

// NewTransactionManager is the constructor for sessionTransactionManager.
func NewTransactionManager(db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	transactions := cfg.Mongo != nil && cfg.Mongo.Transactions

	return &sessionTransactionManager{db: db, transactions: transactions}
}

// Execute without transactions runs fn directly; each write is then atomic on its own document only.
func (tm *sessionTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, repos repository.RepositoryFactory) error) error {
	factory := &repositoryFactory{db: tm.db}
	if !tm.transactions {
		return fn(ctx, factory)
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx, factory)
	})

	return err
}
