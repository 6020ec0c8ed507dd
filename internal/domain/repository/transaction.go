package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction when the store supports one.
	// fn must issue every call with txCtx; on Mongo it carries the session.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txCtx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	GroupRepo() GroupRepository
	ProjectRepo() ProjectRepository
	HostRepo() HostRepository
	DeviceRepo() DeviceRepository
	NotificationRepo() NotificationRepository
	TokenRepo() TokenRepository
	OTPRepo() OTPRepository
}
