package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sapphire/internal/domain/repository"
	mockRepo "sapphire/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoMocks bundles one mock per repository behind a factory that hands them out on demand.
type repoMocks struct {
	factory       *mockRepo.MockRepositoryFactory
	users         *mockRepo.MockUserRepository
	groups        *mockRepo.MockGroupRepository
	projects      *mockRepo.MockProjectRepository
	hosts         *mockRepo.MockHostRepository
	devices       *mockRepo.MockDeviceRepository
	notifications *mockRepo.MockNotificationRepository
	tokens        *mockRepo.MockTokenRepository
	otps          *mockRepo.MockOTPRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	r := &repoMocks{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		users:         mockRepo.NewMockUserRepository(t),
		groups:        mockRepo.NewMockGroupRepository(t),
		projects:      mockRepo.NewMockProjectRepository(t),
		hosts:         mockRepo.NewMockHostRepository(t),
		devices:       mockRepo.NewMockDeviceRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		tokens:        mockRepo.NewMockTokenRepository(t),
		otps:          mockRepo.NewMockOTPRepository(t),
	}

	r.factory.EXPECT().UserRepo().Return(r.users).Maybe()
	r.factory.EXPECT().GroupRepo().Return(r.groups).Maybe()
	r.factory.EXPECT().ProjectRepo().Return(r.projects).Maybe()
	r.factory.EXPECT().HostRepo().Return(r.hosts).Maybe()
	r.factory.EXPECT().DeviceRepo().Return(r.devices).Maybe()
	r.factory.EXPECT().NotificationRepo().Return(r.notifications).Maybe()
	r.factory.EXPECT().TokenRepo().Return(r.tokens).Maybe()
	r.factory.EXPECT().OTPRepo().Return(r.otps).Maybe()

	return r
}

// newTxManager runs every Execute callback against repos and returns its error.
func newTxManager(t *testing.T, repos *repoMocks) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.RepositoryFactory) error) error {
			return fn(ctx, repos.factory)
		}).
		Maybe()

	return txManager
}

func ptr[T any](v T) *T { return &v }
