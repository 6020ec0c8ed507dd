// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"sapphire/config"
	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"
	"sapphire/internal/domain/repository"
	"sapphire/internal/domain/service"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	codes     service.CodeGenerator
	publisher service.EventPublisher
	otpTTL    time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Codes     service.CodeGenerator
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpTTL := 5 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &userService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		codes:     params.Codes,
		publisher: params.Publisher,
		otpTTL:    otpTTL,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashOptional hashes password unless it is empty. bcrypt runs outside any transaction.
func (srv *userService) hashOptional(password string) (string, error) {
	if password == "" {
		return "", nil
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// ensureUnique rejects a username or email already held by another user.
func ensureUnique(ctx context.Context, repo repository.UserRepository, selfID uuid.UUID, username, email string) error {
	if username != "" {
		existing, err := repo.FindByUsername(ctx, username)
		switch {
		case err == nil && existing.ID != selfID:
			return errors.WithStack(domainerrors.ErrUsernameTaken)
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to check username")
		}
	}

	if email != "" {
		existing, err := repo.FindByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != selfID:
			return errors.WithStack(domainerrors.ErrEmailInUse)
		case err != nil && !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to check email")
		}
	}

	return nil
}

// SignUp stores a pending, inactive account that waits for admin approval.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	hash, err := srv.hashOptional(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		Username:        input.Username,
		PasswordHash:    hash,
		Role:            entity.RoleUser,
		GroupIDs:        []uuid.UUID{},
		ProjectIDs:      []uuid.UUID{},
		BusinessPurpose: input.BusinessPurpose,
		IsActive:        false,
		IsApproved:      false,
		Status:          entity.StatusPending,
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := ensureUnique(txCtx, repos.UserRepo(), uuid.Nil, user.Username, user.Email); err != nil {
			return err
		}

		return translate(repos.UserRepo().Create(txCtx, user), "failed to create user")
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign up")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", user.ID.String()))

	return user, nil
}

func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := entity.RoleOrDefault(input.Role)
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role)))
	}

	hash, err := srv.hashOptional(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		Username:        input.Username,
		PasswordHash:    hash,
		Role:            role,
		GroupIDs:        []uuid.UUID{},
		ProjectIDs:      []uuid.UUID{},
		BusinessPurpose: input.BusinessPurpose,
		IsActive:        true,
		Status:          entity.StatusPending,
	}
	if role == entity.RoleSuperAdmin {
		user.IsApproved = true
		user.Status = entity.StatusApproved
	}

	groupIDs := uniqueIDs(input.GroupIDs)
	projectIDs := uniqueIDs(input.ProjectIDs)

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := ensureUnique(txCtx, repos.UserRepo(), uuid.Nil, user.Username, user.Email); err != nil {
			return err
		}
		if _, err := requireGroups(txCtx, repos.GroupRepo(), groupIDs); err != nil {
			return err
		}
		if _, err := requireProjects(txCtx, repos.ProjectRepo(), projectIDs); err != nil {
			return err
		}

		if err := repos.UserRepo().Create(txCtx, user); err != nil {
			return translate(err, "failed to create user")
		}
		if err := syncUserGroups(txCtx, repos, user.ID, nil, groupIDs); err != nil {
			return err
		}

		return syncUserProjects(txCtx, repos, user.ID, nil, projectIDs)
	})
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	user.GroupIDs = groupIDs
	user.ProjectIDs = projectIDs
	srv.log(ctx).Info("User created", slog.String("userID", user.ID.String()), slog.String("role", role.String()))

	return user, nil
}

// ListUsers returns a page of users with the names of their groups and projects.
func (srv *userService) ListUsers(ctx context.Context, page entity.Page) (*usecase.PageResult[*usecase.UserSummary], error) {
	page = page.Normalize()

	var result *usecase.PageResult[*usecase.UserSummary]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		users, total, err := repos.UserRepo().List(txCtx, page)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		var groupIDs, projectIDs []uuid.UUID
		for _, u := range users {
			groupIDs = append(groupIDs, u.GroupIDs...)
			projectIDs = append(projectIDs, u.ProjectIDs...)
		}

		groups, err := repos.GroupRepo().FindByIDs(txCtx, uniqueIDs(groupIDs))
		if err != nil {
			return errors.Wrap(err, "failed to load groups")
		}
		projects, err := repos.ProjectRepo().FindByIDs(txCtx, uniqueIDs(projectIDs))
		if err != nil {
			return errors.Wrap(err, "failed to load projects")
		}

		groupByID := make(map[uuid.UUID]*entity.Group, len(groups))
		for _, g := range groups {
			groupByID[g.ID] = g
		}
		projectByID := make(map[uuid.UUID]*entity.Project, len(projects))
		for _, p := range projects {
			projectByID[p.ID] = p
		}

		items := make([]*usecase.UserSummary, 0, len(users))
		for _, u := range users {
			summary := &usecase.UserSummary{User: u, Groups: []usecase.GroupRef{}, Projects: []usecase.ProjectRef{}}
			for _, id := range u.GroupIDs {
				if g, ok := groupByID[id]; ok {
					summary.Groups = append(summary.Groups, usecase.GroupRef{ID: g.ID, Name: g.Name})
				}
			}
			for _, id := range u.ProjectIDs {
				if p, ok := projectByID[id]; ok {
					summary.Projects = append(summary.Projects, usecase.ProjectRef{ID: p.ID, Name: p.Name, Status: p.Status})
				}
			}
			items = append(items, summary)
		}

		result = usecase.NewPageResult(items, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	return result, nil
}

// GetUser returns the user with its groups' members and its projects' assignees.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserDetail, error) {
	var detail *usecase.UserDetail
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find user")
		}

		groups, err := repos.GroupRepo().FindByIDs(txCtx, user.GroupIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load groups")
		}
		projects, err := repos.ProjectRepo().FindByIDs(txCtx, user.ProjectIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load projects")
		}

		var related []uuid.UUID
		for _, g := range groups {
			related = append(related, g.MemberIDs...)
		}
		for _, p := range projects {
			related = append(related, p.AssignedUserIDs...)
		}
		relatedUsers, err := repos.UserRepo().FindByIDs(txCtx, uniqueIDs(related))
		if err != nil {
			return errors.Wrap(err, "failed to load related users")
		}
		names := nameIndex(relatedUsers)

		detail = &usecase.UserDetail{
			User:     user,
			Groups:   make([]usecase.UserGroupDetail, 0, len(groups)),
			Projects: make([]usecase.UserProjectDetail, 0, len(projects)),
		}
		for _, g := range groups {
			detail.Groups = append(detail.Groups, usecase.UserGroupDetail{ID: g.ID, Name: g.Name, Members: userRefs(g.MemberIDs, names)})
		}
		for _, p := range projects {
			detail.Projects = append(detail.Projects, usecase.UserProjectDetail{
				ID:            p.ID,
				Name:          p.Name,
				Status:        p.Status,
				AssignedUsers: userRefs(p.AssignedUserIDs, names),
			})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}

	return detail, nil
}

// UpdateUser applies the non-nil fields. Memberships are diffed against the stored lists.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(*input.Role)))
	}

	var hash string
	if input.Password != nil {
		var err error
		if hash, err = srv.hashOptional(*input.Password); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		user, err := userRepo.FindByID(txCtx, input.ID)
		if err != nil {
			return translate(err, "failed to find user")
		}

		var username, email string
		if input.Username != nil && *input.Username != user.Username {
			username = *input.Username
		}
		if input.Email != nil && *input.Email != user.Email {
			email = *input.Email
		}
		if err := ensureUnique(txCtx, userRepo, user.ID, username, email); err != nil {
			return err
		}

		wasActive, oldRole := user.IsActive, user.Role
		applyUserPatch(user, input)
		if hash != "" {
			user.PasswordHash = hash
		}

		if err := userRepo.Update(txCtx, user); err != nil {
			return translate(err, "failed to update user")
		}

		// Sessions carry the old privileges; end them so the next login picks up the change.
		if user.Role != oldRole || (wasActive && !user.IsActive) {
			if _, err := repos.TokenRepo().DeleteByUser(txCtx, user.ID); err != nil {
				return errors.Wrap(err, "failed to revoke tokens")
			}
		}

		if input.GroupIDs != nil {
			next := uniqueIDs(input.GroupIDs)
			if _, err := requireGroups(txCtx, repos.GroupRepo(), next); err != nil {
				return err
			}
			if err := syncUserGroups(txCtx, repos, user.ID, user.GroupIDs, next); err != nil {
				return err
			}
			user.GroupIDs = next
		}
		if input.ProjectIDs != nil {
			next := uniqueIDs(input.ProjectIDs)
			if _, err := requireProjects(txCtx, repos.ProjectRepo(), next); err != nil {
				return err
			}
			if err := syncUserProjects(txCtx, repos, user.ID, user.ProjectIDs, next); err != nil {
				return err
			}
			user.ProjectIDs = next
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "update user")
	}

	srv.log(ctx).Info("User updated", slog.String("userID", updated.ID.String()))

	return updated, nil
}

func applyUserPatch(user *entity.User, input *usecase.UpdateUserInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.BusinessPurpose != nil {
		user.BusinessPurpose = *input.BusinessPurpose
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
}

// InactivateUser disables the account and revokes its tokens.
func (srv *userService) InactivateUser(ctx context.Context, id uuid.UUID, reason string) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find user")
		}

		user.IsActive = false
		user.Reason = reason
		if err := repos.UserRepo().Update(txCtx, user); err != nil {
			return translate(err, "failed to inactivate user")
		}
		if _, err := repos.TokenRepo().DeleteByUser(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to revoke tokens")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "inactivate user")
	}

	srv.log(ctx).Info("User inactivated", slog.String("userID", id.String()))

	return nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if _, err := repos.UserRepo().FindByID(txCtx, id); err != nil {
			return translate(err, "failed to find user")
		}

		if err := repos.GroupRepo().RemoveMemberFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to remove user from groups")
		}
		if err := repos.ProjectRepo().RemoveAssigneeFromAll(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to remove user from projects")
		}
		if _, err := repos.TokenRepo().DeleteByUser(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to delete tokens")
		}
		if err := repos.OTPRepo().DeleteByUser(txCtx, id); err != nil {
			return errors.Wrap(err, "failed to delete otp")
		}

		return translate(repos.UserRepo().Delete(txCtx, id), "failed to delete user")
	})
	if err != nil {
		return errors.Wrap(err, "delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

// ApproveUser activates the account, replaces its memberships and hands out an OTP for the first password.
func (srv *userService) ApproveUser(ctx context.Context, input *usecase.ApproveUserInput) (*entity.User, error) {
	role := entity.RoleOrDefault(input.Role)
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(role)))
	}

	groupIDs := uniqueIDs(input.GroupIDs)
	projectIDs := uniqueIDs(input.ProjectIDs)
	now := srv.now().UTC()

	var (
		approved *entity.User
		otp      *entity.UserOTP
	)
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(txCtx, input.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}
		if _, err := requireGroups(txCtx, repos.GroupRepo(), groupIDs); err != nil {
			return err
		}
		if _, err := requireProjects(txCtx, repos.ProjectRepo(), projectIDs); err != nil {
			return err
		}

		user.IsApproved = true
		user.IsActive = true
		user.Status = entity.StatusApproved
		user.Role = role
		user.Reason = ""
		if err := repos.UserRepo().Update(txCtx, user); err != nil {
			return translate(err, "failed to approve user")
		}

		if err := syncUserGroups(txCtx, repos, user.ID, user.GroupIDs, groupIDs); err != nil {
			return err
		}
		if err := syncUserProjects(txCtx, repos, user.ID, user.ProjectIDs, projectIDs); err != nil {
			return err
		}
		user.GroupIDs = groupIDs
		user.ProjectIDs = projectIDs

		if otp, err = srv.issueOTP(txCtx, repos.OTPRepo(), user.ID, now); err != nil {
			return err
		}
		approved = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "approve user")
	}

	srv.log(ctx).Info("User approved",
		slog.String("userID", approved.ID.String()),
		slog.String("approverID", input.ApproverID.String()),
		slog.String("role", role.String()))
	srv.publishOTP(ctx, approved, otp)

	return approved, nil
}

// issueOTP reuses a still valid code, otherwise stores a fresh one.
func (srv *userService) issueOTP(ctx context.Context, repo repository.OTPRepository, userID uuid.UUID, now time.Time) (*entity.UserOTP, error) {
	existing, err := repo.FindByUser(ctx, userID)
	switch {
	case err == nil && !existing.IsExpired(now):
		return existing, nil
	case err != nil && !errors.Is(err, repository.ErrOTPNotFound):
		return nil, errors.Wrap(err, "failed to find otp")
	}

	code, err := srv.codes.GenerateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	otp := &entity.UserOTP{UserID: userID, OTP: code, ExpiresAt: now.Add(srv.otpTTL), CreatedAt: now}
	if err := repo.Upsert(ctx, otp); err != nil {
		return nil, errors.Wrap(err, "failed to store otp")
	}

	return otp, nil
}

// publishOTP hands the code to the mailer. The approval is already committed, so failures are only logged.
func (srv *userService) publishOTP(ctx context.Context, user *entity.User, otp *entity.UserOTP) {
	expiresAt := otp.ExpiresAt
	event := &service.AdminEvent{
		EventID:    uuid.NewString(),
		Type:       service.EventOTPIssued,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     user.ID.String(),
		Email:      user.Email,
		OTP:        otp.OTP,
		ExpiresAt:  &expiresAt,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish otp event", slog.String("userID", user.ID.String()), slog.Any("error", err))
	}
}

func (srv *userService) RejectUser(ctx context.Context, input *usecase.RejectUserInput) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByID(txCtx, input.UserID)
		if err != nil {
			return translate(err, "failed to find user")
		}

		user.Status = entity.StatusRejected
		user.IsActive = false
		user.IsApproved = false
		user.Reason = input.Reason

		if err := repos.UserRepo().Update(txCtx, user); err != nil {
			return translate(err, "failed to reject user")
		}
		if _, err := repos.TokenRepo().DeleteByUser(txCtx, user.ID); err != nil {
			return errors.Wrap(err, "failed to revoke tokens")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "reject user")
	}

	srv.log(ctx).Info("User rejected", slog.String("userID", input.UserID.String()))

	return nil
}

// VerifyOTP replaces the password once the code matches and is still valid. The code is single use.
func (srv *userService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	hash, err := srv.hashOptional(input.NewPassword)
	if err != nil {
		return err
	}
	now := srv.now().UTC()

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByEmail(txCtx, input.Email)
		if err != nil {
			return translate(err, "failed to find user")
		}

		otp, err := repos.OTPRepo().FindByUser(txCtx, user.ID)
		if errors.Is(err, repository.ErrOTPNotFound) {
			return errors.WithStack(domainerrors.ErrOTPNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find otp")
		}
		if subtle.ConstantTimeCompare([]byte(otp.OTP), []byte(input.OTP)) != 1 {
			return errors.WithStack(domainerrors.ErrOTPInvalid)
		}
		if otp.IsExpired(now) {
			return errors.WithStack(domainerrors.ErrOTPExpired)
		}

		user.PasswordHash = hash
		if err := repos.UserRepo().Update(txCtx, user); err != nil {
			return translate(err, "failed to set password")
		}

		return errors.Wrap(repos.OTPRepo().DeleteByUser(txCtx, user.ID), "failed to delete otp")
	})
	if err != nil {
		srv.log(ctx).Warn("OTP verification failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "verify otp")
	}

	return nil
}

// CreateSuperUser bootstraps the first SuperAdmin.
func (srv *userService) CreateSuperUser(ctx context.Context, input *usecase.SuperUserInput) (*entity.User, error) {
	hash, err := srv.hashOptional(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		GroupIDs:     []uuid.UUID{},
		ProjectIDs:   []uuid.UUID{},
		IsActive:     true,
		IsApproved:   true,
		Status:       entity.StatusApproved,
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		exists, err := repos.UserRepo().ExistsWithRole(txCtx, entity.RoleSuperAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to check for superuser")
		}
		if exists {
			return errors.WithStack(domainerrors.ErrSuperUserExists)
		}
		if err := ensureUnique(txCtx, repos.UserRepo(), uuid.Nil, user.Username, user.Email); err != nil {
			return err
		}

		return translate(repos.UserRepo().Create(txCtx, user), "failed to create superuser")
	})
	if err != nil {
		return nil, errors.Wrap(err, "create superuser")
	}

	srv.log(ctx).Info("Superuser created", slog.String("userID", user.ID.String()))

	return user, nil
}
