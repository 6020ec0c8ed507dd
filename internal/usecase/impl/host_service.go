package impl

import (
	"context"
	"log/slog"

	deliverycontext "sapphire/internal/delivery/context"
	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/repository"
	"sapphire/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type hostService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// HostServiceParams holds dependencies for HostService, injected by Fx.
type HostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewHostService is the constructor for hostService.
func NewHostService(params HostServiceParams) usecase.HostUsecase {
	return &hostService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *hostService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkHostRefs verifies that the referenced group and project exist.
func checkHostRefs(ctx context.Context, repos repository.RepositoryFactory, input *usecase.HostInput) error {
	if input.GroupID != nil {
		if _, err := repos.GroupRepo().FindByID(ctx, *input.GroupID); err != nil {
			return translate(err, "failed to find group")
		}
	}
	if input.ProjectID != nil {
		if _, err := repos.ProjectRepo().FindByID(ctx, *input.ProjectID); err != nil {
			return translate(err, "failed to find project")
		}
	}

	return nil
}

func applyHostInput(host *entity.Host, input *usecase.HostInput) {
	if input.Name != nil {
		host.Name = *input.Name
	}
	if input.Description != nil {
		host.Description = *input.Description
	}
	if input.IPAddress != nil {
		host.IPAddress = *input.IPAddress
	}
	if input.Location != nil {
		host.Location = *input.Location
	}
	if input.Latitude != nil {
		host.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		host.Longitude = input.Longitude
	}
	if input.GroupID != nil {
		host.GroupID = input.GroupID
	}
	if input.ProjectID != nil {
		host.ProjectID = input.ProjectID
	}
}

func (srv *hostService) CreateHost(ctx context.Context, input *usecase.HostInput) (*entity.Host, error) {
	host := &entity.Host{IsActive: true}
	applyHostInput(host, input)

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := checkHostRefs(txCtx, repos, input); err != nil {
			return err
		}

		return translate(repos.HostRepo().Create(txCtx, host), "failed to create host")
	})
	if err != nil {
		return nil, errors.Wrap(err, "create host")
	}

	srv.log(ctx).Info("Host created", slog.String("hostID", host.ID.String()), slog.String("ip", host.IPAddress))

	return host, nil
}

// visibleHostFilter scopes non SuperAdmins to the active hosts of their groups.
func visibleHostFilter(ctx context.Context, repos repository.RepositoryFactory, userID uuid.UUID) (repository.HostFilter, error) {
	viewer, err := repos.UserRepo().FindByID(ctx, userID)
	if err != nil {
		return repository.HostFilter{}, translate(err, "failed to find user")
	}

	filter := repository.HostFilter{ActiveOnly: true}
	if viewer.Role != entity.RoleSuperAdmin {
		filter.GroupIDs = append([]uuid.UUID{}, viewer.GroupIDs...)
	}

	return filter, nil
}

func (srv *hostService) ListHosts(ctx context.Context, input *usecase.ListInput) (*usecase.PageResult[*entity.Host], error) {
	page := input.Page.Normalize()

	var result *usecase.PageResult[*entity.Host]
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		filter, err := visibleHostFilter(txCtx, repos, input.UserID)
		if err != nil {
			return err
		}

		hosts, total, err := repos.HostRepo().List(txCtx, filter, page)
		if err != nil {
			return errors.Wrap(err, "failed to list hosts")
		}
		result = usecase.NewPageResult(hosts, total, page)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list hosts")
	}

	return result, nil
}

func (srv *hostService) GetHost(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	var host *entity.Host
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.HostRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find host")
		}
		host = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "get host")
	}

	return host, nil
}

func (srv *hostService) UpdateHost(ctx context.Context, id uuid.UUID, input *usecase.HostInput) (*entity.Host, error) {
	var host *entity.Host
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		found, err := repos.HostRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find host")
		}
		if err := checkHostRefs(txCtx, repos, input); err != nil {
			return err
		}

		applyHostInput(found, input)
		if err := repos.HostRepo().Update(txCtx, found); err != nil {
			return translate(err, "failed to update host")
		}
		host = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "update host")
	}

	srv.log(ctx).Info("Host updated", slog.String("hostID", id.String()))

	return host, nil
}

func (srv *hostService) InactivateHost(ctx context.Context, id uuid.UUID, reason string) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		host, err := repos.HostRepo().FindByID(txCtx, id)
		if err != nil {
			return translate(err, "failed to find host")
		}

		host.IsActive = false
		host.Reason = reason

		return translate(repos.HostRepo().Update(txCtx, host), "failed to inactivate host")
	})
	if err != nil {
		return errors.Wrap(err, "inactivate host")
	}

	srv.log(ctx).Info("Host inactivated", slog.String("hostID", id.String()))

	return nil
}

func (srv *hostService) DeleteHost(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		return translate(repos.HostRepo().Delete(txCtx, id), "failed to delete host")
	})
	if err != nil {
		return errors.Wrap(err, "delete host")
	}

	srv.log(ctx).Info("Host deleted", slog.String("hostID", id.String()))

	return nil
}

// HostsGeoJSON places every visible host with coordinates on the map. GeoJSON points are [lng, lat].
func (srv *hostService) HostsGeoJSON(ctx context.Context, userID uuid.UUID) (*geojson.FeatureCollection, error) {
	var hosts []*entity.Host
	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		filter, err := visibleHostFilter(txCtx, repos, userID)
		if err != nil {
			return err
		}

		hosts, err = repos.HostRepo().FindAll(txCtx, filter)

		return errors.Wrap(err, "failed to load hosts")
	})
	if err != nil {
		return nil, errors.Wrap(err, "hosts geojson")
	}

	fc := geojson.NewFeatureCollection()
	for _, host := range hosts {
		if !host.HasCoordinates() {
			continue
		}

		feature := geojson.NewFeature(orb.Point{*host.Longitude, *host.Latitude})
		feature.ID = host.ID.String()
		feature.Properties["name"] = host.Name
		feature.Properties["ipAddress"] = host.IPAddress
		feature.Properties["location"] = host.Location
		if host.GroupID != nil {
			feature.Properties["groupId"] = host.GroupID.String()
		}
		fc.Append(feature)
	}

	return fc, nil
}
