package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/service"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ChangeChannel is the NOTIFY channel written by the sapphire_notify_change trigger.
const ChangeChannel = "sapphire_changes"

type changeFeed struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewChangeFeed returns a feed that LISTENs on a dedicated pool connection.
func NewChangeFeed(db *gorm.DB, logger *slog.Logger) service.ChangeFeed {
	return &changeFeed{db: db, logger: logger, now: time.Now}
}

type notifyEnvelope struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
}

// Watch holds one connection out of the pool until ctx is cancelled.
func (f *changeFeed) Watch(ctx context.Context, handle func(event *entity.ChangeEvent)) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to reserve listen connection")
	}
	defer conn.Close()

	return conn.Raw(func(driverConn any) error {
		stdConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return errors.Errorf("unexpected driver connection %T", driverConn)
		}
		pgxConn := stdConn.Conn()

		if _, err := pgxConn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
			return errors.Wrap(err, "failed to listen")
		}
		f.logger.InfoContext(ctx, "Postgres change feed listening", slog.String("channel", ChangeChannel))

		for {
			notification, err := pgxConn.WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return errors.Wrap(err, "wait for notification")
			}

			event, err := f.decode(notification.Payload)
			if err != nil {
				f.logger.WarnContext(ctx, "Dropping malformed change notification", slog.Any("error", err))

				continue
			}
			handle(event)
		}
	})
}

func (f *changeFeed) decode(payload string) (*entity.ChangeEvent, error) {
	var envelope notifyEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, errors.Wrap(err, "decode notification")
	}
	if envelope.Collection == "" {
		return nil, errors.New("notification without collection")
	}

	return &entity.ChangeEvent{
		Collection: envelope.Collection,
		Operation:  envelope.Operation,
		Payload:    []byte(payload),
		ReceivedAt: f.now().UTC(),
	}, nil
}
