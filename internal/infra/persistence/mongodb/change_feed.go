package mongodb

import (
	"context"
	"log/slog"
	"time"

	"sapphire/internal/domain/entity"
	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// changePipeline hides credential collections and password hashes from the feed.
var changePipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.D{
		{Key: "ns.coll", Value: bson.D{{Key: "$nin", Value: bson.A{collTokens, collOTPs}}}},
	}}},
	{{Key: "$project", Value: bson.D{
		{Key: "fullDocument.passwordHash", Value: 0},
		{Key: "updateDescription.updatedFields.passwordHash", Value: 0},
	}}},
}

type changeFeed struct {
	db     *mongo.Database
	logger *slog.Logger
	now    func() time.Time
}

// NewChangeFeed returns a feed backed by a database-wide change stream. Requires a replica set.
func NewChangeFeed(db *mongo.Database, logger *slog.Logger) service.ChangeFeed {
	return &changeFeed{db: db, logger: logger, now: time.Now}
}

func (f *changeFeed) Watch(ctx context.Context, handle func(event *entity.ChangeEvent)) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := f.db.Watch(ctx, changePipeline, opts)
	if err != nil {
		return errors.Wrap(err, "failed to open change stream")
	}
	defer stream.Close(context.WithoutCancel(ctx))

	f.logger.InfoContext(ctx, "MongoDB change stream open", slog.String("database", f.db.Name()))

	for stream.Next(ctx) {
		event, err := f.decode(stream.Current)
		if err != nil {
			f.logger.WarnContext(ctx, "Dropping malformed change event", slog.Any("error", err))

			continue
		}
		handle(event)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "change stream")
	}

	return nil
}

// decode renders the raw event as relaxed extended JSON so dates and ids stay readable.
func (f *changeFeed) decode(raw bson.Raw) (*entity.ChangeEvent, error) {
	collection, ok := raw.Lookup("ns", "coll").StringValueOK()
	if !ok || collection == "" {
		return nil, errors.New("change event without collection")
	}
	operation, _ := raw.Lookup("operationType").StringValueOK()

	payload, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, errors.Wrap(err, "encode change event")
	}

	return &entity.ChangeEvent{
		Collection: collection,
		Operation:  operation,
		Payload:    payload,
		ReceivedAt: f.now().UTC(),
	}, nil
}
