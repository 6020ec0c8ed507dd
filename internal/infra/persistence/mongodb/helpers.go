package mongodb

import (
	"context"

	"sapphire/internal/domain/entity"
	domainerrors "sapphire/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pageOptions applies skip, limit and a stable sort to a Find.
func pageOptions(page entity.Page, sortField string, direction int) *options.FindOptions {
	p := page.Normalize()

	return options.Find().
		SetSkip(int64(p.Skip)).
		SetLimit(int64(p.Limit)).
		SetSort(bson.D{{Key: sortField, Value: direction}})
}

// matchNone is a filter no document satisfies.
func matchNone() bson.M {
	return bson.M{"_id": bson.M{"$in": bson.A{}}}
}

// findAll decodes every document the cursor yields into T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+coll.Name())
	}

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode "+coll.Name())
	}

	return docs, nil
}
