package mongodb

import (
	"context"

	"sapphire/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var collectionIndexes = map[string][]mongo.IndexModel{
	collUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "groupIds", Value: 1}}},
		{Keys: bson.D{{Key: "projectIds", Value: 1}}},
	},
	collGroups: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "members", Value: 1}}},
	},
	collProjects: {
		{Keys: bson.D{{Key: "groupId", Value: 1}}},
		{Keys: bson.D{{Key: "assignedUsers", Value: 1}}},
	},
	collHosts: {
		{Keys: bson.D{{Key: "groupId", Value: 1}}},
	},
	collDevices: {
		{Keys: bson.D{{Key: "udid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_ip", Value: 1}}},
	},
	collNotifications: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	collTokens: {
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "expires_at", Value: 1}}},
	},
	collOTPs: {
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
}

// EnsureIndexes creates the unique and lookup indexes. Existing identical indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, models := range collectionIndexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}
