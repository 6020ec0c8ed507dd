package mongodb

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockMT(t *testing.T) *mtest.T {
	t.Helper()

	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(coll string) string {
	return "test." + coll
}

// writeAck is the reply to update and delete commands; n is the matched or deleted count.
func writeAck(n int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: n},
		bson.E{Key: "nModified", Value: n},
	)
}

func countReply(coll string, n int64) bson.D {
	return mtest.CreateCursorResponse(0, ns(coll), mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}
