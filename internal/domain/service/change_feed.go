package service

import (
	"context"

	"sapphire/internal/domain/entity"
)

// ChangeFeed streams database change notifications.
type ChangeFeed interface {
	// Watch blocks, calling handle for each change, until ctx is cancelled or the feed fails.
	Watch(ctx context.Context, handle func(event *entity.ChangeEvent)) error
}
