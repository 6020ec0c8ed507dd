// Package delivery holds the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long-running entry point started by the serve command.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
