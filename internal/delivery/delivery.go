// Package delivery defines the contract served by every transport
// (HTTP today, others later).
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
