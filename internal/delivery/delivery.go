// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
