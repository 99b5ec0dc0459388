// Package delivery defines the contract every transport front end implements.
package delivery

import "context"

// Delivery is a running transport surface (HTTP today). Serve blocks until
// the server stops; shutdown is driven by the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
