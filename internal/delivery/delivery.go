// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
