package client

import "context"

// Directory resolves a client reference. Implementations return
// ErrNotFound when the id is unknown.
type Directory interface {
	FindByID(ctx context.Context, id string) (*Client, error)
}
