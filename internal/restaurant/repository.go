package restaurant

import (
	"context"

	"github.com/google/uuid"

	"likeat/internal/core"
)

// Repository is the read side of the restaurant store. Finding nothing is
// not an error: both methods return an empty slice. Storage failures wrap
// core.ErrStoreUnavailable and are not retried.
type Repository interface {
	FindByClient(ctx context.Context, clientID string) ([]*Restaurant, error)
	FindByStatus(ctx context.Context, status Status) ([]*Restaurant, error)
}

// validateClientID rejects references that cannot name a client at all.
func validateClientID(clientID string) error {
	if _, err := uuid.Parse(clientID); err != nil {
		return core.InvalidArgument("malformed client id %q", clientID)
	}
	return nil
}

func validateStatus(status Status) error {
	if !status.Valid() {
		return core.InvalidArgument("unknown restaurant status %q", string(status))
	}
	return nil
}
