package repositories

import "context"

// HealthChecker verifies the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
