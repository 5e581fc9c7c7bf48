package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"

	"surveygate/pkg/platform/audit"
)

// Store is the app_settings key/value table.
type Store interface {
	// GetValues returns the raw values of the keys that exist.
	GetValues(ctx context.Context, keys []string) (map[string]string, error)
	// SetValues upserts every pair atomically.
	SetValues(ctx context.Context, values map[string]string) error
}

// AuditPort records admin changes.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}
