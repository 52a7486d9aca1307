package ports

import (
	"context"

	"dbcheck/internal/core/domain"
)

// DiagnosticService runs the one-shot connection diagnostic.
type DiagnosticService interface {
	// Run executes Configuring → Connecting → Probing → Enumerating →
	// Disconnecting and returns the report built so far together with an
	// *apperror.Error of kind configuration or connection on failure.
	Run(ctx context.Context, cfg domain.ConnectionConfig) (*domain.ConnectionReport, error)
}
