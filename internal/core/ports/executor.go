// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/libpack/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits.
	//
	// Output is streamed line by line to the logger and, when the context carries
	// a telemetry vertex, to that vertex as well.
	//
	// It returns an error wrapping domain.ErrProcess if the process exits non-zero.
	Execute(ctx context.Context, cmd domain.Command) error
}
