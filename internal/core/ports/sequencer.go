package ports

import (
	"context"

	"go.trai.ch/libpack/internal/core/domain"
)

// Sequencer builds a queue of libraries one at a time.
//
//go:generate go run go.uber.org/mock/mockgen -source=sequencer.go -destination=mocks/mock_sequencer.go -package=mocks
type Sequencer interface {
	// Run processes the libraries in order and reports every task outcome.
	// It only fails when ctx is canceled.
	Run(ctx context.Context, libraries []domain.Library) (domain.BuildReport, error)
}
