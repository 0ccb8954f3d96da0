package ports

import (
	"context"

	"github.com/renato0307/diffreport/internal/domain"
)

// DiffRunner runs "git diff <args>" and classifies the result.
// It never returns a Go error: every failure is an OutcomeCommandFailed.
type DiffRunner interface {
	Run(ctx context.Context, rootPath, encoding string, maxOutputBytes int64, args []string) domain.DiffOutcome
}
