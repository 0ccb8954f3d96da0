package ports

import (
	"context"

	"github.com/renato0307/diffreport/internal/domain"
)

// ExportRecorder stores successful exports
type ExportRecorder interface {
	Record(ctx context.Context, record domain.ExportRecord) error
}

// ExportLister reads recorded exports, newest first
type ExportLister interface {
	List(ctx context.Context, limit int) ([]domain.ExportRecord, error)
}

// ExportLedger is the full export history store
type ExportLedger interface {
	ExportLister
	ExportRecorder
	Close() error
}
