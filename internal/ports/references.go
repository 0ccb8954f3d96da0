package ports

import (
	"context"

	"github.com/renato0307/diffreport/internal/domain"
)

// ReferenceLister enumerates branches and tags
type ReferenceLister interface {
	// ListReferences returns local branches, remote branches and tags, in that order
	ListReferences(ctx context.Context) ([]domain.ReferenceEntry, error)
}

// CommitSummaryResolver looks up the commit message summary for a revision
type CommitSummaryResolver interface {
	ResolveCommitSummary(ctx context.Context, revision string) (string, error)
}

// RefBackend is the version-control backend behind the reference catalog
type RefBackend interface {
	CommitSummaryResolver
	ReferenceLister
	// RootPath returns the working tree root of the opened repository
	RootPath() string
}
