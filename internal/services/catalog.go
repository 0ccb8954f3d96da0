package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// DefaultSummaryConcurrency bounds parallel commit summary lookups
const DefaultSummaryConcurrency = 8

// CatalogService enumerates the comparison points of a repository
type CatalogService struct {
	backend     ports.RefBackend
	concurrency int
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(backend ports.RefBackend) *CatalogService {
	return &CatalogService{
		backend:     backend,
		concurrency: DefaultSummaryConcurrency,
	}
}

// RootPath returns the working tree root of the repository
func (s *CatalogService) RootPath() string {
	return s.backend.RootPath()
}

// ListReferences returns local branches, remote branches and tags
func (s *CatalogService) ListReferences(ctx context.Context) ([]domain.ReferenceEntry, error) {
	entries, err := s.backend.ListReferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	return entries, nil
}

// Options returns one ReferenceOption per reference, in enumeration order,
// with the last commit summary filled in. A failed lookup leaves the
// summary empty and never fails the whole enumeration.
func (s *CatalogService) Options(ctx context.Context) ([]domain.ReferenceOption, error) {
	entries, err := s.ListReferences(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.ReferenceOption, len(entries))
	for i, entry := range entries {
		options[i] = domain.ReferenceOption{Entry: entry}
	}

	// Each goroutine writes only its own slot
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range options {
		g.Go(func() error {
			revision := options[i].Entry.RevisionID
			if revision == "" {
				revision = options[i].Entry.Name
			}
			summary, err := s.backend.ResolveCommitSummary(gctx, revision)
			if err != nil {
				logging.Logger.Debug("Commit summary lookup failed",
					"ref", options[i].Entry.Name, "error", err)
				return nil
			}
			options[i].Summary = summary
			return nil
		})
	}
	// Lookups never return an error
	_ = g.Wait()

	logging.Logger.Info("References enumerated", "count", len(options))
	return options, nil
}
