package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
	portsmocks "github.com/renato0307/diffreport/internal/ports/mocks"
)

func TestCatalogOptions_KeepsOrderAndFillsSummaries(t *testing.T) {
	backend := portsmocks.NewMockRefBackend(t)
	entries := []domain.ReferenceEntry{
		{Kind: domain.RefLocal, Name: "main", RevisionID: "aaaaaaaaaaaa"},
		{Kind: domain.RefRemote, Name: "origin/main", RevisionID: "bbbbbbbbbbbb"},
		{Kind: domain.RefTag, Name: "v1.0.0", RevisionID: "cccccccccccc"},
	}
	backend.EXPECT().ListReferences(mock.Anything).Return(entries, nil)
	backend.EXPECT().ResolveCommitSummary(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, revision string) (string, error) {
			return fmt.Sprintf("commit %s", revision[:1]), nil
		})

	options, err := NewCatalogService(backend).Options(context.Background())

	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "main", options[0].Entry.Name)
	assert.Equal(t, "origin/main", options[1].Entry.Name)
	assert.Equal(t, "v1.0.0", options[2].Entry.Name)
	assert.Equal(t, "commit a (aaaaaaaa)", options[0].Detail())
	assert.Equal(t, "commit c (cccccccc)", options[2].Detail())
}

func TestCatalogOptions_FailedLookupLeavesDetailEmpty(t *testing.T) {
	backend := portsmocks.NewMockRefBackend(t)
	backend.EXPECT().ListReferences(mock.Anything).Return([]domain.ReferenceEntry{
		{Kind: domain.RefLocal, Name: "broken"},
		{Kind: domain.RefLocal, Name: "main", RevisionID: "0123456789"},
	}, nil)
	backend.EXPECT().ResolveCommitSummary(mock.Anything, "broken").Return("", errors.New("object not found"))
	backend.EXPECT().ResolveCommitSummary(mock.Anything, "0123456789").Return("Initial commit", nil)

	options, err := NewCatalogService(backend).Options(context.Background())

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Empty(t, options[0].Detail())
	assert.Equal(t, "Initial commit (01234567)", options[1].Detail())
}

func TestCatalogOptions_BackendUnavailable(t *testing.T) {
	backend := portsmocks.NewMockRefBackend(t)
	backend.EXPECT().ListReferences(mock.Anything).Return(nil, domain.ErrBackendUnavailable)

	_, err := NewCatalogService(backend).Options(context.Background())

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
