package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
)

var testSignature = &object.Signature{
	Name:  "Test User",
	Email: "test@example.com",
	When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

// setupFixtureRepo builds a repository with one commit per message
func setupFixtureRepo(t *testing.T, messages ...string) (string, *git.Repository, []plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	var hashes []plumbing.Hash
	for i, msg := range messages {
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte(msg+string(rune('a'+i))), 0644))
		_, err := wt.Add("file.txt")
		require.NoError(t, err)

		hash, err := wt.Commit(msg, &git.CommitOptions{Author: testSignature})
		require.NoError(t, err)
		hashes = append(hashes, hash)
	}

	return dir, repo, hashes
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestOpen_DetectsParentRepository(t *testing.T) {
	dir, _, _ := setupFixtureRepo(t, "initial")
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0755))

	backend, err := Open(sub)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(backend.RootPath())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListReferences_PartitionsAndOrders(t *testing.T) {
	dir, repo, hashes := setupFixtureRepo(t, "initial", "second")

	head, err := repo.Head()
	require.NoError(t, err)
	defaultBranch := head.Name().Short()

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("feature"), hashes[0])))
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "main"), hashes[0])))
	// Symbolic remote HEAD must be dropped
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewSymbolicReference(plumbing.NewRemoteHEADReferenceName("origin"),
			plumbing.NewRemoteReferenceName("origin", "main"))))
	_, err = repo.CreateTag("v1.0.0", hashes[0], nil)
	require.NoError(t, err)
	_, err = repo.CreateTag("v2.0.0", hashes[1], &git.CreateTagOptions{
		Message: "release 2",
		Tagger:  testSignature,
	})
	require.NoError(t, err)

	backend, err := Open(dir)
	require.NoError(t, err)

	entries, err := backend.ListReferences(context.Background())
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Kind.String()+":"+e.Name)
	}

	expectedLocals := []string{"local:" + defaultBranch, "local:feature"}
	if defaultBranch > "feature" {
		expectedLocals = []string{"local:feature", "local:" + defaultBranch}
	}
	expected := append(expectedLocals, "remote:origin/main", "tag:v1.0.0", "tag:v2.0.0")
	assert.Equal(t, expected, names)

	// Annotated tag resolves to the tagged commit, not the tag object
	last := entries[len(entries)-1]
	assert.Equal(t, hashes[1].String(), last.RevisionID)
}

func TestResolveCommitSummary(t *testing.T) {
	dir, _, hashes := setupFixtureRepo(t, "first line\n\nbody text", "second commit")

	backend, err := Open(dir)
	require.NoError(t, err)

	t.Run("by hash", func(t *testing.T) {
		summary, err := backend.ResolveCommitSummary(context.Background(), hashes[0].String())
		require.NoError(t, err)
		assert.Equal(t, "first line", summary)
	})

	t.Run("by expression", func(t *testing.T) {
		summary, err := backend.ResolveCommitSummary(context.Background(), "HEAD")
		require.NoError(t, err)
		assert.Equal(t, "second commit", summary)
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, err := backend.ResolveCommitSummary(context.Background(), "does-not-exist")
		require.Error(t, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := backend.ResolveCommitSummary(ctx, "HEAD")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
