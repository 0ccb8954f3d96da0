package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// Backend implements ports.RefBackend on top of go-git
type Backend struct {
	repo *git.Repository
	root string
}

// Verify interface compliance at compile time
var _ ports.RefBackend = (*Backend)(nil)

// Open finds the repository containing path (walking up to the .git directory).
// Any failure is reported as domain.ErrBackendUnavailable.
func Open(path string) (*Backend, error) {
	logging.Logger.Debug("Opening repository", "path", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		logging.Logger.Warn("Failed to open repository", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no working tree to run git diff in
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, path, err)
	}

	root := wt.Filesystem.Root()
	logging.Logger.Info("Repository opened", "root", root)
	return &Backend{repo: repo, root: root}, nil
}

// RootPath implements ports.RefBackend.RootPath
func (b *Backend) RootPath() string {
	return b.root
}

// ListReferences implements ports.ReferenceLister.ListReferences.
// Symbolic refs, HEAD, notes and stash are skipped.
func (b *Backend) ListReferences(ctx context.Context) ([]domain.ReferenceEntry, error) {
	iter, err := b.repo.References()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list references: %v", domain.ErrBackendUnavailable, err)
	}
	defer iter.Close()

	var locals, remotes, tags []domain.ReferenceEntry
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() != plumbing.HashReference {
			return nil
		}

		name := ref.Name()
		switch {
		case name.IsBranch():
			locals = append(locals, domain.ReferenceEntry{
				Kind:       domain.RefLocal,
				Name:       name.Short(),
				RevisionID: ref.Hash().String(),
			})
		case name.IsRemote():
			remotes = append(remotes, domain.ReferenceEntry{
				Kind:       domain.RefRemote,
				Name:       name.Short(),
				RevisionID: ref.Hash().String(),
			})
		case name.IsTag():
			tags = append(tags, domain.ReferenceEntry{
				Kind:       domain.RefTag,
				Name:       name.Short(),
				RevisionID: b.peelTag(ref.Hash()),
			})
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	sortByName(locals)
	sortByName(remotes)
	sortByName(tags)

	entries := make([]domain.ReferenceEntry, 0, len(locals)+len(remotes)+len(tags))
	entries = append(entries, locals...)
	entries = append(entries, remotes...)
	entries = append(entries, tags...)

	logging.Logger.Debug("References listed",
		"local", len(locals), "remote", len(remotes), "tags", len(tags))
	return entries, nil
}

// ResolveCommitSummary implements ports.CommitSummaryResolver.ResolveCommitSummary.
// The summary is the first line of the commit message.
func (b *Backend) ResolveCommitSummary(ctx context.Context, revision string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := b.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", revision, err)
	}

	commit, err := b.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", hash, err)
	}

	summary, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
	return strings.TrimSpace(summary), nil
}

// peelTag returns the commit an annotated tag points to, or hash itself
// for lightweight tags
func (b *Backend) peelTag(hash plumbing.Hash) string {
	tag, err := b.repo.TagObject(hash)
	if err != nil {
		return hash.String()
	}

	commit, err := tag.Commit()
	if err != nil {
		// Tags of trees or blobs have no commit
		logging.Logger.Debug("Tag does not point to a commit", "tag", tag.Name, "error", err)
		return tag.Target.String()
	}
	return commit.Hash.String()
}

func sortByName(entries []domain.ReferenceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
