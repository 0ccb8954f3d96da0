package domain

import "fmt"

// Well-known selection labels
const (
	HeadLabel     = "HEAD"
	StagedLabel   = "--staged"
	FreeTextLabel = "Enter a commit, tag or revision expression..."
)

// SelectionOption is one entry of the base/current pickers.
// Implementations: HeadOption, StagedOption, FreeTextOption, ReferenceOption
// and RevisionOption (the literal typed after choosing FreeTextOption).
type SelectionOption interface {
	Description() string
	Detail() string
	// Label is the token passed to git diff, except for FreeTextOption
	Label() string
	isSelectionOption()
}

// HeadOption compares against the current HEAD commit
type HeadOption struct{}

func (HeadOption) Description() string { return "Current HEAD" }
func (HeadOption) Detail() string      { return "The commit currently checked out" }
func (HeadOption) Label() string       { return HeadLabel }
func (HeadOption) isSelectionOption()  {}

// StagedOption compares against the staged index (only offered as current)
type StagedOption struct{}

func (StagedOption) Description() string { return "Staged changes" }
func (StagedOption) Detail() string      { return "Changes added to the index but not yet committed" }
func (StagedOption) Label() string       { return StagedLabel }
func (StagedOption) isSelectionOption()  {}

// FreeTextOption asks for an arbitrary revision expression
type FreeTextOption struct{}

func (FreeTextOption) Description() string { return "Custom" }
func (FreeTextOption) Detail() string      { return "Type a commit hash, tag or expression such as HEAD~3" }
func (FreeTextOption) Label() string       { return FreeTextLabel }
func (FreeTextOption) isSelectionOption()  {}

// ReferenceOption wraps a branch or tag from the backend
type ReferenceOption struct {
	Entry   ReferenceEntry
	Summary string // Last commit summary, empty when the lookup failed
}

func (o ReferenceOption) Description() string {
	switch o.Entry.Kind {
	case RefLocal:
		return "Local branch"
	case RefRemote:
		return "Remote branch"
	case RefTag:
		return "Tag"
	default:
		return ""
	}
}

func (o ReferenceOption) Detail() string {
	if o.Summary == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s)", o.Summary, o.Entry.ShortRevision())
}

func (o ReferenceOption) Label() string    { return o.Entry.Name }
func (ReferenceOption) isSelectionOption() {}

// RevisionOption is a literal revision expression typed by the user
type RevisionOption struct {
	Expr string
}

func (RevisionOption) Description() string { return "Custom revision" }
func (RevisionOption) Detail() string      { return "" }
func (o RevisionOption) Label() string     { return o.Expr }
func (RevisionOption) isSelectionOption()  {}

// BaseOptions returns the base picker list: HEAD, free text, then references
func BaseOptions(refs []ReferenceOption) []SelectionOption {
	options := make([]SelectionOption, 0, len(refs)+2)
	options = append(options, HeadOption{}, FreeTextOption{})
	for _, ref := range refs {
		options = append(options, ref)
	}
	return options
}

// CurrentOptions returns the base list with the staged index inserted second
func CurrentOptions(refs []ReferenceOption) []SelectionOption {
	base := BaseOptions(refs)
	options := make([]SelectionOption, 0, len(base)+1)
	options = append(options, base[0], StagedOption{})
	return append(options, base[1:]...)
}

// Selection holds the two resolved endpoints of a comparison
type Selection struct {
	Base    SelectionOption
	Current SelectionOption
}

// DiffOptionFlag is a git diff flag offered in the options picker
type DiffOptionFlag struct {
	Description string
	Flag        string
}

// DiffOptionFlags is the fixed set of flags offered to the user
var DiffOptionFlags = []DiffOptionFlag{
	{Flag: "-b", Description: "Ignore changes in amount of whitespace"},
	{Flag: "-w", Description: "Ignore all whitespace"},
	{Flag: "-M", Description: "Detect renames"},
	{Flag: "-C", Description: "Detect copies as well as renames"},
	{Flag: "--submodule", Description: "Show submodule changes as a log of commits"},
}

// IsKnownDiffFlag reports whether flag belongs to DiffOptionFlags.
// "--submodule=<mode>" forms are accepted too.
func IsKnownDiffFlag(flag string) bool {
	for _, f := range DiffOptionFlags {
		if f.Flag == flag {
			return true
		}
	}
	switch flag {
	case "--submodule=short", "--submodule=log", "--submodule=diff":
		return true
	}
	return false
}
