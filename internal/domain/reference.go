package domain

// RefKind is the category of a named reference reported by the backend
type RefKind int

const (
	RefLocal RefKind = iota
	RefRemote
	RefTag
)

func (k RefKind) String() string {
	switch k {
	case RefLocal:
		return "local"
	case RefRemote:
		return "remote"
	case RefTag:
		return "tag"
	default:
		return "unknown"
	}
}

// ReferenceEntry is a branch or tag the user can compare against
type ReferenceEntry struct {
	Kind       RefKind
	Name       string
	RevisionID string // Commit (or tag object) hash, empty when unknown
}

// ShortRevision returns the first 8 characters of the revision id
func (r ReferenceEntry) ShortRevision() string {
	if len(r.RevisionID) > 8 {
		return r.RevisionID[:8]
	}
	return r.RevisionID
}
