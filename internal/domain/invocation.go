package domain

// NumstatFlag switches git diff to per-file added/deleted counts
const NumstatFlag = "--numstat"

// DiffInvocation describes one report generation's git diff calls
type DiffInvocation struct {
	BaseRef        string
	CurrentRef     string
	Encoding       string
	Flags          []string
	MaxOutputBytes int64
}

// NewDiffInvocation builds an invocation that owns a copy of flags
func NewDiffInvocation(selection Selection, flags []string, encoding string, maxOutputBytes int64) DiffInvocation {
	owned := make([]string, len(flags))
	copy(owned, flags)
	return DiffInvocation{
		BaseRef:        selection.Base.Label(),
		CurrentRef:     selection.Current.Label(),
		Encoding:       encoding,
		Flags:          owned,
		MaxOutputBytes: maxOutputBytes,
	}
}

// DiffArgs returns the arguments following "git diff" for the unified diff
func (d DiffInvocation) DiffArgs() []string {
	args := make([]string, 0, len(d.Flags)+2)
	args = append(args, d.BaseRef, d.CurrentRef)
	return append(args, d.Flags...)
}

// NumstatArgs returns the arguments for the line-count variant
func (d DiffInvocation) NumstatArgs() []string {
	args := make([]string, 0, len(d.Flags)+3)
	args = append(args, d.BaseRef, d.CurrentRef, NumstatFlag)
	return append(args, d.Flags...)
}
