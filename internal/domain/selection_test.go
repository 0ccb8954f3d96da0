package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRefs() []ReferenceOption {
	return []ReferenceOption{
		{Entry: ReferenceEntry{Kind: RefLocal, Name: "main", RevisionID: "0123456789abcdef"}, Summary: "Initial commit"},
		{Entry: ReferenceEntry{Kind: RefRemote, Name: "origin/main"}},
		{Entry: ReferenceEntry{Kind: RefTag, Name: "v1.0.0"}},
	}
}

func labels(options []SelectionOption) []string {
	result := make([]string, len(options))
	for i, opt := range options {
		result[i] = opt.Label()
	}
	return result
}

func TestBaseOptions_Order(t *testing.T) {
	options := BaseOptions(sampleRefs())

	assert.Equal(t, []string{HeadLabel, FreeTextLabel, "main", "origin/main", "v1.0.0"}, labels(options))
}

func TestCurrentOptions_InsertsStagedSecond(t *testing.T) {
	options := CurrentOptions(sampleRefs())

	require.Len(t, options, 6)
	assert.Equal(t, []string{HeadLabel, StagedLabel, FreeTextLabel, "main", "origin/main", "v1.0.0"}, labels(options))
	assert.IsType(t, StagedOption{}, options[1])
}

func TestCurrentOptions_DoesNotMutateBase(t *testing.T) {
	refs := sampleRefs()
	base := BaseOptions(refs)
	_ = CurrentOptions(refs)

	assert.Len(t, base, 5)
}

func TestReferenceOption_Detail(t *testing.T) {
	tests := []struct {
		name     string
		option   ReferenceOption
		expected string
	}{
		{
			name:     "summary with long hash",
			option:   ReferenceOption{Entry: ReferenceEntry{Name: "main", RevisionID: "0123456789abcdef"}, Summary: "Fix parser"},
			expected: "Fix parser (01234567)",
		},
		{
			name:     "missing summary",
			option:   ReferenceOption{Entry: ReferenceEntry{Name: "main", RevisionID: "0123456789abcdef"}},
			expected: "",
		},
		{
			name:     "short hash kept",
			option:   ReferenceOption{Entry: ReferenceEntry{Name: "main", RevisionID: "abc"}, Summary: "msg"},
			expected: "msg (abc)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.option.Detail())
		})
	}
}

func TestReferenceOption_Description(t *testing.T) {
	assert.Equal(t, "Local branch", ReferenceOption{Entry: ReferenceEntry{Kind: RefLocal}}.Description())
	assert.Equal(t, "Remote branch", ReferenceOption{Entry: ReferenceEntry{Kind: RefRemote}}.Description())
	assert.Equal(t, "Tag", ReferenceOption{Entry: ReferenceEntry{Kind: RefTag}}.Description())
}

func TestIsKnownDiffFlag(t *testing.T) {
	for _, f := range DiffOptionFlags {
		assert.True(t, IsKnownDiffFlag(f.Flag), f.Flag)
	}
	assert.True(t, IsKnownDiffFlag("--submodule=diff"))
	assert.False(t, IsKnownDiffFlag("--output=/tmp/x"))
	assert.False(t, IsKnownDiffFlag("--numstat"))
}
