package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffInvocation_Args(t *testing.T) {
	selection := Selection{
		Base:    ReferenceOption{Entry: ReferenceEntry{Kind: RefLocal, Name: "main"}},
		Current: StagedOption{},
	}

	inv := NewDiffInvocation(selection, []string{"-w", "-M"}, "utf8", 1024)

	assert.Equal(t, []string{"main", "--staged", "-w", "-M"}, inv.DiffArgs())
	assert.Equal(t, []string{"main", "--staged", "--numstat", "-w", "-M"}, inv.NumstatArgs())
	assert.Equal(t, "utf8", inv.Encoding)
	assert.Equal(t, int64(1024), inv.MaxOutputBytes)
}

func TestDiffInvocation_FilterStaysLast(t *testing.T) {
	selection := Selection{Base: HeadOption{}, Current: RevisionOption{Expr: "abc1234"}}

	inv := NewDiffInvocation(selection, []string{"-w", "-M", "-- src/"}, "utf8", 1024)

	args := inv.DiffArgs()
	assert.Equal(t, []string{"-w", "-M", "-- src/"}, args[len(args)-3:])
	numstat := inv.NumstatArgs()
	assert.Equal(t, []string{"-w", "-M", "-- src/"}, numstat[len(numstat)-3:])
}

func TestDiffInvocation_OwnsFlags(t *testing.T) {
	flags := []string{"-w"}
	inv := NewDiffInvocation(Selection{Base: HeadOption{}, Current: StagedOption{}}, flags, "utf8", 1)

	flags[0] = "-b"

	assert.Equal(t, []string{"-w"}, inv.Flags)
}
