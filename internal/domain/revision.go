package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateRevision checks a user-typed revision expression before it is
// placed in the git diff argument vector.
//
// Rules:
// - Cannot be empty or whitespace only
// - Cannot contain control characters or whitespace
// - Cannot start with '-' unless allowFlagLike is set
func ValidateRevision(expr string, allowFlagLike bool) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("revision cannot be empty")
	}

	for _, r := range expr {
		if unicode.IsControl(r) {
			return fmt.Errorf("revision cannot contain control characters")
		}
		if unicode.IsSpace(r) {
			return fmt.Errorf("revision cannot contain whitespace")
		}
	}

	if strings.HasPrefix(expr, "-") && !allowFlagLike {
		return fmt.Errorf("revision cannot start with '-' (set allow_flag_like_refs to pass options)")
	}

	return nil
}
