package domain

// OutcomeKind tags a DiffOutcome
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeNoChanges
	OutcomeCommandFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoChanges:
		return "no_changes"
	case OutcomeCommandFailed:
		return "command_failed"
	default:
		return "unknown"
	}
}

// DiffOutcome is the classified result of one git diff run.
// Text is set for OutcomeSuccess, Message for OutcomeCommandFailed.
type DiffOutcome struct {
	Kind    OutcomeKind
	Message string
	Text    string
}

func Success(text string) DiffOutcome {
	return DiffOutcome{Kind: OutcomeSuccess, Text: text}
}

func NoChanges() DiffOutcome {
	return DiffOutcome{Kind: OutcomeNoChanges}
}

func CommandFailed(message string) DiffOutcome {
	return DiffOutcome{Kind: OutcomeCommandFailed, Message: message}
}

// Err converts a non-success outcome into ErrNoChanges or *CommandFailedError
func (o DiffOutcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeNoChanges:
		return ErrNoChanges
	default:
		return &CommandFailedError{Message: o.Message}
	}
}
