package domain

// Disposition is what the host dispatcher observes after an apply call.
type Disposition uint8

const (
	// NotHandled tells the host to run its default handling.
	NotHandled Disposition = iota
	// Handled tells the host that no further processing is needed.
	Handled
)

func (d Disposition) String() string {
	if d == Handled {
		return "handled"
	}
	return "not-handled"
}

// ApplyOutcome summarizes a best-effort application of a definition's modifiers.
type ApplyOutcome struct {
	DefinitionID string
	Applied      int
	Skipped      []string
}

// SkippedCount returns the number of modifier specs whose key was not found.
func (o ApplyOutcome) SkippedCount() int {
	return len(o.Skipped)
}

// ApplyResult is the full result of one apply call.
// Reason is one of the apply taxonomy sentinels when the call aborted, and nil otherwise.
// It is informational; nothing is raised across the dispatcher boundary.
type ApplyResult struct {
	Disposition Disposition
	Outcome     ApplyOutcome
	Reason      error
}

// Aborted reports whether the call was handled without mutating anything.
func (r ApplyResult) Aborted() bool {
	return r.Reason != nil
}
