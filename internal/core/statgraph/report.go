package statgraph

// Outcome is the indexer's decision for one member.
type Outcome uint8

const (
	// Indexed means the member held an attribute that was recorded under a new key.
	Indexed Outcome = iota
	// Overwritten means the member held an attribute that replaced an earlier entry with the same key.
	Overwritten
	// Descended means the member held a plain node that was traversed.
	Descended
	// SkippedNil means the member held no value.
	SkippedNil
	// SkippedScalar means the member held a primitive value.
	SkippedScalar
	// SkippedText means the member held a string.
	SkippedText
	// SkippedEngine means the member held a host-engine object.
	SkippedEngine
	// SkippedCycle means the member pointed back at a node on the current descent path.
	SkippedCycle
	// ReadFailed means reading the member failed.
	ReadFailed
)

var outcomeNames = [...]string{
	Indexed:       "indexed",
	Overwritten:   "overwritten",
	Descended:     "descended",
	SkippedNil:    "skip:nil",
	SkippedScalar: "skip:scalar",
	SkippedText:   "skip:text",
	SkippedEngine: "skip:engine",
	SkippedCycle:  "skip:cycle",
	ReadFailed:    "read-failed",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Visit records what happened to one member during indexing.
type Visit struct {
	// Path is the dotted member path from the root, e.g. "offense.damage".
	Path string
	// Key is the member name, which is also the index key for attributes.
	Key     string
	Kind    MemberKind
	Outcome Outcome
	// Err is set when Outcome is ReadFailed.
	Err error
}

// Report is the ordered list of member visits from one build.
type Report struct {
	Visits []Visit
}

// Count returns how many visits ended with outcome o.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, v := range r.Visits {
		if v.Outcome == o {
			n++
		}
	}
	return n
}

// Failures returns the visits whose read failed.
func (r Report) Failures() []Visit {
	var out []Visit
	for _, v := range r.Visits {
		if v.Outcome == ReadFailed {
			out = append(out, v)
		}
	}
	return out
}
