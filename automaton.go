package ahocorasick

// Match is one reported occurrence of a keyword within a queried phrase.
// The span [Start, End) is half-open: End-Start equals the byte length of
// the matching keyword. Payload is loaned unchanged from whatever value
// was passed to the AddPattern call that inserted the matching keyword;
// the automaton does not take ownership of it and a Visitor that needs to
// retain a Match's contents must copy them, since the struct is transient.
type Match struct {
	Start   int
	End     int
	Payload any
}

// Visitor is called once per match found during Each. Returning false
// aborts the query immediately; Each then returns ErrAborted. The
// automaton is immutable during a query, so a Visitor must not attempt to
// mutate it, but is otherwise free to do anything including running
// concurrently with other queries against the same Automaton.
type Visitor func(Match) bool

// Automaton is a finalized Aho-Corasick index: root state plus a flat
// arena of states, each carrying its goto edges (the root's completed to
// all 256 byte values), a failure link, and fully flattened output sets. It is immutable and safe for
// concurrent queries from any number of goroutines, provided payloads and
// any Visitor passed to Each are themselves safe for concurrent
// loan-reads. The only way to obtain one is Builder.Build.
type Automaton struct {
	states []state
	closed bool
}

// Each drives the automaton over phrase, calling visit once per match in
// ascending order of End; matches sharing an End are reported primary
// outputs before inherited outputs. Primary outputs come in the order of
// their AddPattern calls; inherited outputs come in failure-chain order,
// longest matching suffix first. Returns
// ErrNilVisitor if visit is nil, or ErrAborted if visit returned false
// before the phrase was exhausted.
func (a *Automaton) Each(phrase []byte, visit Visitor) error {
	if a.closed {
		return ErrClosed
	}
	if visit == nil {
		return ErrNilVisitor
	}

	cur := rootState
	for j, sym := range phrase {
		for {
			if next, ok := a.states[cur].get(sym); ok {
				cur = next
				break
			}
			cur = a.states[cur].fail
		}

		st := &a.states[cur]
		for _, o := range st.primary {
			if !visit(Match{Start: j - o.length + 1, End: j + 1, Payload: o.payload}) {
				return ErrAborted
			}
		}
		for _, o := range st.inherited {
			if !visit(Match{Start: j - o.length + 1, End: j + 1, Payload: o.payload}) {
				return ErrAborted
			}
		}
	}
	return nil
}

// FindAll is a buffer-sink convenience equivalent to Each with a Visitor
// that appends every match to a slice and always returns true. It never
// returns ErrAborted since the implicit visitor never refuses a match.
func (a *Automaton) FindAll(phrase []byte) ([]Match, error) {
	var matches []Match
	err := a.Each(phrase, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	return matches, err
}
