package ahocorasick

// Builder accumulates keywords into a trie. It is the "building" phase
// handle of the index lifecycle: AddPattern may be called any number of
// times, in any order, including with duplicate or overlapping keywords.
// Build consumes the accumulated trie and returns an immutable Automaton;
// after a successful Build, further calls to AddPattern or Build on the
// same Builder return usage errors rather than mutating anything.
//
// A Builder must not be used concurrently from more than one goroutine.
type Builder struct {
	states []state
	built  bool
}

// NewBuilder creates a new Builder with a single root state.
func NewBuilder() *Builder {
	return &Builder{
		states: []state{{fail: rootState}},
	}
}

// IsFinalized reports whether Build has already succeeded on this
// Builder. Once true, AddPattern and Build both return usage errors.
func (b *Builder) IsFinalized() bool {
	return b.built
}

// AddPattern appends keyword to the trie, associating it with payload.
// payload is an opaque handle reported verbatim on every match of
// keyword; this package never inspects it.
//
// An empty keyword is admissible: it attaches a primary output of length
// zero to the root. Build copies that output into every other state's
// inherited set, so the query loop reports it (with start == end) after
// every byte of every phrase, whatever state the scan is on; it is not
// reported before the first byte. Inserting the same keyword
// more than once produces one independent output per insertion; duplicate
// outputs are never merged or deduplicated, and matches report both
// (along with both payloads) independently. A keyword that is a prefix of
// one already inserted, or vice versa, terminates at a distinct state
// along the same chain and retains its own output.
//
// Returns ErrFinalized if called after Build has already succeeded.
func (b *Builder) AddPattern(keyword []byte, payload any) error {
	if b.built {
		return ErrFinalized
	}
	b.enter(keyword, payload)
	return nil
}

// enter is Algorithm 2's "enter" procedure: walk existing goto edges
// while they match keyword's prefix, then extend a fresh chain of states
// for the remaining suffix, and append a primary output at the terminal
// state.
func (b *Builder) enter(keyword []byte, payload any) {
	cur := rootState
	j := 0
	for j < len(keyword) {
		if next, ok := b.states[cur].get(keyword[j]); ok {
			cur = next
			j++
			continue
		}
		break
	}
	for j < len(keyword) {
		next := b.newState()
		b.states[cur].put(keyword[j], next)
		cur = next
		j++
	}
	b.states[cur].primary = append(b.states[cur].primary, output{
		length:  len(keyword),
		payload: payload,
	})
}

// newState appends a fresh state to the arena and returns its id.
func (b *Builder) newState() stateID {
	id := stateID(len(b.states))
	b.states = append(b.states, state{fail: invalidState})
	return id
}
