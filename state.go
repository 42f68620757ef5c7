package ahocorasick

// stateID identifies a state by its stable index into an automaton's flat
// state arena. Using indices rather than pointers sidesteps the aliasing
// and cyclic-ownership problems of a pointer graph whose failure links
// point backward toward root and whose root, after finalize, points to
// itself: the whole arena is released in one shot, and every cross
// reference (goto target, failure link) is just an int.
type stateID uint32

// invalidState never appears as a real state index; it marks "no state"
// where a zero value would be ambiguous with the root.
const invalidState stateID = 0xFFFFFFFF

// rootState is the index of the distinguished root of the trie.
const rootState stateID = 0

// gotoEdge associates one input byte with a successor state.
type gotoEdge struct {
	symbol byte
	target stateID
}

// output is one (keyword-length, payload) pair attached to a state.
type output struct {
	length  int
	payload any
}

// state is a single node of the automaton: a goto table, two output sets,
// and a failure link.
//
// goTo is an unordered linear list scanned on each lookup rather than a
// fixed 256-slot array or sorted structure. Keywords are typically short
// and branching is low, so a small cache-friendly list scanned linearly
// beats tree- or map-based alternatives for the common case; the root is
// the one state where this list grows to all 256 entries, and ordering it
// from byte 0 up (rather than starting from a signed char's negative
// range) puts frequent 7-bit ASCII codes near the front for lookup
// locality.
//
// primary and inherited are kept as separate slices, rather than one
// slice with an "owned" flag per entry, so that teardown can distinguish
// "release this payload" from "this payload is aliased from an ancestor"
// with a single slice selector instead of a per-entry branch.
type state struct {
	goTo      []gotoEdge
	primary   []output
	inherited []output
	fail      stateID
}

// get returns the successor for symbol and whether an edge exists.
func (s *state) get(symbol byte) (stateID, bool) {
	for _, e := range s.goTo {
		if e.symbol == symbol {
			return e.target, true
		}
	}
	return invalidState, false
}

// has reports whether s has an outgoing edge for symbol.
func (s *state) has(symbol byte) bool {
	_, ok := s.get(symbol)
	return ok
}

// put installs an edge for symbol. Callers guarantee no prior edge for
// that symbol exists, except during finalize's root-completion pass.
func (s *state) put(symbol byte, target stateID) {
	s.goTo = append(s.goTo, gotoEdge{symbol: symbol, target: target})
}

// addInheritedFrom copies both the primary and inherited outputs of
// source into s's inherited set. This is what propagates a whole
// failure-chain's outputs up front, so the query loop never has to walk
// the chain at match time: by the time finalize reaches s, source (s's
// own failure target) has already had its own inherited set fully
// flattened, because finalize visits states in breadth-first order.
func (s *state) addInheritedFrom(source *state) {
	s.inherited = append(s.inherited, source.primary...)
	s.inherited = append(s.inherited, source.inherited...)
}
