package ahocorasick

// Build finalizes the trie: it completes the root's goto function to
// cover all 256 byte values, assigns a failure link to every non-root
// state, and flattens each state's failure-chain outputs into its
// inherited output set. It returns an Automaton ready to be queried.
//
// Build may be called at most once per Builder. A second call is a
// no-op that returns ErrAlreadyFinalized rather than a new Automaton.
func (b *Builder) Build() (*Automaton, error) {
	if b.built {
		return nil, ErrAlreadyFinalized
	}
	b.built = true

	queue := b.completeRoot()
	b.assignFailureLinks(queue)

	return &Automaton{states: b.states}, nil
}

// completeRoot implements the root-completion half of Algorithm 2/3: for
// every byte value 0..255 (iterated from 0 up, not from a signed char's
// negative range, so frequent 7-bit ASCII codes land near the front of
// the root's edge list), an existing root edge gets its target's failure
// link pointed at root, the root's own outputs copied into its inherited
// set, and the target enqueued; a missing edge gets a root self-edge
// installed in its place. After this pass the root has
// exactly 256 outbound edges, which is what guarantees termination of the
// failure-chasing loops in both Build's own BFS and the query loop.
func (b *Builder) completeRoot() []stateID {
	root := &b.states[rootState]
	existing := make(map[byte]stateID, len(root.goTo))
	for _, e := range root.goTo {
		existing[e.symbol] = e.target
	}

	queue := make([]stateID, 0, len(existing))
	completed := make([]gotoEdge, 0, 256)
	for s := 0; s < 256; s++ {
		symbol := byte(s)
		if target, ok := existing[symbol]; ok {
			b.states[target].fail = rootState
			b.states[target].addInheritedFrom(root)
			queue = append(queue, target)
			completed = append(completed, gotoEdge{symbol: symbol, target: target})
		} else {
			completed = append(completed, gotoEdge{symbol: symbol, target: rootState})
		}
	}
	b.states[rootState].goTo = completed
	b.states[rootState].fail = rootState

	return queue
}

// assignFailureLinks is the breadth-first half of Algorithm 3. queue
// holds the root's direct children, already failure-linked to root by
// completeRoot. For each subsequent state u reached by edge (s, u) from a
// state r already dequeued, u's failure link is found by following r's
// failure chain until a state with a goto edge for s is found -- which is
// guaranteed to terminate because the root now has an edge for every
// byte. Because states are visited in BFS order, r's own failure link
// (and r's failure's inherited outputs) are already fully resolved by the
// time u is processed, so the inherited-output merge never needs to walk
// the chain itself.
func (b *Builder) assignFailureLinks(queue []stateID) {
	for i := 0; i < len(queue); i++ {
		r := queue[i]
		edges := b.states[r].goTo
		for _, e := range edges {
			u := e.target
			symbol := e.symbol
			queue = append(queue, u)

			f := b.states[r].fail
			for {
				if target, ok := b.states[f].get(symbol); ok {
					b.states[u].fail = target
					break
				}
				f = b.states[f].fail
			}

			failTarget := &b.states[b.states[u].fail]
			b.states[u].addInheritedFrom(failTarget)
		}
	}
}
