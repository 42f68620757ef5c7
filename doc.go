// Package ahocorasick implements multi-pattern substring matching over
// 8-bit byte strings using the Aho-Corasick algorithm: a trie over keyword
// symbols augmented with a failure function and per-state output sets.
//
// Given a set of byte-string keywords, each carrying an opaque
// caller-supplied payload, an Automaton reports every occurrence of every
// keyword in a single linear scan over an input phrase, together with the
// payload and the exact byte span where it occurred.
//
// Construction is a two-phase lifecycle. A Builder accumulates keywords
// (AddPattern), extending the trie and appending to each terminal state's
// output set. Build then runs a breadth-first pass that assigns failure
// links and flattens each state's failure-chain outputs into it, and
// returns an immutable Automaton ready to be queried with Each or FindAll.
// The automaton never compiles away the failure function into a
// deterministic transition table (that would be a different algorithm);
// it retains the classic Aho-Corasick machine, and a query runs in
// O(n + z) time for a phrase of n bytes with z matches, independent of the
// number or length of keywords.
//
// Basic usage:
//
//	b := ahocorasick.NewBuilder()
//	b.AddPattern([]byte("he"), "payload-he")
//	b.AddPattern([]byte("she"), "payload-she")
//	b.AddPattern([]byte("his"), "payload-his")
//	b.AddPattern([]byte("hers"), "payload-hers")
//
//	auto, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer auto.Release(nil)
//
//	matches, err := auto.FindAll([]byte("ushers"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range matches {
//	    fmt.Printf("[%d:%d) %v\n", m.Start, m.End, m.Payload)
//	}
//
// Concurrency: an Automaton is immutable after Build and safe for
// concurrent queries from any number of goroutines, provided the caller's
// payloads and any Visitor passed to Each are themselves safe for
// concurrent loan-reads. A Builder must not be used from more than one
// goroutine at a time.
package ahocorasick
