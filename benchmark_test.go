package ahocorasick

import (
	"bytes"
	"testing"
)

// Benchmarks for build and query over a small English keyword set, the
// short-keyword/low-branching shape the linear goto list is tuned for.

var benchKeywords = [][]byte{
	[]byte("he"), []byte("she"), []byte("his"), []byte("hers"),
	[]byte("usher"), []byte("sher"), []byte("per"), []byte("her"),
}

var benchPhrase = bytes.Repeat([]byte("ushers pushers whispers "), 64)

func benchAutomaton(b *testing.B) *Automaton {
	bld := NewBuilder()
	for i, kw := range benchKeywords {
		bld.AddPattern(kw, i)
	}
	auto, err := bld.Build()
	if err != nil {
		b.Fatalf("Build: unexpected error: %v", err)
	}
	return auto
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bld := NewBuilder()
		for j, kw := range benchKeywords {
			bld.AddPattern(kw, j)
		}
		if _, err := bld.Build(); err != nil {
			b.Fatalf("Build: unexpected error: %v", err)
		}
	}
}

func BenchmarkEach(b *testing.B) {
	auto := benchAutomaton(b)
	b.SetBytes(int64(len(benchPhrase)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink := 0
		if err := auto.Each(benchPhrase, func(m Match) bool {
			sink += m.End
			return true
		}); err != nil {
			b.Fatalf("Each: unexpected error: %v", err)
		}
	}
}

func BenchmarkFindAll(b *testing.B) {
	auto := benchAutomaton(b)
	b.SetBytes(int64(len(benchPhrase)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := auto.FindAll(benchPhrase); err != nil {
			b.Fatalf("FindAll: unexpected error: %v", err)
		}
	}
}
