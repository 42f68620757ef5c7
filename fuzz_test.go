package ahocorasick

import (
	"bytes"
	"sort"
	"testing"
)

// Fuzz test comparing FindAll against a brute-force substring oracle.
// Any divergence indicates a bug in trie construction, failure-link
// derivation, or the query loop.
//
// Run with:
//
//	go test -fuzz=FuzzFindAllOracle -fuzztime=30s

func FuzzFindAllOracle(f *testing.F) {
	f.Add([]byte("he"), []byte("she"), []byte("ushers"))
	f.Add([]byte("aa"), []byte("a"), []byte("aaaa"))
	f.Add([]byte("ab"), []byte("abc"), []byte("abcabc"))
	f.Add([]byte("a\x00b"), []byte("\x00"), []byte("xa\x00by"))
	f.Add([]byte("xyz"), []byte("zyx"), []byte("abcdefg"))

	f.Fuzz(func(t *testing.T, kw1, kw2, phrase []byte) {
		if len(kw1) == 0 || len(kw2) == 0 {
			t.Skip("the oracle does not model empty keywords; covered elsewhere")
		}

		keywords := [][]byte{kw1, kw2}
		b := NewBuilder()
		for i, kw := range keywords {
			if err := b.AddPattern(kw, i); err != nil {
				t.Fatalf("AddPattern: unexpected error: %v", err)
			}
		}
		auto, err := b.Build()
		if err != nil {
			t.Fatalf("Build: unexpected error: %v", err)
		}

		matches, err := auto.FindAll(phrase)
		if err != nil {
			t.Fatalf("FindAll: unexpected error: %v", err)
		}

		type occ struct{ start, end, kw int }
		var got []occ
		for _, m := range matches {
			got = append(got, occ{m.Start, m.End, m.Payload.(int)})
		}
		var want []occ
		for i, kw := range keywords {
			for s := 0; s+len(kw) <= len(phrase); s++ {
				if bytes.Equal(phrase[s:s+len(kw)], kw) {
					want = append(want, occ{s, s + len(kw), i})
				}
			}
		}

		sortOccs := func(o []occ) {
			sort.Slice(o, func(i, j int) bool {
				if o[i].start != o[j].start {
					return o[i].start < o[j].start
				}
				if o[i].end != o[j].end {
					return o[i].end < o[j].end
				}
				return o[i].kw < o[j].kw
			})
		}
		sortOccs(got)
		sortOccs(want)

		if len(got) != len(want) {
			t.Fatalf("keywords %q/%q phrase %q: got %d matches %v, want %d %v",
				kw1, kw2, phrase, len(got), got, len(want), want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("keywords %q/%q phrase %q: match %d got %v, want %v",
					kw1, kw2, phrase, i, got[i], want[i])
			}
		}
	})
}
