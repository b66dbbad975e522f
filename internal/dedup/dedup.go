// Package dedup removes documents whose word sets duplicate an earlier
// document's, using only the index's public iteration surface.
package dedup

import (
	"fmt"
	"io"
	"sort"
	"strings"

	farmhash "github.com/leemcloughlin/gofarmhash"
)

// Index is the slice of the engine surface the sweep needs.
type Index interface {
	IDs() []int32
	WordFrequencies(id int32) (map[string]float64, error)
	Remove(id int32) error
}

// RemoveDuplicates scans ids in ascending order and removes every document
// whose distinct word set (frequencies ignored) was already seen on a lower
// id. Each removal is reported on sink as
// "Found duplicate document id <id>".
func RemoveDuplicates(idx Index, sink io.Writer) error {
	// Signatures are hashed for the common case; the per-hash list keeps
	// the sweep exact when two distinct word sets collide.
	seen := make(map[uint32][]string)
	var doomed []int32

	for _, id := range idx.IDs() {
		freqs, err := idx.WordFrequencies(id)
		if err != nil {
			return err
		}
		sig := signature(freqs)
		h := farmhash.Hash32WithSeed([]byte(sig), 0)

		duplicate := false
		for _, prev := range seen[h] {
			if prev == sig {
				duplicate = true
				break
			}
		}
		if duplicate {
			doomed = append(doomed, id)
		} else {
			seen[h] = append(seen[h], sig)
		}
	}

	for _, id := range doomed {
		fmt.Fprintf(sink, "Found duplicate document id %d\n", id)
		if err := idx.Remove(id); err != nil {
			return err
		}
	}
	return nil
}

// signature joins the document's sorted distinct words with NUL, which
// cannot occur inside a word.
func signature(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\x00")
}
