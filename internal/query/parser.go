// Package query parses raw query strings into deduplicated include and
// exclude term sets.
package query

import (
	"golang.org/x/sync/errgroup"

	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/internal/errors"
	"github.com/dabramov/search-server/internal/tokenizer"
)

// Query is a parsed query: the include (plus) and exclude (minus) word sets.
// Both sides are deduplicated; iteration order within a side does not affect
// results.
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

// queryWord is one classified word of a raw query.
type queryWord struct {
	word    string
	isMinus bool
	isStop  bool
}

// parseWord validates and classifies a single raw query word.
func parseWord(raw string, stopWords index.StopWordSet) (queryWord, error) {
	if !tokenizer.IsValidWord(raw) {
		return queryWord{}, &errors.InvalidQueryCharError{Word: raw}
	}
	if !tokenizer.IsValidMinusWord(raw) {
		return queryWord{}, &errors.InvalidMinusError{Word: raw}
	}
	word := raw
	isMinus := false
	if word[0] == '-' {
		isMinus = true
		word = word[1:]
	}
	if word == "" {
		return queryWord{}, &errors.EmptyQueryWordError{Word: raw}
	}
	return queryWord{word: word, isMinus: isMinus, isStop: stopWords.Has(word)}, nil
}

// Parse splits raw on spaces and classifies every word sequentially.
func Parse(raw string, stopWords index.StopWordSet) (Query, error) {
	result := Query{
		Plus:  make(map[string]struct{}),
		Minus: make(map[string]struct{}),
	}
	for _, w := range tokenizer.Split(raw) {
		qw, err := parseWord(w, stopWords)
		if err != nil {
			return Query{}, err
		}
		result.insert(qw)
	}
	return result, nil
}

// ParseParallel classifies the words of raw concurrently and assembles the
// same sets as Parse. Per-word work is independent; only the final assembly
// is serialized.
func ParseParallel(raw string, stopWords index.StopWordSet) (Query, error) {
	words := tokenizer.Split(raw)
	classified := make([]queryWord, len(words))

	g := new(errgroup.Group)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			qw, err := parseWord(w, stopWords)
			if err != nil {
				return err
			}
			classified[i] = qw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Query{}, err
	}

	result := Query{
		Plus:  make(map[string]struct{}),
		Minus: make(map[string]struct{}),
	}
	for _, qw := range classified {
		result.insert(qw)
	}
	return result, nil
}

func (q *Query) insert(qw queryWord) {
	if qw.isStop {
		return
	}
	if qw.isMinus {
		q.Minus[qw.word] = struct{}{}
	} else {
		q.Plus[qw.word] = struct{}{}
	}
}
