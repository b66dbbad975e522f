package index

import (
	"github.com/hashicorp/go-multierror"

	"github.com/dabramov/search-server/internal/errors"
	"github.com/dabramov/search-server/internal/tokenizer"
)

// StopWordSet is the set of words excluded from tokenization of documents
// and from query classification.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from a word list. Every word is validated;
// all invalid words are reported together.
func NewStopWordSet(words []string) (StopWordSet, error) {
	var invalid *multierror.Error
	set := make(StopWordSet, len(words))
	for _, w := range words {
		if !tokenizer.IsValidWord(w) {
			invalid = multierror.Append(invalid, &errors.InvalidDocCharError{Word: w})
			continue
		}
		set[w] = struct{}{}
	}
	if err := invalid.ErrorOrNil(); err != nil {
		return nil, err
	}
	return set, nil
}

// StopWordSetFromText builds a set from space-separated text.
func StopWordSetFromText(text string) (StopWordSet, error) {
	return NewStopWordSet(tokenizer.Split(text))
}

// Has reports whether w is a stop word.
func (s StopWordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Extend validates the words of text and inserts them all. On error the set
// is unchanged.
func (s StopWordSet) Extend(text string) error {
	words := tokenizer.Split(text)
	var invalid *multierror.Error
	for _, w := range words {
		if !tokenizer.IsValidWord(w) {
			invalid = multierror.Append(invalid, &errors.InvalidDocCharError{Word: w})
		}
	}
	if err := invalid.ErrorOrNil(); err != nil {
		return err
	}
	for _, w := range words {
		s[w] = struct{}{}
	}
	return nil
}
