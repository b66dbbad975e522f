// Package indexing implements the document lifecycle: add, remove, and
// stop-word declaration. Every mutation keeps the inverted and forward
// directions of the index in lockstep, and every failure leaves the index
// untouched.
package indexing

import (
	"fmt"

	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/internal/errors"
	"github.com/dabramov/search-server/internal/tokenizer"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/store"
)

// Service mutates the index pair and the document store.
type Service struct {
	inverted  *index.InvertedIndex
	forward   *index.ForwardIndex
	store     *store.DocumentStore
	words     *index.WordStore
	stopWords index.StopWordSet
}

// NewService creates an indexing Service over the given state.
func NewService(inverted *index.InvertedIndex, forward *index.ForwardIndex, docStore *store.DocumentStore, words *index.WordStore, stopWords index.StopWordSet) (*Service, error) {
	if inverted == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if forward == nil {
		return nil, fmt.Errorf("forward index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if words == nil {
		return nil, fmt.Errorf("word store cannot be nil")
	}
	return &Service{
		inverted:  inverted,
		forward:   forward,
		store:     docStore,
		words:     words,
		stopWords: stopWords,
	}, nil
}

// Add validates and indexes a new document. The stored rating is the
// truncating mean of ratings. A document whose text is entirely stop words
// is registered with an empty term map.
func (s *Service) Add(id int32, text string, status model.Status, ratings []int32) error {
	if id < 0 {
		return &errors.NegativeIDError{ID: id}
	}
	if s.store.Has(id) {
		return &errors.DuplicateIDError{ID: id}
	}
	if !tokenizer.IsValidWord(text) {
		return &errors.InvalidDocCharError{Word: text}
	}

	words := s.splitNoStop(text)
	s.forward.EnsureDocument(id)
	if len(words) > 0 {
		inv := 1.0 / float64(len(words))
		for _, w := range words {
			w = s.words.Intern(w)
			s.inverted.Accumulate(w, id, inv)
			s.forward.Accumulate(id, w, inv)
		}
	}
	s.store.Put(id, store.DocumentData{Rating: AverageRating(ratings), Status: status})
	return nil
}

// Remove deletes a document from both index directions and the store.
// Emptied posting maps may remain in the inverted index.
func (s *Service) Remove(id int32) error {
	terms, ok := s.forward.TermsFor(id)
	if !ok {
		return &errors.UnknownIDError{ID: id}
	}
	for w := range terms {
		s.inverted.DeleteDocument(w, id)
	}
	s.forward.DeleteDocument(id)
	s.store.Delete(id)
	return nil
}

// SetStopWords extends the stop-word set from space-separated text. Words of
// documents added before the call are not retroactively scrubbed; only
// subsequent adds and parses observe the new set.
func (s *Service) SetStopWords(text string) error {
	return s.stopWords.Extend(text)
}

// WordFrequencies returns the read-only term→frequency view for id.
func (s *Service) WordFrequencies(id int32) (map[string]float64, error) {
	terms, ok := s.forward.TermsFor(id)
	if !ok {
		return nil, &errors.UnknownIDError{ID: id}
	}
	return terms, nil
}

// AverageRating is the integer mean of samples truncated toward zero; an
// empty sample list yields 0.
func AverageRating(ratings []int32) int32 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int32
	for _, r := range ratings {
		sum += r
	}
	return sum / int32(len(ratings))
}

// splitNoStop tokenizes text and drops stop words.
func (s *Service) splitNoStop(text string) []string {
	words := make([]string, 0)
	for _, w := range tokenizer.Split(text) {
		if !s.stopWords.Has(w) {
			words = append(words, w)
		}
	}
	return words
}
