// Package engine wires the index state and its services into the single
// facade the rest of the server consumes.
//
// Mutating operations (Add, Remove, SetStopWords) are not safe to run
// concurrently with any other operation and must be serialized by the
// caller; read operations are mutually concurrent-safe.
package engine

import (
	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/internal/indexing"
	"github.com/dabramov/search-server/internal/search"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
	"github.com/dabramov/search-server/store"
)

// Engine owns the full index state and delegates to the indexing and search
// services.
type Engine struct {
	words     *index.WordStore
	inverted  *index.InvertedIndex
	forward   *index.ForwardIndex
	store     *store.DocumentStore
	stopWords index.StopWordSet

	indexing *indexing.Service
	search   *search.Service
}

// New creates an engine with no stop words.
func New() *Engine {
	eng, _ := newWithStopWords(make(index.StopWordSet))
	return eng
}

// NewWithStopWords creates an engine whose stop words are taken from
// space-separated text.
func NewWithStopWords(text string) (*Engine, error) {
	stopWords, err := index.StopWordSetFromText(text)
	if err != nil {
		return nil, err
	}
	return newWithStopWords(stopWords)
}

// NewWithStopWordList creates an engine whose stop words are taken from a
// word list.
func NewWithStopWordList(words []string) (*Engine, error) {
	stopWords, err := index.NewStopWordSet(words)
	if err != nil {
		return nil, err
	}
	return newWithStopWords(stopWords)
}

func newWithStopWords(stopWords index.StopWordSet) (*Engine, error) {
	eng := &Engine{
		words:     index.NewWordStore(),
		inverted:  index.NewInvertedIndex(),
		forward:   index.NewForwardIndex(),
		store:     store.NewDocumentStore(),
		stopWords: stopWords,
	}
	idx, err := indexing.NewService(eng.inverted, eng.forward, eng.store, eng.words, eng.stopWords)
	if err != nil {
		return nil, err
	}
	eng.indexing = idx
	eng.search = search.NewService(eng.inverted, eng.forward, eng.store, eng.stopWords)
	return eng, nil
}

// Add indexes a new document.
func (e *Engine) Add(id int32, text string, status model.Status, ratings []int32) error {
	return e.indexing.Add(id, text, status, ratings)
}

// Remove deletes a document.
func (e *Engine) Remove(id int32) error {
	return e.indexing.Remove(id)
}

// SetStopWords extends the stop-word set. Documents added before the call
// keep their previously indexed words.
func (e *Engine) SetStopWords(text string) error {
	return e.indexing.SetStopWords(text)
}

// FindTop ranks documents with status ACTUAL.
func (e *Engine) FindTop(rawQuery string) ([]model.Document, error) {
	return e.search.FindTop(rawQuery)
}

// FindTopWithStatus ranks documents with the given status.
func (e *Engine) FindTopWithStatus(rawQuery string, status model.Status) ([]model.Document, error) {
	return e.search.FindTopWithStatus(rawQuery, status)
}

// FindTopWithPredicate ranks documents accepted by predicate.
func (e *Engine) FindTopWithPredicate(rawQuery string, predicate services.Predicate) ([]model.Document, error) {
	return e.search.FindTopWithPredicate(rawQuery, predicate)
}

// FindTopParallel is FindTop with parallel term processing.
func (e *Engine) FindTopParallel(rawQuery string) ([]model.Document, error) {
	return e.search.FindTopParallel(rawQuery)
}

// FindTopParallelWithStatus is FindTopWithStatus with parallel term
// processing.
func (e *Engine) FindTopParallelWithStatus(rawQuery string, status model.Status) ([]model.Document, error) {
	return e.search.FindTopParallelWithStatus(rawQuery, status)
}

// FindTopParallelWithPredicate is FindTopWithPredicate with parallel term
// processing.
func (e *Engine) FindTopParallelWithPredicate(rawQuery string, predicate services.Predicate) ([]model.Document, error) {
	return e.search.FindTopParallelWithPredicate(rawQuery, predicate)
}

// Match reports which include terms of rawQuery occur in document id.
func (e *Engine) Match(rawQuery string, id int32) ([]string, model.Status, error) {
	return e.search.Match(rawQuery, id)
}

// DocumentCount returns the number of live documents.
func (e *Engine) DocumentCount() int {
	return e.store.Count()
}

// WordFrequencies returns the read-only term→frequency view for id.
func (e *Engine) WordFrequencies(id int32) (map[string]float64, error) {
	return e.indexing.WordFrequencies(id)
}

// IDs returns the live document ids in ascending order.
func (e *Engine) IDs() []int32 {
	return e.store.IDs()
}

// DocumentID returns the id at the given position of the ascending id
// sequence.
func (e *Engine) DocumentID(index int) (int32, error) {
	return e.store.DocumentID(index)
}

// WordCount returns the number of distinct words ever interned.
func (e *Engine) WordCount() int {
	return e.words.Size()
}

var _ services.Index = (*Engine)(nil)
