// Package services defines the interfaces and request/response types of the
// search server's public surface.
package services

import "github.com/dabramov/search-server/model"

// Predicate filters documents during scoring. It receives the document id,
// its lifecycle status, and its rating, and reports whether the document may
// appear in the results.
type Predicate func(id int32, status model.Status, rating int32) bool

// StatusPredicate returns a predicate accepting exactly one status.
func StatusPredicate(status model.Status) Predicate {
	return func(_ int32, s model.Status, _ int32) bool {
		return s == status
	}
}

// Indexer defines the mutating operations of the index. Mutators are not
// safe to run concurrently with any other operation.
type Indexer interface {
	Add(id int32, text string, status model.Status, ratings []int32) error
	Remove(id int32) error
	SetStopWords(text string) error
}

// Searcher defines the ranked query operations.
type Searcher interface {
	FindTop(rawQuery string) ([]model.Document, error)
	FindTopWithStatus(rawQuery string, status model.Status) ([]model.Document, error)
	FindTopWithPredicate(rawQuery string, predicate Predicate) ([]model.Document, error)
}

// Matcher answers per-document containment for a query.
type Matcher interface {
	Match(rawQuery string, id int32) ([]string, model.Status, error)
}

// Inspector exposes the read-only bookkeeping surface of the index.
type Inspector interface {
	DocumentCount() int
	WordFrequencies(id int32) (map[string]float64, error)
	IDs() []int32
	DocumentID(index int) (int32, error)
}

// Index is the full engine surface the API layer consumes.
type Index interface {
	Indexer
	Searcher
	Matcher
	Inspector
}

// SearchResult is the API response envelope for a single search.
type SearchResult struct {
	QueryID   string           `json:"query_id"`
	Documents []model.Document `json:"documents"`
}
