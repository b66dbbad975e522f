// Package search implements the ranked TF-IDF query pipeline over the index
// pair: the sequential scorer, its parallel variant, and per-document match.
package search

import (
	"math"
	"sort"

	"github.com/dabramov/search-server/config"
	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/internal/query"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
	"github.com/dabramov/search-server/store"
)

// Service executes queries against the index pair. It only reads index
// state; concurrent use is safe while no mutator runs.
type Service struct {
	inverted  *index.InvertedIndex
	forward   *index.ForwardIndex
	store     *store.DocumentStore
	stopWords index.StopWordSet
}

// NewService creates a search Service over the given state.
func NewService(inverted *index.InvertedIndex, forward *index.ForwardIndex, docStore *store.DocumentStore, stopWords index.StopWordSet) *Service {
	return &Service{
		inverted:  inverted,
		forward:   forward,
		store:     docStore,
		stopWords: stopWords,
	}
}

// FindTop ranks documents with status ACTUAL.
func (s *Service) FindTop(rawQuery string) ([]model.Document, error) {
	return s.FindTopWithPredicate(rawQuery, services.StatusPredicate(model.StatusActual))
}

// FindTopWithStatus ranks documents with the given status.
func (s *Service) FindTopWithStatus(rawQuery string, status model.Status) ([]model.Document, error) {
	return s.FindTopWithPredicate(rawQuery, services.StatusPredicate(status))
}

// FindTopWithPredicate parses rawQuery, accumulates tf·idf over the include
// terms for documents accepted by predicate, erases documents containing any
// exclude term, and returns the top results ordered by relevance.
func (s *Service) FindTopWithPredicate(rawQuery string, predicate services.Predicate) ([]model.Document, error) {
	q, err := query.Parse(rawQuery, s.stopWords)
	if err != nil {
		return nil, err
	}
	return s.rank(s.findAll(q, predicate)), nil
}

// findAll builds the per-document relevance accumulator for q.
func (s *Service) findAll(q query.Query, predicate services.Predicate) map[int32]float64 {
	accum := make(map[int32]float64)
	for w := range q.Plus {
		postings, ok := s.inverted.PostingsFor(w)
		if !ok || len(postings) == 0 {
			continue
		}
		idf := s.inverseDocumentFrequency(w)
		for id, tf := range postings {
			data, ok := s.store.Get(id)
			if ok && predicate(id, data.Status, data.Rating) {
				accum[id] += tf * idf
			}
		}
	}
	for w := range q.Minus {
		postings, ok := s.inverted.PostingsFor(w)
		if !ok {
			continue
		}
		for id := range postings {
			delete(accum, id)
		}
	}
	return accum
}

// inverseDocumentFrequency is ln(N / df) for a word known to have postings.
func (s *Service) inverseDocumentFrequency(w string) float64 {
	return math.Log(float64(s.store.Count()) / float64(s.inverted.DocumentFrequency(w)))
}

// rank materializes the accumulator in ascending id order, sorts by the
// relevance comparator, and truncates to the result cap.
func (s *Service) rank(accum map[int32]float64) []model.Document {
	ids := make([]int32, 0, len(accum))
	for id := range accum {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	docs := make([]model.Document, 0, len(ids))
	for _, id := range ids {
		data, _ := s.store.Get(id)
		docs = append(docs, model.Document{ID: id, Relevance: accum[id], Rating: data.Rating})
	}
	sortDocuments(docs)
	if len(docs) > config.MaxResultDocumentCount {
		docs = docs[:config.MaxResultDocumentCount]
	}
	return docs
}

// sortDocuments orders by descending relevance; relevances within the
// comparison epsilon tie-break by descending rating. The stable sort over
// the ascending-id input keeps full ties deterministic.
func sortDocuments(docs []model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) < config.ComparisonError {
			return docs[i].Rating > docs[j].Rating
		}
		return docs[i].Relevance > docs[j].Relevance
	})
}
