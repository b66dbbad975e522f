package search

import (
	"golang.org/x/sync/errgroup"

	"github.com/dabramov/search-server/config"
	"github.com/dabramov/search-server/internal/concurrent"
	"github.com/dabramov/search-server/internal/query"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
)

// accumulatorShards is the shard count of the parallel scorer's concurrent
// accumulator.
const accumulatorShards = 7

// FindTopParallel is FindTop with parallel term processing.
func (s *Service) FindTopParallel(rawQuery string) ([]model.Document, error) {
	return s.FindTopParallelWithPredicate(rawQuery, services.StatusPredicate(model.StatusActual))
}

// FindTopParallelWithStatus is FindTopWithStatus with parallel term
// processing.
func (s *Service) FindTopParallelWithStatus(rawQuery string, status model.Status) ([]model.Document, error) {
	return s.FindTopParallelWithPredicate(rawQuery, services.StatusPredicate(status))
}

// FindTopParallelWithPredicate distributes include terms across goroutines
// that accumulate into a sharded concurrent map, merges the shards into an
// ordered list, applies exclude terms, and ranks exactly like the
// sequential scorer. The output is identical to FindTopWithPredicate for
// the same inputs: each (document, term) contribution is added exactly once
// and shard locks serialize same-document additions.
func (s *Service) FindTopParallelWithPredicate(rawQuery string, predicate services.Predicate) ([]model.Document, error) {
	q, err := query.ParseParallel(rawQuery, s.stopWords)
	if err != nil {
		return nil, err
	}

	accum := concurrent.NewMap(accumulatorShards)
	g := new(errgroup.Group)
	for w := range q.Plus {
		w := w
		g.Go(func() error {
			postings, ok := s.inverted.PostingsFor(w)
			if !ok || len(postings) == 0 {
				return nil
			}
			idf := s.inverseDocumentFrequency(w)
			for id, tf := range postings {
				data, ok := s.store.Get(id)
				if !ok || !predicate(id, data.Status, data.Rating) {
					continue
				}
				slot := accum.Get(id)
				*slot.Value += tf * idf
				slot.Release()
			}
			return nil
		})
	}
	_ = g.Wait()

	merged := accum.BuildOrdinaryMap()
	for w := range q.Minus {
		postings, ok := s.inverted.PostingsFor(w)
		if !ok {
			continue
		}
		for id := range postings {
			merged.Remove(id)
		}
	}

	docs := make([]model.Document, 0, merged.Len())
	for el := merged.Front(); el != nil; el = el.Next() {
		id := el.Key().(int32)
		data, _ := s.store.Get(id)
		docs = append(docs, model.Document{ID: id, Relevance: el.Value.(float64), Rating: data.Rating})
	}
	sortDocuments(docs)
	if len(docs) > config.MaxResultDocumentCount {
		docs = docs[:config.MaxResultDocumentCount]
	}
	return docs, nil
}
