// Package requests implements the rolling bookkeeping window over search
// requests. The window advances one step per request, not by wall clock.
package requests

import (
	"sync"

	"github.com/dabramov/search-server/config"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
)

// queryResult is one window entry.
type queryResult struct {
	sequenceNumber uint64
	resultCount    int
}

// RequestQueue runs searches through an index and tracks how many of the
// most recent requests produced no results. The window has its own lock so
// concurrent readers of the index can share one queue.
type RequestQueue struct {
	searcher services.Searcher

	mu        sync.Mutex
	window    []queryResult
	seq       uint64
	noResults int
}

// New creates a RequestQueue over the given searcher.
func New(searcher services.Searcher) *RequestQueue {
	return &RequestQueue{searcher: searcher}
}

// AddFindRequest runs the default search and records its result count.
func (q *RequestQueue) AddFindRequest(rawQuery string) ([]model.Document, error) {
	docs, err := q.searcher.FindTop(rawQuery)
	if err != nil {
		return nil, err
	}
	q.addResult(len(docs))
	return docs, nil
}

// AddFindRequestWithStatus runs a status-filtered search and records its
// result count.
func (q *RequestQueue) AddFindRequestWithStatus(rawQuery string, status model.Status) ([]model.Document, error) {
	docs, err := q.searcher.FindTopWithStatus(rawQuery, status)
	if err != nil {
		return nil, err
	}
	q.addResult(len(docs))
	return docs, nil
}

// AddFindRequestWithPredicate runs a predicate-filtered search and records
// its result count.
func (q *RequestQueue) AddFindRequestWithPredicate(rawQuery string, predicate services.Predicate) ([]model.Document, error) {
	docs, err := q.searcher.FindTopWithPredicate(rawQuery, predicate)
	if err != nil {
		return nil, err
	}
	q.addResult(len(docs))
	return docs, nil
}

// NoResultRequests returns how many requests inside the window produced
// zero results.
func (q *RequestQueue) NoResultRequests() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.noResults
}

func (q *RequestQueue) addResult(resultCount int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.window = append(q.window, queryResult{sequenceNumber: q.seq, resultCount: resultCount})
	if resultCount == 0 {
		q.noResults++
	}
	if len(q.window) > config.RequestWindow {
		if q.window[0].resultCount == 0 {
			q.noResults--
		}
		q.window = q.window[1:]
	}
}
