// Package batch multiplexes a slice of queries across parallel searches.
package batch

import (
	"golang.org/x/sync/errgroup"

	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/services"
)

// ProcessQueries runs the default search for every query concurrently. The
// i-th result list corresponds to the i-th query.
func ProcessQueries(searcher services.Searcher, queries []string) ([][]model.Document, error) {
	results := make([][]model.Document, len(queries))
	g := new(errgroup.Group)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := searcher.FindTop(q)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with the per-query lists
// concatenated in query order.
func ProcessQueriesJoined(searcher services.Searcher, queries []string) ([]model.Document, error) {
	lists, err := ProcessQueries(searcher, queries)
	if err != nil {
		return nil, err
	}
	var joined []model.Document
	for _, docs := range lists {
		joined = append(joined, docs...)
	}
	return joined, nil
}
