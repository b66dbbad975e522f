package search

import (
	"sort"

	"github.com/dabramov/search-server/internal/errors"
	"github.com/dabramov/search-server/internal/query"
	"github.com/dabramov/search-server/model"
)

// Match parses rawQuery and reports which include terms occur in document
// id, together with the document's status. If any exclude term occurs in
// the document, the matched list is empty. The returned words are sorted so
// the result does not depend on set iteration order. The same
// implementation backs sequential and parallel callers.
func (s *Service) Match(rawQuery string, id int32) ([]string, model.Status, error) {
	data, ok := s.store.Get(id)
	if !ok {
		return nil, 0, &errors.UnknownIDError{ID: id}
	}
	q, err := query.Parse(rawQuery, s.stopWords)
	if err != nil {
		return nil, 0, err
	}

	terms, _ := s.forward.TermsFor(id)
	for w := range q.Minus {
		if _, hit := terms[w]; hit {
			return []string{}, data.Status, nil
		}
	}
	matched := make([]string, 0, len(q.Plus))
	for w := range q.Plus {
		if _, hit := terms[w]; hit {
			matched = append(matched, w)
		}
	}
	sort.Strings(matched)
	return matched, data.Status, nil
}
