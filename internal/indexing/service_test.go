package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/model"
	"github.com/dabramov/search-server/store"
)

type fixture struct {
	inverted *index.InvertedIndex
	forward  *index.ForwardIndex
	store    *store.DocumentStore
	service  *Service
}

func newFixture(t *testing.T, stopText string) *fixture {
	t.Helper()
	stopWords, err := index.StopWordSetFromText(stopText)
	require.NoError(t, err)

	f := &fixture{
		inverted: index.NewInvertedIndex(),
		forward:  index.NewForwardIndex(),
		store:    store.NewDocumentStore(),
	}
	f.service, err = NewService(f.inverted, f.forward, f.store, index.NewWordStore(), stopWords)
	require.NoError(t, err)
	return f
}

// checkSynchronized asserts that the two index directions agree entry for
// entry and that every indexed id is registered in the store.
func (f *fixture) checkSynchronized(t *testing.T) {
	t.Helper()
	for id, terms := range f.forward.Terms {
		assert.True(t, f.store.Has(id))
		for w, tf := range terms {
			postings, ok := f.inverted.PostingsFor(w)
			require.True(t, ok, "word %q missing from inverted index", w)
			assert.Equal(t, tf, postings[id])
		}
	}
	for w, postings := range f.inverted.Postings {
		for id, tf := range postings {
			terms, ok := f.forward.TermsFor(id)
			require.True(t, ok, "document %d missing from forward index", id)
			assert.Equal(t, tf, terms[w])
		}
	}
	for _, id := range f.store.IDs() {
		assert.True(t, f.forward.Has(id))
	}
}

func TestAddKeepsDirectionsSynchronized(t *testing.T) {
	f := newFixture(t, "in the")
	require.NoError(t, f.service.Add(1, "cat in the city", model.StatusActual, []int32{1}))
	require.NoError(t, f.service.Add(2, "cat cat dog", model.StatusBanned, []int32{2}))
	f.checkSynchronized(t)

	// Repeated words accumulate by summation of 1/total.
	terms, ok := f.forward.TermsFor(2)
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, terms["cat"], 1e-9)
	assert.InDelta(t, 1.0/3.0, terms["dog"], 1e-9)
}

func TestRemoveKeepsDirectionsSynchronized(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.service.Add(1, "cat city", model.StatusActual, nil))
	require.NoError(t, f.service.Add(2, "cat town", model.StatusActual, nil))

	require.NoError(t, f.service.Remove(1))
	f.checkSynchronized(t)

	postings, ok := f.inverted.PostingsFor("cat")
	require.True(t, ok)
	assert.NotContains(t, postings, int32(1))
	assert.Contains(t, postings, int32(2))

	// An emptied posting map may legally remain behind.
	if city, ok := f.inverted.PostingsFor("city"); ok {
		assert.Empty(t, city)
	}
}

func TestFailedAddLeavesNoTrace(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.service.Add(1, "cat", model.StatusActual, nil))

	require.Error(t, f.service.Add(1, "sneaky words", model.StatusActual, nil))
	require.Error(t, f.service.Add(-2, "more words", model.StatusActual, nil))
	require.Error(t, f.service.Add(3, "bad\x01word", model.StatusActual, nil))

	assert.Equal(t, 1, f.store.Count())
	for _, w := range []string{"sneaky", "words", "more", "bad\x01word"} {
		_, ok := f.inverted.PostingsFor(w)
		assert.False(t, ok, "word %q leaked into the index", w)
	}
	f.checkSynchronized(t)
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int32
		expected int32
	}{
		{"empty", nil, 0},
		{"single", []int32{7}, 7},
		{"exact mean", []int32{1, 2, 3}, 2},
		{"truncates toward zero", []int32{8, -3}, 2},
		{"negative mean", []int32{5, -12, 2, 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageRating(tt.ratings))
		})
	}
}

func TestWordFrequenciesUnknownID(t *testing.T) {
	f := newFixture(t, "")
	_, err := f.service.WordFrequencies(42)
	assert.Error(t, err)
}
