package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabramov/search-server/internal/batch"
	"github.com/dabramov/search-server/internal/engine"
	"github.com/dabramov/search-server/model"
)

func newBatchFixture(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.New()
	require.NoError(t, eng.Add(1, "cat city", model.StatusActual, []int32{5}))
	require.NoError(t, eng.Add(2, "dog town", model.StatusActual, []int32{3}))
	require.NoError(t, eng.Add(3, "cat dog", model.StatusActual, []int32{1}))
	return eng
}

func TestProcessQueriesPreservesOrder(t *testing.T) {
	eng := newBatchFixture(t)

	queries := []string{"cat", "dog", "nothing", "city"}
	results, err := batch.ProcessQueries(eng, queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	assert.Len(t, results[0], 2) // cat: docs 1, 3
	assert.Len(t, results[1], 2) // dog: docs 2, 3
	assert.Empty(t, results[2])
	assert.Len(t, results[3], 1) // city: doc 1
}

func TestProcessQueriesJoined(t *testing.T) {
	eng := newBatchFixture(t)

	joined, err := batch.ProcessQueriesJoined(eng, []string{"city", "town"})
	require.NoError(t, err)
	require.Len(t, joined, 2)
	assert.Equal(t, int32(1), joined[0].ID)
	assert.Equal(t, int32(2), joined[1].ID)
}

func TestProcessQueriesPropagatesErrors(t *testing.T) {
	eng := newBatchFixture(t)

	_, err := batch.ProcessQueries(eng, []string{"cat", "--broken"})
	assert.Error(t, err)
}

func TestProcessQueriesEmptyInput(t *testing.T) {
	eng := newBatchFixture(t)

	results, err := batch.ProcessQueries(eng, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
