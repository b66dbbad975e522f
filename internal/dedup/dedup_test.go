package dedup_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabramov/search-server/internal/dedup"
	"github.com/dabramov/search-server/internal/engine"
	"github.com/dabramov/search-server/model"
)

func TestRemoveDuplicates(t *testing.T) {
	eng := engine.New()
	require.NoError(t, eng.Add(1, "a b", model.StatusActual, []int32{0}))
	require.NoError(t, eng.Add(2, "b a", model.StatusActual, []int32{0}))
	require.NoError(t, eng.Add(3, "a b c", model.StatusActual, []int32{0}))

	var sink bytes.Buffer
	require.NoError(t, dedup.RemoveDuplicates(eng, &sink))

	assert.Equal(t, []int32{1, 3}, eng.IDs())
	assert.Equal(t, "Found duplicate document id 2\n", sink.String())
}

func TestRemoveDuplicatesKeepsEarliestID(t *testing.T) {
	eng := engine.New()
	// Word sets are compared without frequencies, so repeated words do not
	// distinguish documents.
	require.NoError(t, eng.Add(10, "cat cat dog", model.StatusActual, nil))
	require.NoError(t, eng.Add(5, "dog cat", model.StatusActual, nil))
	require.NoError(t, eng.Add(20, "cat dog dog dog", model.StatusActual, nil))

	var sink bytes.Buffer
	require.NoError(t, dedup.RemoveDuplicates(eng, &sink))

	assert.Equal(t, []int32{5}, eng.IDs())
	assert.Equal(t, "Found duplicate document id 10\nFound duplicate document id 20\n", sink.String())
}

func TestRemoveDuplicatesNoDuplicates(t *testing.T) {
	eng := engine.New()
	require.NoError(t, eng.Add(1, "a", model.StatusActual, nil))
	require.NoError(t, eng.Add(2, "b", model.StatusActual, nil))

	var sink bytes.Buffer
	require.NoError(t, dedup.RemoveDuplicates(eng, &sink))

	assert.Equal(t, []int32{1, 2}, eng.IDs())
	assert.Empty(t, sink.String())
}

func TestRemoveDuplicatesEmptyIndex(t *testing.T) {
	eng := engine.New()
	var sink bytes.Buffer
	require.NoError(t, dedup.RemoveDuplicates(eng, &sink))
	assert.Empty(t, eng.IDs())
}
