package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabramov/search-server/internal/errors"
)

func TestStopWordSetFromText(t *testing.T) {
	set, err := StopWordSetFromText("in the of")
	require.NoError(t, err)
	assert.True(t, set.Has("in"))
	assert.True(t, set.Has("the"))
	assert.True(t, set.Has("of"))
	assert.False(t, set.Has("cat"))
	assert.Len(t, set, 3)
}

func TestNewStopWordSetReportsEveryInvalidWord(t *testing.T) {
	_, err := NewStopWordSet([]string{"in", "bad\x01", "the", "worse\x02"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDocChar)
	assert.Contains(t, err.Error(), "bad")
	assert.Contains(t, err.Error(), "worse")
}

func TestExtend(t *testing.T) {
	set, err := StopWordSetFromText("in")
	require.NoError(t, err)

	require.NoError(t, set.Extend("the of"))
	assert.True(t, set.Has("the"))
	assert.True(t, set.Has("of"))
}

func TestExtendInvalidLeavesSetUnchanged(t *testing.T) {
	set, err := StopWordSetFromText("in")
	require.NoError(t, err)

	err = set.Extend("the bad\x03word")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDocChar)
	assert.False(t, set.Has("the"))
	assert.Len(t, set, 1)
}

func TestWordStoreInterning(t *testing.T) {
	ws := NewWordStore()
	first := ws.Intern("cat")
	second := ws.Intern("cat")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, ws.Size())
	assert.True(t, ws.Contains("cat"))
	assert.False(t, ws.Contains("dog"))

	ws.Intern("dog")
	assert.Equal(t, 2, ws.Size())
}
