package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentString(t *testing.T) {
	doc := Document{ID: 2, Relevance: 0.402359, Rating: 5}
	assert.Equal(t, "{ document_id = 2, relevance = 0.402359, rating = 5 }", doc.String())

	doc = Document{ID: 1, Relevance: 0, Rating: -3}
	assert.Equal(t, "{ document_id = 1, relevance = 0, rating = -3 }", doc.String())
}

func TestParseStatus(t *testing.T) {
	for ordinal, expected := range []Status{StatusActual, StatusIrrelevant, StatusBanned, StatusRemoved} {
		status, err := ParseStatus(int32(ordinal))
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	_, err := ParseStatus(4)
	assert.Error(t, err)
	_, err = ParseStatus(-1)
	assert.Error(t, err)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ACTUAL", StatusActual.String())
	assert.Equal(t, "IRRELEVANT", StatusIrrelevant.String())
	assert.Equal(t, "BANNED", StatusBanned.String())
	assert.Equal(t, "REMOVED", StatusRemoved.String())
}
