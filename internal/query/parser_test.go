package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabramov/search-server/index"
	"github.com/dabramov/search-server/internal/errors"
)

func mustStopWords(t *testing.T, text string) index.StopWordSet {
	t.Helper()
	set, err := index.StopWordSetFromText(text)
	require.NoError(t, err)
	return set
}

func TestParse(t *testing.T) {
	stop := mustStopWords(t, "in the")

	tests := []struct {
		name          string
		raw           string
		expectedPlus  []string
		expectedMinus []string
	}{
		{"plus words", "cat city", []string{"cat", "city"}, nil},
		{"minus word", "cat -city", []string{"cat"}, []string{"city"}},
		{"duplicates collapse", "cat cat -city -city", []string{"cat"}, []string{"city"}},
		{"stop words dropped", "cat in the city", []string{"cat", "city"}, nil},
		{"stop word as minus dropped", "cat -in", []string{"cat"}, nil},
		{"empty query", "", nil, nil},
		{"case sensitive", "Cat cat", []string{"Cat", "cat"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.raw, stop)
			require.NoError(t, err)

			assert.Len(t, q.Plus, len(tt.expectedPlus))
			for _, w := range tt.expectedPlus {
				assert.Contains(t, q.Plus, w)
			}
			assert.Len(t, q.Minus, len(tt.expectedMinus))
			for _, w := range tt.expectedMinus {
				assert.Contains(t, q.Minus, w)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	stop := mustStopWords(t, "")

	tests := []struct {
		name     string
		raw      string
		expected error
	}{
		{"control character", "cat\x1f", errors.ErrInvalidQueryChar},
		{"bare dash", "cat -", errors.ErrInvalidMinus},
		{"double dash", "cat --city", errors.ErrInvalidMinus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw, stop)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseParallelMatchesSequential(t *testing.T) {
	stop := mustStopWords(t, "in the a")

	raws := []string{
		"",
		"cat",
		"cat -city dog -bird cat in the",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
	}
	// A wide query exercises the concurrent classification path.
	wide := ""
	for i := 0; i < 200; i++ {
		wide += fmt.Sprintf("word%d -minus%d ", i, i%7)
	}
	raws = append(raws, wide)

	for _, raw := range raws {
		sequential, seqErr := Parse(raw, stop)
		parallel, parErr := ParseParallel(raw, stop)
		require.Equal(t, seqErr, parErr)
		assert.Equal(t, sequential.Plus, parallel.Plus)
		assert.Equal(t, sequential.Minus, parallel.Minus)
	}
}

func TestParseParallelErrors(t *testing.T) {
	stop := mustStopWords(t, "")
	_, err := ParseParallel("good words then --bad", stop)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidMinus)
}
