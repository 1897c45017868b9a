package lipsum_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lipsum"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default vocabulary", func(t *testing.T) {
		t.Parallel()
		g, err := lipsum.New()
		require.NoError(t, err)
		assert.Contains(t, lipsum.Vocabulary(), g.Word())
	})

	t.Run("custom vocabulary", func(t *testing.T) {
		t.Parallel()
		g, err := lipsum.New(lipsum.WithVocabulary([]string{"alpha", ""}))
		require.NoError(t, err)
		out, err := g.Words(3)
		require.NoError(t, err)
		assert.Equal(t, "alpha alpha alpha", out)
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		t.Parallel()
		_, err := lipsum.New(lipsum.WithVocabulary(nil))
		assert.ErrorIs(t, err, lipsum.ErrEmptyVocabulary)

		_, err = lipsum.New(lipsum.WithVocabulary([]string{"", ""}))
		assert.ErrorIs(t, err, lipsum.ErrEmptyVocabulary)
	})

	t.Run("must new panics on error", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { lipsum.MustNew(lipsum.WithVocabulary([]string{})) })
	})
}

func TestVocabularyReturnsCopy(t *testing.T) {
	t.Parallel()

	words := lipsum.Vocabulary()
	require.NotEmpty(t, words)
	original := words[0]
	words[0] = "mutated"
	assert.Equal(t, original, lipsum.Vocabulary()[0])
}

func TestWithSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := lipsum.MustNew(lipsum.WithSeed(42))
	b := lipsum.MustNew(lipsum.WithSeed(42))
	c := lipsum.MustNew(lipsum.WithSeed(43))

	outA, err := a.Document(10, nil)
	require.NoError(t, err)
	outB, err := b.Document(10, nil)
	require.NoError(t, err)
	outC, err := c.Document(10, nil)
	require.NoError(t, err)

	assert.Equal(t, outA, outB)
	assert.NotEqual(t, outA, outC)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	t.Parallel()

	g := lipsum.MustNew()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				out, err := g.Paragraph(nil)
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(out, "\t"))
			}
		}()
	}
	wg.Wait()
}

func TestGeneratorRoll(t *testing.T) {
	t.Parallel()

	g := lipsum.MustNew(lipsum.WithSeed(1))
	v, err := g.Roll(lipsum.MustRange(2, 4))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 2)
	assert.LessOrEqual(t, v, 4)

	_, err = g.Roll(lipsum.Range{Min: 4, Max: 2})
	assert.ErrorIs(t, err, lipsum.ErrInvalidRange)

	assert.NotPanics(t, func() {
		_, err = g.Roll(lipsum.Range{Min: math.MinInt, Max: math.MaxInt})
	})
	assert.NoError(t, err)
}
