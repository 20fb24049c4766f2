package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnRandomSkipsHazards(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(5)))
	for range 100 {
		b := NewBoard(3)
		b.markHazard(P(0, 0))
		b.markHazard(P(1, 1))

		p, ok := sp.SpawnRandom(b)
		require.True(t, ok)
		assert.False(t, b.IsHazard(p))
		v, _ := b.ValueAt(p)
		assert.Equal(t, SpawnValue, v)
	}
}

func TestSpawnRandomFullBoard(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(5)))
	b := NewBoard(3)
	b.markHazard(P(2, 2))
	for _, p := range b.EmptyPositions() {
		b.SetValue(p, 4)
	}

	_, ok := sp.SpawnRandom(b)
	assert.False(t, ok)
}

func TestSpawnRandomIsUniform(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(11)))
	counts := make(map[Position]int)
	for range 4000 {
		b := NewBoard(3)
		b.markHazard(P(1, 1))
		p, _ := sp.SpawnRandom(b)
		counts[p]++
	}
	require.Len(t, counts, 8)
	for p, n := range counts {
		assert.InDelta(t, 500, n, 150, "cell %v drawn %d times", p, n)
	}
}

func TestSpawnAt(t *testing.T) {
	b := NewBoard(4)
	NewSpawner(rand.New(rand.NewSource(1))).SpawnAt(b, P(3, 1))
	v, ok := b.ValueAt(P(3, 1))
	require.True(t, ok)
	assert.Equal(t, SpawnValue, v)
}

func TestPlaceHazardRowOutOfRange(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(1)))
	_, err := sp.PlaceHazard(NewBoard(4), 4)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestPlaceHazardNoColumnLeft(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(1)))
	b := NewBoard(3)
	for row := range 3 {
		_, err := sp.PlaceHazard(b, row)
		require.NoError(t, err)
	}
	_, err := sp.PlaceHazard(b, 0)
	assert.ErrorIs(t, err, ErrNoHazardColumn)
}
