package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// loaded builds a session of the given size holding exactly values and hazards.
func loaded(t *testing.T, values [][]int, hazards ...Position) *Session {
	t.Helper()
	s, err := NewSession(Rules{Size: len(values)}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.NoError(t, s.Load(values, hazards))
	return s
}

// requirePanicsWith asserts fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// checkInvariants verifies the board/index/value invariants of a session.
func checkInvariants(t *testing.T, s *Session) {
	t.Helper()
	b := s.board
	for r := range b.Size() {
		for c := range b.Size() {
			p := P(r, c)
			v, ok := b.ValueAt(p)
			_, tracked := s.TileAt(p)
			require.Equal(t, ok, tracked, "tile index out of sync at %v", p)
			if b.IsHazard(p) {
				require.False(t, ok, "hazard %v holds a value", p)
				continue
			}
			if ok {
				require.True(t, v >= SpawnValue && v&(v-1) == 0, "value %d at %v is not a power of two", v, p)
			}
		}
	}
	l := s.Ledger()
	require.Equal(t, l.Gains()-l.Losses(), l.Total())
}
