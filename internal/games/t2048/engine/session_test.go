package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// othersEmpty asserts every cell except keep is empty in snap.
func othersEmpty(t *testing.T, snap Snapshot, keep ...Position) {
	t.Helper()
	skip := make(map[Position]bool)
	for _, p := range keep {
		skip[p] = true
	}
	for r, row := range snap.Values {
		for c, v := range row {
			if !skip[P(r, c)] {
				assert.Zero(t, v, "cell %v should be empty", P(r, c))
			}
		}
	}
}

func TestShiftMergeScenario(t *testing.T) {
	s := loaded(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := s.Shift(Left)

	require.True(t, res.Changed)
	assert.False(t, res.Lost)
	assert.Equal(t, 4, res.ScoreDelta)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 4, res.Board.Values[0][0])
	require.NotNil(t, res.Spawn)
	assert.Equal(t, SpawnValue, res.Board.Values[res.Spawn.Position.Row][res.Spawn.Position.Col])
	othersEmpty(t, res.Board, P(0, 0), res.Spawn.Position)

	require.Len(t, res.Outcomes, 1)
	out := res.Outcomes[0]
	assert.Equal(t, KindMerge, out.Kind)
	assert.Equal(t, P(0, 1), out.From)
	assert.Equal(t, P(0, 0), out.To)
	assert.Equal(t, 2, out.Value)
	assert.Equal(t, 4, out.NewValue)
	checkInvariants(t, s)
}

func TestShiftHazardScenario(t *testing.T) {
	values := make([][]int, 5)
	for i := range values {
		values[i] = make([]int, 5)
	}
	values[0][3] = 4
	s := loaded(t, values, P(2, 3))

	res := s.Shift(Down)

	require.True(t, res.Changed, "annihilation counts as a change")
	assert.Equal(t, -4, res.ScoreDelta)
	assert.Equal(t, -4, s.Score())
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, KindAnnihilate, res.Outcomes[0].Kind)
	assert.Equal(t, P(2, 3), res.Outcomes[0].To)
	assert.Zero(t, res.Outcomes[0].NewValue)

	// The annihilated tile is gone; only the replacement spawn remains.
	require.NotNil(t, res.Spawn)
	othersEmpty(t, res.Board, res.Spawn.Position)
	assert.Equal(t, []Position{P(2, 3)}, res.Board.Hazards)
	assert.Equal(t, 1, s.Stats().Annihilations)
	ledger := s.Ledger()
	assert.Equal(t, 4, ledger.Losses())
	checkInvariants(t, s)
}

func TestShiftFullBoardLoses(t *testing.T) {
	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			s := loaded(t, [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			})
			before := s.Snapshot()

			res := s.Shift(dir)

			assert.False(t, res.Changed)
			assert.True(t, res.Lost)
			assert.Nil(t, res.Spawn)
			assert.Empty(t, res.Outcomes)
			assert.Equal(t, before, s.Snapshot())
			assert.False(t, s.CanMove())
		})
	}
}

func TestShiftBlockedAxisOnFullBoardKeepsPlaying(t *testing.T) {
	// Columns hold equal pairs, rows do not.
	s := loaded(t, [][]int{
		{2, 4, 8},
		{2, 4, 8},
		{16, 32, 64},
	})

	res := s.Shift(Left)

	assert.False(t, res.Changed)
	assert.False(t, res.Lost, "a vertical shift would still merge")
	assert.False(t, s.Lost())
	assert.True(t, s.CanMove())

	res = s.Shift(Up)
	assert.True(t, res.Changed)
	assert.False(t, res.Lost)
	assert.Equal(t, 4+8+16, res.ScoreDelta)
	assert.Equal(t, []int{4, 8, 16}, res.Board.Values[0])
	assert.Equal(t, []int{16, 32, 64}, res.Board.Values[1])
	checkInvariants(t, s)
}

func TestShiftBlockedTowardHoleOnFullBoardKeepsPlaying(t *testing.T) {
	// No equal neighbors, but the tile above the hole can fall in.
	s := loaded(t, [][]int{
		{2, 4, 2},
		{0, 4, 2},
		{4, 2, 4},
	}, P(1, 0))

	res := s.Shift(Right)

	assert.False(t, res.Changed)
	assert.False(t, res.Lost)
	assert.True(t, s.CanMove())
}

func TestShiftAfterLossIsInert(t *testing.T) {
	s := loaded(t, [][]int{
		{2, 4, 2},
		{4, 2, 4},
		{2, 4, 2},
	})
	require.True(t, s.Shift(Up).Lost)

	res := s.Shift(Down)
	assert.True(t, res.Lost)
	assert.False(t, res.Changed)
	assert.Equal(t, 1, s.Stats().FailedShifts)

	require.NoError(t, s.Reset())
	assert.False(t, s.Lost())
	assert.Zero(t, s.Score())
}

func TestShiftBlockedIsIdempotent(t *testing.T) {
	s := loaded(t, [][]int{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{16, 2, 4, 0},
	})
	before := s.Snapshot()

	for range 5 {
		res := s.Shift(Left)
		assert.False(t, res.Changed)
		assert.False(t, res.Lost)
		assert.Nil(t, res.Spawn)
		assert.Equal(t, before, s.Snapshot())
	}
	assert.Equal(t, 5, s.Stats().FailedShifts)
	assert.Zero(t, s.Stats().Moves)
}

func TestShiftSingleTileSlidesToBoundary(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{Up, P(0, 2)},
		{Down, P(4, 2)},
		{Left, P(2, 0)},
		{Right, P(2, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			values := make([][]int, 5)
			for i := range values {
				values[i] = make([]int, 5)
			}
			values[2][2] = 8
			s := loaded(t, values)

			res := s.Shift(tt.dir)

			require.Len(t, res.Outcomes, 1)
			assert.Equal(t, KindMove, res.Outcomes[0].Kind)
			assert.Equal(t, tt.want, res.Outcomes[0].To)
			assert.Zero(t, res.ScoreDelta)
		})
	}
}

func TestShiftMergesOncePerTile(t *testing.T) {
	tests := []struct {
		name  string
		row   []int
		want  []int
		score int
	}{
		{"pair then four", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4},
		{"four equal", []int{4, 4, 4, 4}, []int{8, 8, 0, 0}, 16},
		{"three equal", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"gap merge", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"no merge", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loaded(t, [][]int{
				tt.row,
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			})

			res := s.Shift(Left)

			got := res.Board.Values[0]
			if res.Spawn != nil && res.Spawn.Position.Row == 0 {
				got = append([]int(nil), got...)
				got[res.Spawn.Position.Col] = 0
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.score, res.ScoreDelta)
			for _, out := range res.Outcomes {
				if out.Kind == KindMerge {
					assert.Equal(t, 2*out.Value, res.Board.Values[out.To.Row][out.To.Col])
				}
			}
		})
	}
}

func TestShiftProcessesFarthestFirst(t *testing.T) {
	s := loaded(t, [][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := s.Shift(Down)

	assert.Equal(t, 4, res.Board.Values[3][0])
	assert.Equal(t, 2, res.Board.Values[2][0])
	assert.Equal(t, 4, res.ScoreDelta)
}

func TestShiftTracksTileIDs(t *testing.T) {
	s := loaded(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	})
	first, _ := s.TileAt(P(0, 0))
	second, _ := s.TileAt(P(0, 1))
	third, _ := s.TileAt(P(3, 3))

	res := s.Shift(Left)

	require.Len(t, res.Outcomes, 2)
	merge := res.Outcomes[0]
	assert.Equal(t, KindMerge, merge.Kind)
	assert.Equal(t, second, merge.Tile)
	assert.Equal(t, first, merge.Absorbed)

	move := res.Outcomes[1]
	assert.Equal(t, KindMove, move.Kind)
	assert.Equal(t, third, move.Tile)

	id, ok := s.TileAt(P(0, 0))
	require.True(t, ok)
	assert.Equal(t, first, id)
	id, ok = s.TileAt(P(3, 0))
	require.True(t, ok)
	assert.Equal(t, third, id)

	require.NotNil(t, res.Spawn)
	assert.NotContains(t, []TileID{first, second, third}, res.Spawn.Tile)
	checkInvariants(t, s)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s, err := NewSession(Rules{Size: 5, HazardRows: []int{1, 3}, RandomTiles: 2}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		moves := rand.New(rand.NewSource(seed * 31))

		for range 300 {
			res := s.Shift(Directions[moves.Intn(4)])

			delta := 0
			for _, out := range res.Outcomes {
				switch out.Kind {
				case KindMerge:
					delta += out.NewValue
					assert.Equal(t, 2*out.Value, res.Board.Values[out.To.Row][out.To.Col])
				case KindAnnihilate:
					delta -= out.Value
					assert.True(t, s.board.IsHazard(out.To))
					for _, p := range s.board.Occupied() {
						id, _ := s.TileAt(p)
						assert.NotEqual(t, out.Tile, id, "annihilated tile still on board")
					}
				}
			}
			assert.Equal(t, delta, res.ScoreDelta)
			assert.Equal(t, s.Score(), res.Score)
			checkInvariants(t, s)

			if res.Lost {
				break
			}
		}
	}
}

func TestSameSeedSameGame(t *testing.T) {
	rules := Rules{Size: 5, HazardRows: []int{2}, RandomTiles: 2}
	a, err := NewSession(rules, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := NewSession(rules, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	require.Equal(t, a.Snapshot(), b.Snapshot())
	for i := range 50 {
		dir := Directions[i%4]
		assert.Equal(t, a.Shift(dir), b.Shift(dir))
	}
}

func TestHazardPlacementUsesDistinctColumns(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s, err := NewSession(Rules{Size: 5, HazardRows: []int{0, 1, 2, 3, 4}}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		hazards := s.Snapshot().Hazards
		require.Len(t, hazards, 5)
		cols := make(map[int]bool)
		rows := make(map[int]bool)
		for _, h := range hazards {
			assert.False(t, cols[h.Col], "column %d used twice", h.Col)
			cols[h.Col] = true
			rows[h.Row] = true
		}
		assert.Len(t, rows, 5)
	}
}

func TestHazardAvoidsStartTiles(t *testing.T) {
	s, err := NewSession(Rules{
		Size:       3,
		HazardRows: []int{0},
		StartTiles: []Position{P(0, 0), P(0, 1)},
	}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, []Position{P(0, 2)}, s.Snapshot().Hazards)
	checkInvariants(t, s)
}

func TestNewSessionNoHazardColumn(t *testing.T) {
	_, err := NewSession(Rules{
		Size:       3,
		HazardRows: []int{0},
		StartTiles: []Position{P(0, 0), P(0, 1), P(0, 2)},
	}, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, ErrNoHazardColumn)
}

func TestNewSessionStartTiles(t *testing.T) {
	s, err := NewSession(Rules{Size: 4, StartTiles: []Position{P(1, 0), P(2, 3)}}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, SpawnValue, snap.Values[1][0])
	assert.Equal(t, SpawnValue, snap.Values[2][3])
	othersEmpty(t, snap, P(1, 0), P(2, 3))
	assert.Zero(t, snap.Score)
}

func TestLoadRejectsBadBoards(t *testing.T) {
	s, err := NewSession(Rules{Size: 3}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	tests := []struct {
		name    string
		values  [][]int
		hazards []Position
	}{
		{"wrong row count", [][]int{{0, 0, 0}}, nil},
		{"short row", [][]int{{0, 0, 0}, {0, 0}, {0, 0, 0}}, nil},
		{"not a power of two", [][]int{{3, 0, 0}, {0, 0, 0}, {0, 0, 0}}, nil},
		{"tile on hazard", [][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}, []Position{P(0, 0)}},
		{"two hazards in a column", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, []Position{P(0, 1), P(2, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.Load(tt.values, tt.hazards), ErrInvalidRules)
		})
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		ok    bool
	}{
		{"default", DefaultRules(), true},
		{"too small", Rules{Size: 2}, false},
		{"too large", Rules{Size: 9}, false},
		{"hazard row out of range", Rules{Size: 4, HazardRows: []int{4}}, false},
		{"duplicate hazard row", Rules{Size: 4, HazardRows: []int{1, 1}}, false},
		{"start tile out of range", Rules{Size: 3, StartTiles: []Position{P(3, 0)}}, false},
		{"duplicate start tile", Rules{Size: 3, StartTiles: []Position{P(0, 0), P(0, 0)}}, false},
		{"too many tiles", Rules{Size: 3, HazardRows: []int{0}, RandomTiles: 9}, false},
		{"black hole board", Rules{Size: 5, HazardRows: []int{2}, RandomTiles: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRules)
			}
		})
	}
}
