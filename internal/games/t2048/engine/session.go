package engine

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// TileID identifies a tile for the lifetime of a session. Merges keep the
// destination tile's ID and retire the source's.
type TileID uint64

// Outcome describes one tile that changed during a shift.
type Outcome struct {
	Tile     TileID
	Absorbed TileID // tile merged into, for KindMerge
	Kind     OutcomeKind
	From     Position
	To       Position
	Value    int
	NewValue int
}

// Spawn describes the tile placed after a successful shift.
type Spawn struct {
	Tile     TileID
	Position Position
	Value    int
}

// Snapshot is a copy of the visible session state.
type Snapshot struct {
	Size    int
	Values  [][]int
	Hazards []Position
	Score   int
	MaxTile int
}

// ShiftResult is everything a presentation layer needs after one shift.
type ShiftResult struct {
	Direction  Direction
	Changed    bool
	Lost       bool
	Outcomes   []Outcome
	Spawn      *Spawn
	ScoreDelta int
	Score      int
	Board      Snapshot
}

// Stats counts tile events since the last reset.
type Stats struct {
	Moves         int // shifts that changed the board
	FailedShifts  int
	Merges        int
	Annihilations int
	Spawns        int
}

// Controller is the single control surface input adapters drive.
type Controller interface {
	Shift(dir Direction) ShiftResult
}

// Session owns one game: board, hazards, tile index and score.
type Session struct {
	rules   Rules
	board   *Board
	spawner *Spawner
	ledger  Ledger
	tiles   *intmap.Map[int, TileID] // cell index -> tile on that cell
	nextID  TileID
	stats   Stats
	lost    bool
}

var _ Controller = (*Session)(nil)

// NewSession validates rules and starts a fresh game.
func NewSession(rules Rules, rng RNG) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		rules:   rules,
		spawner: NewSpawner(rng),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards all state and sets the board up again from the rules:
// fixed start tiles first, then one hazard per hazard row, then random tiles.
func (s *Session) Reset() error {
	s.board = NewBoard(s.rules.Size)
	s.tiles = intmap.New[int, TileID](s.rules.Size * s.rules.Size)
	s.ledger.Reset()
	s.nextID = 0
	s.stats = Stats{}
	s.lost = false

	for _, p := range s.rules.StartTiles {
		s.spawner.SpawnAt(s.board, p)
		s.track(p)
	}
	for _, row := range s.rules.HazardRows {
		if _, err := s.spawner.PlaceHazard(s.board, row); err != nil {
			return fmt.Errorf("engine: reset: %w", err)
		}
	}
	for range s.rules.RandomTiles {
		if _, ok := s.spawnRandom(); !ok {
			break
		}
	}
	return nil
}

// Shift applies one whole-board shift towards dir.
//
// Tiles are resolved farthest-first along the direction of travel so no tile
// moves through a cell that has not been processed yet. A shift that changes
// anything spawns a new tile. A shift that changes nothing loses the game
// only when the board has no empty cell and no direction could change it.
// After a loss, Shift reports the loss and leaves
// the board alone until Reset.
func (s *Session) Shift(dir Direction) ShiftResult {
	if s.lost {
		return s.result(dir, nil, 0)
	}

	before := s.ledger.Total()
	merged := make(map[Position]bool)
	var outcomes []Outcome

	for _, src := range s.order(dir) {
		res := Resolve(s.board, src, dir, merged)
		if !res.Changed() {
			continue
		}
		outcomes = append(outcomes, s.apply(res, merged))
	}

	if len(outcomes) == 0 {
		s.stats.FailedShifts++
		if !s.board.HasEmpty() && !s.CanMove() {
			s.lost = true
		}
		return s.result(dir, nil, 0)
	}

	s.stats.Moves++
	result := s.result(dir, outcomes, s.ledger.Total()-before)
	if spawn, ok := s.spawnRandom(); ok {
		result.Spawn = &spawn
		result.Board = s.Snapshot()
	}
	return result
}

// apply writes one resolution to the board, tile index and ledger.
func (s *Session) apply(res Resolution, merged map[Position]bool) Outcome {
	from := s.board.index(res.From)
	id, _ := s.tiles.Get(from)
	out := Outcome{
		Tile:     id,
		Kind:     res.Kind,
		From:     res.From,
		To:       res.To,
		Value:    res.Value,
		NewValue: res.NewValue,
	}

	s.board.Clear(res.From)
	s.tiles.Del(from)

	switch res.Kind {
	case KindAnnihilate:
		s.ledger.Add(-res.Value)
		s.stats.Annihilations++
	case KindMerge:
		out.Absorbed, _ = s.tiles.Get(s.board.index(res.To))
		s.board.SetValue(res.To, res.NewValue)
		merged[res.To] = true
		s.ledger.Add(res.NewValue)
		s.stats.Merges++
	case KindMove:
		s.board.SetValue(res.To, res.NewValue)
		s.tiles.Put(s.board.index(res.To), id)
	}
	return out
}

// order returns occupied positions sorted farthest-first along dir.
// Ties on the travel axis keep row-major order.
func (s *Session) order(dir Direction) []Position {
	var occupied []Position
	for i := range s.rules.Size * s.rules.Size {
		if _, ok := s.tiles.Get(i); ok {
			occupied = append(occupied, s.board.position(i))
		}
	}
	slices.SortStableFunc(occupied, func(a, b Position) int {
		if dir.increasing() {
			return dir.along(b) - dir.along(a)
		}
		return dir.along(a) - dir.along(b)
	})
	return occupied
}

// spawnRandom places a random tile and registers it in the tile index.
func (s *Session) spawnRandom() (Spawn, bool) {
	p, ok := s.spawner.SpawnRandom(s.board)
	if !ok {
		return Spawn{}, false
	}
	id := s.track(p)
	s.stats.Spawns++
	return Spawn{Tile: id, Position: p, Value: SpawnValue}, true
}

// track assigns a fresh tile ID to the tile at p.
func (s *Session) track(p Position) TileID {
	s.nextID++
	s.tiles.Put(s.board.index(p), s.nextID)
	return s.nextID
}

func (s *Session) result(dir Direction, outcomes []Outcome, delta int) ShiftResult {
	return ShiftResult{
		Direction:  dir,
		Changed:    len(outcomes) > 0,
		Lost:       s.lost,
		Outcomes:   outcomes,
		ScoreDelta: delta,
		Score:      s.ledger.Total(),
		Board:      s.Snapshot(),
	}
}

// CanMove reports whether some direction would change the board.
func (s *Session) CanMove() bool {
	if s.board.HasEmpty() {
		return true
	}
	for _, dir := range Directions {
		for _, p := range s.board.Occupied() {
			if Resolve(s.board, p, dir, nil).Changed() {
				return true
			}
		}
	}
	return false
}

// Snapshot copies the current board and score.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Size:    s.board.Size(),
		Values:  s.board.Values(),
		Hazards: s.board.Hazards(),
		Score:   s.ledger.Total(),
		MaxTile: s.board.MaxValue(),
	}
}

// TileAt returns the ID of the tile at p.
func (s *Session) TileAt(p Position) (TileID, bool) {
	return s.tiles.Get(s.board.index(p))
}

// Board returns a copy of the board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.ledger.Total()
}

// Ledger returns a copy of the score ledger.
func (s *Session) Ledger() Ledger {
	return s.ledger
}

// Lost reports whether the game has been lost.
func (s *Session) Lost() bool {
	return s.lost
}

// Stats returns event counters since the last reset.
func (s *Session) Stats() Stats {
	return s.stats
}

// Load replaces the board with the given values and hazards, keeping the
// rules' size. Score and stats reset; every tile gets a fresh ID.
func (s *Session) Load(values [][]int, hazards []Position) error {
	size := s.rules.Size
	if len(values) != size {
		return fmt.Errorf("%w: %d rows for a %dx%d board", ErrInvalidRules, len(values), size, size)
	}

	board := NewBoard(size)
	for _, h := range hazards {
		if !board.InBounds(h) {
			return fmt.Errorf("%w: hazard %v", ErrInvalidPosition, h)
		}
		if board.hazardInColumn(h.Col) {
			return fmt.Errorf("%w: second hazard in column %d", ErrInvalidRules, h.Col)
		}
		board.markHazard(h)
	}
	for r, row := range values {
		if len(row) != size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidRules, r, len(row))
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			if v < SpawnValue || v&(v-1) != 0 {
				return fmt.Errorf("%w: value %d at %v is not a power of two", ErrInvalidRules, v, P(r, c))
			}
			if board.IsHazard(P(r, c)) {
				return fmt.Errorf("%w: tile on hazard %v", ErrInvalidRules, P(r, c))
			}
			board.SetValue(P(r, c), v)
		}
	}

	s.board = board
	s.tiles = intmap.New[int, TileID](size * size)
	s.ledger.Reset()
	s.nextID = 0
	s.stats = Stats{}
	s.lost = false
	for _, p := range board.Occupied() {
		s.track(p)
	}
	return nil
}

// Moves returns the number of shifts that changed the board.
func (s *Session) Moves() int {
	return s.stats.Moves
}
