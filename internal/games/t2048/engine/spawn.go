package engine

import "fmt"

// SpawnValue is the value of every newly placed tile.
const SpawnValue = 2

// RNG is the randomness source for spawning and hazard placement.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Spawner places new tiles and hazards on a board.
type Spawner struct {
	rng RNG
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RNG) *Spawner {
	return &Spawner{rng: rng}
}

// SpawnRandom places a SpawnValue tile on a uniformly chosen empty,
// non-hazard cell. ok is false when no such cell exists.
func (s *Spawner) SpawnRandom(b *Board) (p Position, ok bool) {
	empty := b.EmptyPositions()
	if len(empty) == 0 {
		return Position{}, false
	}
	p = empty[s.rng.Intn(len(empty))]
	b.SetValue(p, SpawnValue)
	return p, true
}

// SpawnAt places a SpawnValue tile at p. The caller guarantees p is empty.
func (s *Spawner) SpawnAt(b *Board, p Position) {
	b.SetValue(p, SpawnValue)
}

// PlaceHazard turns a random cell of row into a hazard. The column is drawn
// uniformly until it hits one that holds no hazard in any row and no tile.
func (s *Spawner) PlaceHazard(b *Board, row int) (Position, error) {
	if row < 0 || row >= b.Size() {
		return Position{}, fmt.Errorf("%w: hazard row %d on %dx%d board", ErrInvalidPosition, row, b.Size(), b.Size())
	}

	free := func(col int) bool {
		return !b.hazardInColumn(col) && b.IsEmpty(P(row, col))
	}

	available := false
	for col := range b.Size() {
		if free(col) {
			available = true
			break
		}
	}
	if !available {
		return Position{}, fmt.Errorf("%w: row %d", ErrNoHazardColumn, row)
	}

	for {
		col := s.rng.Intn(b.Size())
		if free(col) {
			p := P(row, col)
			b.markHazard(p)
			return p, nil
		}
	}
}
