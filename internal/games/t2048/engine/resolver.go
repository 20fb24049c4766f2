package engine

// OutcomeKind classifies what happened to a tile during a shift.
type OutcomeKind int

const (
	// KindMove slides a tile to an empty cell. A Move whose destination
	// equals its source is the "unchanged" outcome.
	KindMove OutcomeKind = iota
	// KindMerge combines a tile into an equal-valued neighbor.
	KindMerge
	// KindAnnihilate drops a tile into a black hole.
	KindAnnihilate
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindMerge:
		return "merge"
	case KindAnnihilate:
		return "annihilate"
	default:
		return "unknown"
	}
}

// Resolution is the fate of one tile computed against the current board.
// It does not mutate anything; the shift engine applies it.
type Resolution struct {
	Kind     OutcomeKind
	From     Position
	To       Position // hazard position for KindAnnihilate
	Value    int      // source value
	NewValue int      // value at To afterwards; 0 for KindAnnihilate
}

// Changed reports whether applying r alters the board.
func (r Resolution) Changed() bool {
	return r.Kind != KindMove || r.To != r.From
}

// Resolve computes where the tile at src ends up when shifted towards dir.
//
// A hazard anywhere ahead on the tile's line takes priority over sliding and
// merging. Otherwise the tile slides across empty cells and merges into the
// blocking tile when values match, unless that tile was itself produced by a
// merge during the current shift (merged holds those positions; nil is fine).
// An empty or hazard src resolves to an unchanged Move.
func Resolve(b *Board, src Position, dir Direction, merged map[Position]bool) Resolution {
	value, ok := b.ValueAt(src)
	if !ok {
		return Resolution{Kind: KindMove, From: src, To: src}
	}

	if hole, found := nearestHazard(b, src, dir); found {
		return Resolution{Kind: KindAnnihilate, From: src, To: hole, Value: value}
	}

	dest := src
	next := src.Step(dir)
	for b.InBounds(next) && b.IsEmpty(next) {
		dest = next
		next = next.Step(dir)
	}

	if b.InBounds(next) && !merged[next] {
		if blocker, occupied := b.ValueAt(next); occupied && blocker == value {
			return Resolution{Kind: KindMerge, From: src, To: next, Value: value, NewValue: value * 2}
		}
	}

	return Resolution{Kind: KindMove, From: src, To: dest, Value: value, NewValue: value}
}

// nearestHazard finds the closest hazard strictly ahead of src on its line.
func nearestHazard(b *Board, src Position, dir Direction) (Position, bool) {
	var (
		best  Position
		found bool
		dist  int
	)
	for _, h := range b.Hazards() {
		if !dir.ahead(src, h) {
			continue
		}
		d := dir.along(h) - dir.along(src)
		if d < 0 {
			d = -d
		}
		if !found || d < dist {
			best, dist, found = h, d, true
		}
	}
	return best, found
}
