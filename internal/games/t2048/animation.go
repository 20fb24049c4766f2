package t2048

import (
	"github.com/vovakirdan/plus2048/internal/config"
	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
	PhaseShake
)

// TileAnimation is one tile gliding from its old cell to its new one.
// Annihilated tiles glide into the black hole and vanish.
type TileAnimation struct {
	Kind     engine.OutcomeKind
	Value    int // value shown while sliding
	From     engine.Position
	To       engine.Position
	Progress float64 // 0.0 → 1.0
}

// animator plays back the outcome of the last shift. The engine state is
// already final when it starts; the animator only decides what to draw.
type animator struct {
	timing config.AnimationConfig

	phase AnimationPhase
	ticks int
	tiles []TileAnimation

	// absorbed holds merge targets, drawn in place during the slide.
	absorbed []TileAnimation
	// hidden marks final cells that sliding tiles have not reached yet.
	hidden map[engine.Position]bool
	merged []engine.Position
	spawn  *engine.Spawn
}

// start begins the animation for res. A changed board slides, then pops
// the spawned tile. A failed shift shakes the board.
func (a *animator) start(res engine.ShiftResult) {
	a.stop()

	if !res.Changed {
		if !res.Lost {
			a.begin(PhaseShake)
		}
		return
	}

	a.hidden = make(map[engine.Position]bool)
	for _, out := range res.Outcomes {
		a.tiles = append(a.tiles, TileAnimation{
			Kind:  out.Kind,
			Value: out.Value,
			From:  out.From,
			To:    out.To,
		})
		if out.Kind == engine.KindAnnihilate {
			continue
		}
		a.hidden[out.To] = true
		if out.Kind == engine.KindMerge {
			a.merged = append(a.merged, out.To)
			a.absorbed = append(a.absorbed, TileAnimation{Value: out.Value, From: out.To, To: out.To})
		}
	}
	a.spawn = res.Spawn
	if a.spawn != nil {
		a.hidden[a.spawn.Position] = true
	}
	a.begin(PhaseSlide)
}

func (a *animator) begin(phase AnimationPhase) {
	a.phase = phase
	a.ticks = 0
	if a.duration() <= 0 {
		a.finishPhase()
	}
}

// stop drops any animation in progress.
func (a *animator) stop() {
	a.phase = PhaseNone
	a.ticks = 0
	a.tiles = nil
	a.absorbed = nil
	a.hidden = nil
	a.merged = nil
	a.spawn = nil
}

// active reports whether an animation is running.
func (a *animator) active() bool {
	return a.phase != PhaseNone
}

func (a *animator) duration() int {
	switch a.phase {
	case PhaseSlide:
		return a.timing.SlideTicks
	case PhasePop:
		return a.timing.PopTicks
	case PhaseShake:
		return a.timing.ShakeTicks
	default:
		return 0
	}
}

// step advances the animation by one tick.
// Returns true if animation is still in progress.
func (a *animator) step() bool {
	if !a.active() {
		return false
	}

	a.ticks++
	duration := a.duration()
	progress := min(float64(a.ticks)/float64(duration), 1.0)
	for i := range a.tiles {
		a.tiles[i].Progress = progress
	}

	if a.ticks >= duration {
		a.finishPhase()
		return a.active()
	}
	return true
}

// finishPhase moves from slide to pop, and from pop or shake to idle.
func (a *animator) finishPhase() {
	if a.phase == PhaseSlide {
		a.tiles = nil
		a.absorbed = nil
		a.hidden = nil
		if a.spawn != nil || len(a.merged) > 0 {
			a.begin(PhasePop)
			return
		}
	}
	a.stop()
}

// shakeOffset returns the horizontal board offset during a shake.
func (a *animator) shakeOffset() int {
	if a.phase != PhaseShake {
		return 0
	}
	switch (a.ticks / 2) % 4 {
	case 1:
		return 1
	case 3:
		return -1
	default:
		return 0
	}
}

// popping reports whether p should be highlighted in the pop phase.
func (a *animator) popping(p engine.Position) bool {
	if a.phase != PhasePop {
		return false
	}
	if a.spawn != nil && a.spawn.Position == p {
		return true
	}
	for _, m := range a.merged {
		if m == p {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolatePosition calculates the current cell coordinates during the
// slide, as fractional row and column.
func (t *TileAnimation) interpolatePosition() (row, col float64) {
	p := easeOutQuad(t.Progress)
	row = float64(t.From.Row) + float64(t.To.Row-t.From.Row)*p
	col = float64(t.From.Col) + float64(t.To.Col-t.From.Col)*p
	return row, col
}
