package t2048

import "github.com/vovakirdan/plus2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateSetupFailed  GameStateType = "setup_failed"
)

// Snapshot captures the game state for determinism tests and the sim command.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign", "endless" or "blackhole"
	Level   int    // 1-indexed campaign level; 0 outside the campaign
	Target  int    // 0 outside the campaign
	Score   int    // Total, including banked campaign levels
	Board   [][]int
	Hazards []engine.Position
	MaxTile int
	Moves   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.setupErr != nil:
		state = StateSetupFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Score: g.Score(),
		State: state,
	}
	if g.mode == ModeCampaign && len(g.levels) > 0 {
		snap.Level = g.level + 1
		snap.Target = g.levels[g.level].Target
	}
	if g.session != nil {
		board := g.session.Snapshot()
		snap.Board = board.Values
		snap.Hazards = board.Hazards
		snap.MaxTile = board.MaxTile
		snap.Moves = g.totals.Moves + g.session.Moves()
	}
	return snap
}
