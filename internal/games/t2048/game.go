package t2048

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/plus2048/internal/config"
	"github.com/vovakirdan/plus2048/internal/core"
	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
	"github.com/vovakirdan/plus2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign  Mode = "campaign"
	ModeEndless   Mode = "endless"
	ModeBlackHole Mode = "blackhole"
)

// Registered mode IDs.
const (
	IDCampaign  = "2048"
	IDEndless   = "2048_endless"
	IDBlackHole = "2048_blackhole"
)

// Game runs one engine session per board and layers modes, levels and
// animation on top of it.
type Game struct {
	mode Mode
	cfg  config.T2048Config
	rng  *rand.Rand
	tick uint64

	startLevel int                     // 1-based, 0 = first level
	preset     config.DifficultyPreset // "" = package preset

	session *engine.Session
	levels  []Level
	level   int // current campaign level, 0-indexed
	banked  int // score from cleared campaign levels
	best    int // highest tile on cleared campaign boards
	totals  engine.Stats
	last    *engine.ShiftResult

	anim animator

	screenW int
	screenH int

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	setupErr        error
}

var _ engine.Controller = (*Game)(nil)

// Package-level settings from the CLI. SSH sessions share them, so access
// goes through settingsMu. Per-session choices live on the Game.
var (
	settingsMu       sync.Mutex
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom YAML config path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config as written.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = p
}

// currentConfig loads the config under the current path and preset,
// falling back to the built-in default when loading fails.
func currentConfig() config.T2048Config {
	return configWith("")
}

// configWith is currentConfig with preset in place of the package preset.
// An empty preset keeps the package one.
func configWith(preset config.DifficultyPreset) config.T2048Config {
	settingsMu.Lock()
	path := configPath
	if preset == "" {
		preset = difficultyPreset
	}
	settingsMu.Unlock()

	cfg, err := config.LoadT2048(path)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if preset != "" {
		config.ApplyT2048Preset(&cfg, preset)
	}
	return cfg
}

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a classic game with no target.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewBlackHole creates an endless game on the black-hole board.
func NewBlackHole() *Game {
	return &Game{mode: ModeBlackHole}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game { return New() })
	registry.Register(IDEndless, func() registry.Game { return NewEndless() })
	registry.Register(IDBlackHole, func() registry.Game { return NewBlackHole() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEndless:
		return IDEndless
	case ModeBlackHole:
		return IDBlackHole
	default:
		return IDCampaign
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "2048 (Endless)"
	case ModeBlackHole:
		return "2048 (Black Holes)"
	default:
		return "2048 Campaign"
	}
}

// SetStartLevel picks the campaign level (1-based) that Reset starts on.
// 0 or an out-of-range level starts on the first one. Other modes ignore it.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// StartLevel returns the level set with SetStartLevel.
func (g *Game) StartLevel() int {
	return g.startLevel
}

// SetPreset overrides the package difficulty preset for this game.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.preset = preset
}

// Reset initializes or restarts the game with the current config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWith(cfg, configWith(g.preset))
}

// ResetWith restarts the game with an explicit rules config.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.T2048Config) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.levels = levelsFrom(cfg)
	g.level = 0
	g.banked = 0
	g.best = 0
	g.totals = engine.Stats{}
	g.last = nil
	g.anim = animator{timing: cfg.Animation}
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign {
		if g.startLevel > 0 && g.startLevel <= len(g.levels) {
			g.level = g.startLevel - 1
		}
	}

	g.startBoard()
}

// board returns the board config for the current mode and level.
func (g *Game) board() config.BoardConfig {
	switch g.mode {
	case ModeEndless:
		return g.cfg.Endless
	case ModeBlackHole:
		return g.cfg.BlackHole
	default:
		return g.levels[g.level].Board
	}
}

// startBoard opens a fresh session for the current board.
func (g *Game) startBoard() {
	g.session, g.setupErr = engine.NewSession(g.board().Rules(), g.rng)
	g.anim.stop()
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board and HUD.
func (g *Game) checkScreenSize() {
	size := g.board().Size
	minW := size*cellWidth + 1 + 2
	minH := size*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.setupErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.anim.step()

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Animation.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	action, ok := in.Move()
	if !ok {
		return core.StepResult{State: g.State()}
	}
	res := g.Shift(directionFor(action))
	return core.StepResult{State: g.State(), Moved: res.Changed}
}

// Shift applies one shift to the current board, starts its animation and
// updates level and game-over state. It does nothing once the game is
// over, paused or between levels.
func (g *Game) Shift(dir engine.Direction) engine.ShiftResult {
	if g.session == nil || g.gameOver || g.won || g.levelCleared || g.paused {
		return engine.ShiftResult{Direction: dir}
	}

	// A new shift cuts the running animation short.
	g.anim.stop()

	res := g.session.Shift(dir)
	g.last = &res
	g.anim.start(res)

	switch {
	case res.Lost:
		g.gameOver = true
	case g.mode == ModeCampaign && res.Board.MaxTile >= g.levels[g.level].Target:
		g.levelCleared = true
		g.levelClearTicks = 0
	}
	return res
}

// advanceLevel moves to the next campaign level on a fresh board.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.level >= len(g.levels)-1 {
		g.won = true
		return
	}

	g.bankLevel()
	g.level++
	g.startBoard()
}

// bankLevel moves the finished board's score and stats into the totals.
func (g *Game) bankLevel() {
	g.banked += g.session.Score()
	g.best = max(g.best, g.session.Snapshot().MaxTile)
	st := g.session.Stats()
	g.totals.Moves += st.Moves
	g.totals.FailedShifts += st.FailedShifts
	g.totals.Merges += st.Merges
	g.totals.Annihilations += st.Annihilations
	g.totals.Spawns += st.Spawns
}

func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.Up
	case core.ActionDown:
		return engine.Down
	case core.ActionLeft:
		return engine.Left
	default:
		return engine.Right
	}
}

// Score returns the total score: banked campaign levels plus the board in
// play.
func (g *Game) Score() int {
	if g.session == nil {
		return g.banked
	}
	return g.banked + g.session.Score()
}

// Session exposes the engine session for the board in play.
func (g *Game) Session() *engine.Session {
	return g.session
}

// LastShift returns the most recent shift result, if any.
func (g *Game) LastShift() (engine.ShiftResult, bool) {
	if g.last == nil {
		return engine.ShiftResult{}, false
	}
	return *g.last, true
}

// Err returns the error that prevented the board from being set up.
func (g *Game) Err() error {
	return g.setupErr
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver || g.won || g.setupErr != nil,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
	if g.session != nil {
		st.MaxTile = g.session.Snapshot().MaxTile
		st.Moves = g.totals.Moves + g.session.Moves()
	}
	return st
}

// Report summarizes the game for storage.
func (g *Game) Report() core.GameReport {
	r := core.GameReport{
		Score:         g.Score(),
		MaxTile:       g.best,
		Moves:         g.totals.Moves,
		Merges:        g.totals.Merges,
		Annihilations: g.totals.Annihilations,
		Lost:          g.gameOver,
	}
	if g.session != nil {
		st := g.session.Stats()
		r.MaxTile = max(r.MaxTile, g.session.Snapshot().MaxTile)
		r.Moves += st.Moves
		r.Merges += st.Merges
		r.Annihilations += st.Annihilations
	}
	return r
}
