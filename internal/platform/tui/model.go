package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/plus2048/internal/core"
	"github.com/vovakirdan/plus2048/internal/input"
	"github.com/vovakirdan/plus2048/internal/registry"
	"github.com/vovakirdan/plus2048/internal/storage"
)

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	swipe      *input.Swipe
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over

	// Set when embedded in a session with a menu to return to.
	allowBack  bool
	backToMenu bool

	// ':' command prompt
	prompting bool
	prompt    string
	promptErr string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		swipe:      input.DefaultSwipe(),
		inputFrame: core.NewInputFrame(),
		sessionID:  uuid.NewString(),
	}
}

// WithSessionID tags saved games with the given session instead of a
// fresh one.
func (m Model) WithSessionID(id string) Model {
	if id != "" {
		m.sessionID = id
	}
	return m
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.promptErr = ""

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case ":", "/":
		m.prompting = true
		m.prompt = ""
		m.promptErr = ""
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveGame()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc when game over or paused)
	if m.allowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveGame()
		m.backToMenu = true
	}
	return m, nil
}

// handlePromptKey edits the command line. Enter submits it as a move.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.saveGame()
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.prompting = false
		m.prompt = ""
	case tea.KeyEnter:
		m.prompting = false
		dir, err := input.ParseCommand(m.prompt)
		if err != nil {
			m.promptErr = err.Error()
		} else {
			m.promptErr = ""
			m.inputFrame.Set(ActionFor(dir))
		}
		m.prompt = ""
	case tea.KeyBackspace:
		if r := []rune(m.prompt); len(r) > 0 {
			m.prompt = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.prompt += " "
	case tea.KeyRunes:
		m.prompt += string(msg.Runes)
	}
	return m, nil
}

// handleMouse turns left-button drags into swipes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.swipe.Press(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		if dir, ok := m.swipe.Release(msg.X, msg.Y); ok {
			m.inputFrame.Set(ActionFor(dir))
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The board does not depend on screen size, so only an untouched game
	// is restarted to pick up the new dimensions.
	if m.gameState.Moves == 0 && !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveGame()
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.swipe.Cancel()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveGame()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveGame records the finished or abandoned game once. Games without a
// single move are skipped; only positive scores enter the high scores.
func (m *Model) saveGame() {
	if m.scoreSaved || m.store == nil || m.gameState.Moves == 0 {
		return
	}
	m.scoreSaved = true

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	rec := storage.GameRecord{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		MaxTile:   m.gameState.MaxTile,
		Moves:     m.gameState.Moves,
	}
	if r, ok := m.game.(registry.Reporter); ok {
		rep := r.Report()
		rec.Score = rep.Score
		rec.MaxTile = rep.MaxTile
		rec.Moves = rep.Moves
		rec.Merges = rep.Merges
		rec.Annihilations = rep.Annihilations
		rec.Lost = rep.Lost
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(rec)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".plus2048", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bottom := m.screen.Height() - 1
	switch {
	case m.prompting:
		m.screen.DrawHLine(0, bottom, m.screen.Width(), ' ')
		m.screen.DrawTextColored(0, bottom, ":"+m.prompt+"_", core.ColorBrightYellow)
	case m.promptErr != "":
		m.screen.DrawHLine(0, bottom, m.screen.Width(), ' ')
		m.screen.DrawTextColored(0, bottom, m.promptErr, core.ColorRed)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press/release events for swipes
	)

	_, err := p.Run()
	return err
}
