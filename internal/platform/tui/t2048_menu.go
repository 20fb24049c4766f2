package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/plus2048/internal/config"
	"github.com/vovakirdan/plus2048/internal/core"
	"github.com/vovakirdan/plus2048/internal/games/t2048"
	"github.com/vovakirdan/plus2048/internal/registry"
)

// T2048Selection holds the user's choices from the setup screen.
type T2048Selection struct {
	Preset config.DifficultyPreset
	Level  int // 0 = start from beginning, otherwise a 1-based campaign level
}

// T2048SetupModel lets users pick a difficulty preset and, for the
// campaign, a starting level. The first row is the preset; level rows
// follow.
type T2048SetupModel struct {
	gameID    string
	campaign  bool
	cursor    int
	preset    int // index into config.Presets
	levels    []t2048.Level
	width     int
	height    int
	keyMapper *KeyMapper
	selection T2048Selection
	choosing  bool
	quitting  bool
	back      bool
}

// NewT2048SetupModel creates the setup screen for the given mode.
func NewT2048SetupModel(gameID string, width, height int) T2048SetupModel {
	m := T2048SetupModel{
		gameID:    gameID,
		campaign:  gameID == t2048.IDCampaign,
		preset:    presetIndex(config.DifficultyNormal),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	m.applyPreset()
	return m
}

func presetIndex(p config.DifficultyPreset) int {
	for i, q := range config.Presets {
		if q == p {
			return i
		}
	}
	return 0
}

// applyPreset reloads the campaign the chosen preset produces.
func (m *T2048SetupModel) applyPreset() {
	if m.campaign {
		m.levels = t2048.LevelsFor(config.Presets[m.preset])
	}
}

// rows is the number of selectable rows.
func (m T2048SetupModel) rows() int {
	return 1 + len(m.levels)
}

// Init initializes the model.
func (m T2048SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m T2048SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m T2048SetupModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.preset = (m.preset + len(config.Presets) - 1) % len(config.Presets)
		m.applyPreset()
	case MenuActionRight:
		m.preset = (m.preset + 1) % len(config.Presets)
		m.applyPreset()
	case MenuActionSelect:
		m.choosing = false
		m.selection = T2048Selection{Preset: config.Presets[m.preset]}
		if m.cursor > 0 {
			m.selection.Level = m.cursor
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the setup screen.
func (m T2048SetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styled(menuTheme.Title, strings.ToUpper(m.title()), m.width))
	b.WriteString("\n\n")

	cursor, style := "  ", menuTheme.Item
	if m.cursor == 0 {
		cursor, style = "> ", menuTheme.ItemActive
	}
	preset := fmt.Sprintf("%sDifficulty: < %s >", cursor, config.Presets[m.preset])
	b.WriteString(styled(style, preset, m.width))
	b.WriteString("\n")
	b.WriteString(styled(menuTheme.Description, presetHint(config.Presets[m.preset]), m.width))
	b.WriteString("\n\n")

	if m.campaign {
		b.WriteString(styled(menuTheme.Description, "Start from level:", m.width))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			cursor, style := "  ", menuTheme.Item
			if i+1 == m.cursor {
				cursor, style = "> ", menuTheme.ItemActive
			}
			if lvl.Hazards() > 0 && i+1 != m.cursor {
				style = menuTheme.Hazard
			}
			holes := ""
			if n := lvl.Hazards(); n > 0 {
				holes = fmt.Sprintf(", %d black holes", n)
			}
			line := fmt.Sprintf("%s%2d. %-16s %dx%d, target %d%s",
				cursor, lvl.ID, lvl.Name, lvl.Board.Size, lvl.Board.Size, lvl.Target, holes)
			b.WriteString(styled(style, line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styled(menuTheme.Controls, "Left/Right: Difficulty  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func presetHint(p config.DifficultyPreset) string {
	switch p {
	case config.DifficultyEasy:
		return "no black holes"
	case config.DifficultyHard:
		return "one more black hole where there are any"
	case config.DifficultyFixed:
		return "every level on the first board"
	default:
		return "boards as configured"
	}
}

func (m T2048SetupModel) title() string {
	switch m.gameID {
	case t2048.IDEndless:
		return "Endless"
	case t2048.IDBlackHole:
		return "Black Holes"
	default:
		return "Campaign"
	}
}

// Selected returns the selection, or nil if still choosing.
func (m T2048SetupModel) Selected() *T2048Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m T2048SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m T2048SetupModel) WantsBack() bool {
	return m.back
}

// RunT2048Setup runs the setup screen for gameID. A nil selection means
// the user backed out or quit; quit reports which.
func RunT2048Setup(gameID string, cfg core.RuntimeConfig) (sel *T2048Selection, quit bool, err error) {
	model := NewT2048SetupModel(gameID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(T2048SetupModel)
	if !ok {
		return nil, true, nil
	}
	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}

// setupTarget is implemented by games that take setup screen choices.
type setupTarget interface {
	SetStartLevel(level int)
	SetPreset(preset config.DifficultyPreset)
}

// ApplySelection hands the setup choices to a freshly created game.
// Games without setup options are left alone.
func ApplySelection(game registry.Game, sel *T2048Selection) {
	if sel == nil {
		return
	}
	if t, ok := game.(setupTarget); ok {
		t.SetPreset(sel.Preset)
		t.SetStartLevel(sel.Level)
	}
}
