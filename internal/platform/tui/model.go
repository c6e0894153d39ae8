package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/morse-invader/internal/audio"
	"github.com/vovakirdan/morse-invader/internal/core"
	"github.com/vovakirdan/morse-invader/internal/registry"
	"github.com/vovakirdan/morse-invader/internal/storage"
)

// GameModel runs one game: it feeds key presses into the simulation, hands
// game events to the audio player and the store, and renders the screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     audio.Player
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	exitOnBack bool // standalone runs quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a new game model. store may be nil and player
// defaults to a silent one.
func NewGameModel(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if player == nil {
		player = audio.Nop{}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its playfield at render time, so a resize
		// only needs a new buffer.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)

	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMapper.Keys().Screenshot):
		m.saveScreenshot()
		return m, nil

	case action == core.ActionBack:
		// Only leave a game that is over or paused
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.finish()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionNewTarget && m.gameState.GameOver:
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// dispatch hands game events to the audio player and the store.
// Both are best-effort: the game continues regardless.
func (m *GameModel) dispatch(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventPlayMorse:
			m.player.Play(e.Text)
		case core.EventRound:
			if m.store != nil {
				//nolint:errcheck // Best-effort save
				m.store.SaveRound(m.game.ID(), e.Target, e.Entered, e.Hit)
			}
		}
	}
}

// saveScore records the current score once per game.
func (m *GameModel) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	m.scoreSaved = true
}

// finish silences audio and keeps the score of an endless game
// that is being left.
func (m *GameModel) finish() {
	m.player.Stop()
	m.saveScore()
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a standalone Bubble Tea program for the given game.
// It returns when the player quits or leaves a finished game.
func Run(game registry.Game, store *storage.Store, player audio.Player, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, player, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
