// Package invader implements Morse Invader: a target character is sounded
// and traced across the playfield by a marker, and the player keys the
// same character back in Morse with the arrow keys.
package invader

import (
	"math/rand"

	"github.com/vovakirdan/morse-invader/internal/config"
	"github.com/vovakirdan/morse-invader/internal/core"
	"github.com/vovakirdan/morse-invader/internal/morse"
	"github.com/vovakirdan/morse-invader/internal/registry"
)

// Playfield geometry in logical pixels. Rendering scales it to the terminal.
const (
	PlayfieldW = 800
	PlayfieldH = 600
	MarkerSize = 25
	MarkerY    = 55
)

// MarkerX is the start column shared by both markers.
const MarkerX = PlayfieldW/2 - 25

// Phase is the top-level game phase.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode selects which characters a game draws targets from.
type Mode struct {
	ID      string
	Title   string
	Charset string // "" means use the configured charset
}

// Registered modes.
var (
	ModeFull    = Mode{ID: "invader", Title: "Morse Invader"}
	ModeLetters = Mode{ID: "invader_letters", Title: "Morse Invader (Letters)", Charset: morse.CharsetLetters}
	ModeDigits  = Mode{ID: "invader_digits", Title: "Morse Invader (Digits)", Charset: morse.CharsetDigits}
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the game config the same way Reset does.
// The platform uses it to set up audio. On error the returned config is
// the defaults with environment overrides and the preset applied.
func LoadConfig() (config.InvaderConfig, error) {
	cfg, err := config.LoadInvader(configPath)
	if difficultyPreset != "" {
		config.ApplyInvaderPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game implements the Morse Invader game logic.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.InvaderConfig
	fixedCfg   *config.InvaderConfig
	difficulty *config.DifficultyManager
	charset    string

	rng     *rand.Rand
	encoder *morse.Encoder
	interp  *morse.Interpreter

	player *Marker
	target *Marker
	circle Circle
	pause  Pause
	score  ScoreKeeper

	phase     Phase
	introSeen bool
	paused    bool

	targetChar rune // 0 when no round is open
	moving     bool // target marker is animating
	stepTicker int  // ticks since the last target step
	tick       int
	lastCode   string // code judged by the last submit
}

// New creates a new game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewWithConfig creates a game that ignores config files and presets.
func NewWithConfig(mode Mode, cfg config.InvaderConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title
}

// Reset initializes or restarts the game. The intro is only shown on the
// first reset of an instance.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		// A bad config file is reported by the platform before play starts.
		g.cfg, _ = LoadConfig()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.charset = g.mode.Charset
	if g.charset == "" {
		g.charset = morse.Charset(g.cfg.Gameplay.Charset)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.encoder = morse.NewEncoder()
	g.interp = morse.NewInterpreter()
	g.player = NewMarker(MarkerX, MarkerY, MarkerSize)
	g.target = NewMarker(MarkerX, MarkerY, MarkerSize)
	g.circle = IdleCircle(PlayfieldW)
	g.pause = Pause{}
	g.score.Reset()

	g.paused = false
	g.targetChar = 0
	g.moving = false
	g.stepTicker = 0
	g.tick = 0
	g.lastCode = ""

	if g.introSeen {
		g.phase = PhasePlaying
	} else {
		g.phase = PhaseIntro
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseIntro:
		if in.Has(core.ActionSubmit) {
			g.phase = PhasePlaying
			g.introSeen = true
		}
		return core.StepResult{State: g.State()}
	case PhaseGameOver:
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	var events []core.Event

	for _, a := range in.Sequence {
		if g.phase != PhasePlaying {
			break
		}
		switch a {
		case core.ActionDot, core.ActionDash:
			g.enterSymbol(a)
		case core.ActionNewTarget:
			events = g.launchTarget(events)
		case core.ActionSubmit:
			events = g.submit(events)
		}
	}

	g.advanceTarget()

	return core.StepResult{State: g.State(), Events: events}
}

// enterSymbol handles one dot or dash key press.
func (g *Game) enterSymbol(sym core.Action) {
	left := sym == core.ActionDot
	right := sym == core.ActionDash
	if !left && !right {
		return
	}

	g.player.Move(left, right, PlayfieldW, PlayfieldH)
	if left {
		g.interp.Append(morse.Dot)
	} else {
		g.interp.Append(morse.Dash)
	}
	g.interp.ClearMessage()
}

// launchTarget opens a new round unless a target is still moving.
func (g *Game) launchTarget(events []core.Event) []core.Event {
	if g.moving {
		return events
	}

	char := morse.RandomCharacter(g.rng, g.charset)
	if err := g.encoder.SelectCharacter(char); err != nil {
		return events
	}
	g.targetChar = char
	events = append(events, core.PlayMorse(string(char)))

	g.interp.Clear()
	g.player.Reset()
	g.target.Reset()
	g.circle = IdleCircle(PlayfieldW)
	g.pause.Set(g.difficulty.PauseSteps(g.cfg.Timing.PauseSteps, g.score.Hits, g.tick))
	g.moving = true
	g.stepTicker = 0
	return events
}

// submit judges the entered code against the open round.
func (g *Game) submit(events []core.Event) []core.Event {
	code := g.interp.Code()

	if g.interp.Valid() {
		events = append(events, core.PlayMorse(g.interp.Current()))
	}

	// Without an open round there is nothing to match, so the answer is a
	// miss with no round to record.
	hit := g.targetChar != 0 && g.interp.Current() == string(g.targetChar)
	if hit {
		g.score.Hit()
	} else {
		g.score.Miss()
	}
	if g.targetChar != 0 {
		events = append(events, core.Round(string(g.targetChar), code, hit))
	}

	g.interp.Interpret()
	g.lastCode = code
	g.clearRound()

	if g.cfg.Gameplay.Rounds > 0 && g.score.Rounds() >= g.cfg.Gameplay.Rounds {
		g.phase = PhaseGameOver
	}
	return events
}

// clearRound drops the target and puts every marker back at the start.
func (g *Game) clearRound() {
	g.targetChar = 0
	g.moving = false
	g.stepTicker = 0
	g.player.Reset()
	g.target.Reset()
	g.encoder.Clear()
	g.pause.Set(0)
	g.circle = IdleCircle(PlayfieldW)
}

// stepInterval is the number of ticks between target steps at the current difficulty.
func (g *Game) stepInterval() int {
	return g.difficulty.StepTicks(g.cfg.Timing.StepTicks, g.score.Hits, g.tick)
}

// advanceTarget moves the target marker one element when its interval is up.
func (g *Game) advanceTarget() {
	if !g.moving {
		return
	}

	g.stepTicker++
	if g.stepTicker < g.stepInterval() {
		return
	}
	g.stepTicker = 0

	if !g.pause.Update() {
		g.circle = IdleCircle(PlayfieldW)
		return
	}

	done, dot, dash, err := g.encoder.NextDotDash()
	if err != nil {
		g.moving = false
		return
	}

	g.target.Move(dot, dash, PlayfieldW, PlayfieldH)
	_ = g.circle.Place(g.target.Pos(), g.target.MoveCount(), string(g.targetChar))

	if done {
		g.moving = false
		g.target.Reset()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Hits,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the hit/miss tallies.
func (g *Game) Score() ScoreKeeper {
	return g.score
}

// Register the game modes with the registry
func init() {
	for _, m := range []Mode{ModeFull, ModeLetters, ModeDigits} {
		mode := m
		registry.Register(mode.ID, func() registry.Game {
			return New(mode)
		})
	}
}
