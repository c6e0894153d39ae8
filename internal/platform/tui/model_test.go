package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/morse-invader/internal/config"
	"github.com/vovakirdan/morse-invader/internal/core"
	"github.com/vovakirdan/morse-invader/internal/games/invader"
	"github.com/vovakirdan/morse-invader/internal/storage"
)

type recordingPlayer struct {
	played  []string
	stopped int
}

func (p *recordingPlayer) Play(text string) { p.played = append(p.played, text) }
func (p *recordingPlayer) Stop()            { p.stopped++ }
func (p *recordingPlayer) Close() error     { return nil }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, rounds int, store *storage.Store) (GameModel, *recordingPlayer) {
	t.Helper()
	cfg := config.DefaultInvaderConfig()
	cfg.Gameplay.Rounds = rounds

	player := &recordingPlayer{}
	m := NewGameModel(invader.NewWithConfig(invader.ModeFull, cfg), store, player,
		core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m, player
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m
}

func tick() tea.Msg { return TickMsg{} }

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{keyLeft, core.ActionDot, false},
		{keyRight, core.ActionDash, false},
		{keyEnter, core.ActionSubmit, false},
		{runeKey('r'), core.ActionNewTarget, false},
		{runeKey('p'), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runeKey('b'), core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{keyCtrlC, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsSequenceOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	for _, msg := range []tea.KeyMsg{keyRight, keyLeft, keyEnter, keyRight} {
		km.MapKeyToFrame(msg, &frame)
	}

	want := []core.Action{core.ActionDash, core.ActionDot, core.ActionSubmit, core.ActionDash}
	if len(frame.Sequence) != len(want) {
		t.Fatalf("Sequence = %v, want %v", frame.Sequence, want)
	}
	for i := range want {
		if frame.Sequence[i] != want[i] {
			t.Errorf("Sequence[%d] = %v, want %v", i, frame.Sequence[i], want[i])
		}
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{keyEnter, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameModelPlaysLaunchedTarget(t *testing.T) {
	m, player := newTestModel(t, 0, nil)

	// Leave the intro, then launch a target
	m = send(t, m, keyEnter, tick(), runeKey('r'), tick())

	if len(player.played) != 1 {
		t.Fatalf("played %v, want one target tone", player.played)
	}
	if len(player.played[0]) != 1 {
		t.Errorf("target tone %q should be a single character", player.played[0])
	}
}

func TestGameModelRecordsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, 1, store)

	// Launch a target and submit an empty answer: a miss that ends the game
	m = send(t, m, keyEnter, tick(), runeKey('r'), tick(), keyEnter, tick())

	if !m.State().GameOver {
		t.Fatal("game should be over after the only round")
	}

	stats, err := store.CharacterStats("invader")
	if err != nil {
		t.Fatalf("CharacterStats() failed: %v", err)
	}
	if len(stats) != 1 || stats[0].Attempts != 1 || stats[0].Hits != 0 {
		t.Errorf("stats = %+v, want one missed round", stats)
	}

	// No hits, so nothing lands on the scoreboard
	if scores, _ := store.TopScores("invader", 10); len(scores) != 0 {
		t.Errorf("scores = %v, want none", scores)
	}

	// R after game over restarts straight into play
	m = send(t, m, runeKey('r'), tick())
	if m.State().GameOver {
		t.Error("restart did not clear game over")
	}
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m, player := newTestModel(t, 0, nil)
	m = send(t, m, keyEnter, tick())

	m = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = send(t, m, runeKey('p'), tick())
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
	if player.stopped == 0 {
		t.Error("leaving a game should stop audio")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, player := newTestModel(t, 0, nil)

	next, cmd := m.Update(keyCtrlC)
	m = next.(GameModel)

	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if player.stopped != 1 {
		t.Errorf("stopped = %d, want 1", player.stopped)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, 0, nil)
	m = send(t, m, keyEnter, tick())

	view := m.View()
	if !strings.Contains(view, "Match: 0") {
		t.Errorf("view missing score line:\n%s", view)
	}
}
