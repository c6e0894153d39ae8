package invader

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Hits      int
	Misses    int
	Target    string // "" when no round is open
	Code      string // code entered so far
	LastCode  string // code judged by the last submit
	Message   string
	Moving    bool
	PauseLeft int
	PlayerX   int
	PlayerY   int
	TargetX   int
	TargetY   int
	Circle    Circle
	StepTicks int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	target := ""
	if g.targetChar != 0 {
		target = string(g.targetChar)
	}
	pp := g.player.Pos()
	tp := g.target.Pos()

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Hits:      g.score.Hits,
		Misses:    g.score.Misses,
		Target:    target,
		Code:      g.interp.Code(),
		LastCode:  g.lastCode,
		Message:   g.interp.Message(),
		Moving:    g.moving,
		PauseLeft: g.pause.Remaining(),
		PlayerX:   pp.X,
		PlayerY:   pp.Y,
		TargetX:   tp.X,
		TargetY:   tp.Y,
		Circle:    g.circle,
		StepTicks: g.stepInterval(),
	}
}
