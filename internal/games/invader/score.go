package invader

import "fmt"

// ScoreKeeper tallies matched and missed rounds.
type ScoreKeeper struct {
	Hits   int
	Misses int
}

// Hit counts a matched round.
func (s *ScoreKeeper) Hit() { s.Hits++ }

// Miss counts a missed round.
func (s *ScoreKeeper) Miss() { s.Misses++ }

// Reset zeroes both tallies.
func (s *ScoreKeeper) Reset() {
	s.Hits = 0
	s.Misses = 0
}

// Rounds returns the number of judged rounds.
func (s ScoreKeeper) Rounds() int {
	return s.Hits + s.Misses
}

// String renders the HUD line.
func (s ScoreKeeper) String() string {
	return fmt.Sprintf("Match: %d  Miss: %d", s.Hits, s.Misses)
}
