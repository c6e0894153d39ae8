package invader

// Pause counts down a number of marker steps before a new target moves.
type Pause struct {
	count int
}

// Set arms the countdown.
func (p *Pause) Set(n int) {
	if n < 0 {
		n = 0
	}
	p.count = n
}

// Update consumes one step of the countdown. It returns true once the
// countdown has run out.
func (p *Pause) Update() bool {
	if p.count > 0 {
		p.count--
		return false
	}
	return true
}

// Remaining returns the steps left.
func (p *Pause) Remaining() int {
	return p.count
}
