package morse

import (
	"fmt"
	"math/rand"
)

// Encoder plays back a single character's code one element per call.
type Encoder struct {
	char  rune
	code  string
	index int
}

// NewEncoder returns an encoder with no character loaded.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// SelectCharacter loads r and rewinds to its first element.
func (e *Encoder) SelectCharacter(r rune) error {
	code, ok := CodeFor(r)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, r)
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	e.char = r
	e.code = code
	e.index = 0
	return nil
}

// NextDotDash returns the next element of the loaded code. done reports
// whether the returned element was the last one.
func (e *Encoder) NextDotDash() (done, dot, dash bool, err error) {
	if e.index >= len(e.code) {
		return false, false, false, ErrCodeExhausted
	}
	sym := e.code[e.index]
	e.index++
	return e.index == len(e.code), sym == Dot, sym == Dash, nil
}

// Reset rewinds to the first element without changing the character.
func (e *Encoder) Reset() {
	e.index = 0
}

// Clear unloads the character.
func (e *Encoder) Clear() {
	e.char = 0
	e.code = ""
	e.index = 0
}

// Current returns the loaded character, or 0 when none is loaded.
func (e *Encoder) Current() rune {
	return e.char
}

// Code returns the loaded character's full code.
func (e *Encoder) Code() string {
	return e.code
}

// Remaining returns the elements not yet stepped through.
func (e *Encoder) Remaining() string {
	return e.code[e.index:]
}

// RandomCharacter picks a character uniformly from charset.
// An empty charset falls back to CharsetFull.
func RandomCharacter(rng *rand.Rand, charset string) rune {
	runes := []rune(charset)
	if len(runes) == 0 {
		runes = []rune(CharsetFull)
	}
	return runes[rng.Intn(len(runes))]
}
