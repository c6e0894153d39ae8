// Package morse holds the International Morse tables used by the game and
// the two state machines built on them: an Encoder that steps through a
// character's code one element at a time, and an Interpreter that
// accumulates player input and decodes it.
package morse

import (
	"errors"
	"sort"
)

// Element symbols.
const (
	Dot  = '.'
	Dash = '-'
)

var (
	// ErrUnknownCharacter is returned when a rune has no Morse code.
	ErrUnknownCharacter = errors.New("morse: unknown character")
	// ErrCodeExhausted is returned when stepping past the last element.
	ErrCodeExhausted = errors.New("morse: code exhausted")
)

// Code maps each supported character to its dot/dash string.
var Code = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'+': ".-.-.", '=': "-...-", '/': "-..-.",
}

// Decode is the inverse of Code.
var Decode = make(map[string]rune, len(Code))

// Character sets a target can be drawn from.
const (
	CharsetLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits  = "0123456789"
	CharsetFull    = CharsetLetters + CharsetDigits + "+/="
)

func init() {
	for r, c := range Code {
		Decode[c] = r
	}
}

// Alphabet returns every encodable character in ascending order.
func Alphabet() []rune {
	out := make([]rune, 0, len(Code))
	for r := range Code {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CodeFor returns the code for r, case-insensitively.
func CodeFor(r rune) (string, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	c, ok := Code[r]
	return c, ok
}

// CharFor returns the character code decodes to, or "" when it is not in the table.
func CharFor(code string) string {
	if r, ok := Decode[code]; ok {
		return string(r)
	}
	return ""
}

// Charset resolves a charset name (full, letters, digits) to its characters.
// Unknown names fall back to the full set.
func Charset(name string) string {
	switch name {
	case "letters":
		return CharsetLetters
	case "digits":
		return CharsetDigits
	default:
		return CharsetFull
	}
}
