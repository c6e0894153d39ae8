package morse

import (
	"fmt"
	"strings"
)

// EncodeText converts text to Morse. Characters are separated by a space and
// words by " / ". Letters are matched case-insensitively.
func EncodeText(text string) (string, error) {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, w := range words {
		codes := make([]string, 0, len(w))
		for _, r := range w {
			c, ok := CodeFor(r)
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownCharacter, r)
			}
			codes = append(codes, c)
		}
		out = append(out, strings.Join(codes, " "))
	}
	return strings.Join(out, " / "), nil
}

// DecodeText is the inverse of EncodeText. Groups that are not in the table
// decode to '?'.
func DecodeText(code string) string {
	var sb strings.Builder
	for i, word := range strings.Split(code, "/") {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for _, group := range strings.Fields(word) {
			if r, ok := Decode[group]; ok {
				sb.WriteRune(r)
			} else {
				sb.WriteByte('?')
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
