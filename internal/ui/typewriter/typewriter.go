// Package typewriter reveals text one unit at a time on a fixed timer.
//
// A Typewriter only tracks how much of its text is visible; the caller owns
// the timer. In markup mode an HTML tag is revealed as a single unit so the
// partial output is always well-formed enough to assign to innerHTML.
package typewriter

import (
	"strings"
	"unicode/utf8"
)

// Typewriter reveals a fixed string.
type Typewriter struct {
	text   string
	pos    int
	markup bool
}

// New returns a plain-text typewriter that reveals one rune per step.
func New(text string) *Typewriter {
	return &Typewriter{text: text}
}

// NewMarkup returns a typewriter that reveals whole tags as one step.
func NewMarkup(text string) *Typewriter {
	return &Typewriter{text: text, markup: true}
}

// Target returns the full text being revealed.
func (t *Typewriter) Target() string { return t.text }

// Text returns the revealed prefix.
func (t *Typewriter) Text() string { return t.text[:t.pos] }

// Done reports whether the full text is revealed.
func (t *Typewriter) Done() bool { return t.pos >= len(t.text) }

// Step reveals the next unit. It returns false once there is nothing left.
func (t *Typewriter) Step() bool {
	if t.Done() {
		return false
	}
	if t.markup && t.text[t.pos] == '<' {
		if end := strings.IndexByte(t.text[t.pos:], '>'); end >= 0 {
			t.pos += end + 1
			return true
		}
	}
	_, size := utf8.DecodeRuneInString(t.text[t.pos:])
	t.pos += size
	return true
}

// Steps returns how many Step calls a fresh typewriter needs to finish.
func (t *Typewriter) Steps() int {
	c := &Typewriter{text: t.text, markup: t.markup}
	n := 0
	for c.Step() {
		n++
	}
	return n
}

// Reset hides all text again.
func (t *Typewriter) Reset() { t.pos = 0 }
