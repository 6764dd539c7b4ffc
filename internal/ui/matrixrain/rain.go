// Package matrixrain computes the falling-glyph animation drawn behind the hero section.
package matrixrain

import (
	"math/rand/v2"
	"time"
)

const (
	FontSize  = 16
	Interval  = 50 * time.Millisecond
	FadeFill  = "rgba(13, 2, 8, 0.05)"
	GlyphFill = "#00FF41"

	// resetChance is the per-frame probability that a drop below the
	// bottom edge restarts at the top.
	resetChance = 0.025
)

// Glyphs is the character set drops are drawn from.
const Glyphs = "アァカサタナハマヤャラワガザダバパイィキシチニヒミリヰギジヂビピウゥクスツヌフムユュルグズブヅプエェケセテネヘメレヱゲゼデベペオォコソトノホモヨョロヲゴゾドボポヴッン0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Draw is one glyph to paint in a frame.
type Draw struct {
	Glyph string
	X, Y  float64
}

// Rain holds one drop position (in rows) per column.
type Rain struct {
	width, height float64
	fontSize      float64
	drops         []float64
	glyphs        []rune
	rng           *rand.Rand
}

// New creates a rain field for a canvas of the given size.
func New(width, height float64, rng *rand.Rand) *Rain {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Rain{
		fontSize: FontSize,
		glyphs:   []rune(Glyphs),
		rng:      rng,
	}
	r.Resize(width, height)
	return r
}

// Columns returns the number of glyph columns.
func (r *Rain) Columns() int { return len(r.drops) }

// Drops returns a copy of the current drop rows.
func (r *Rain) Drops() []float64 {
	out := make([]float64, len(r.drops))
	copy(out, r.drops)
	return out
}

// Size returns the canvas dimensions.
func (r *Rain) Size() (width, height float64) { return r.width, r.height }

// Resize adapts to a new canvas size. Existing columns keep their drops;
// new columns start above the top edge.
func (r *Rain) Resize(width, height float64) {
	r.width, r.height = width, height
	cols := int(width / r.fontSize)
	if cols < 0 {
		cols = 0
	}
	if cols <= len(r.drops) {
		r.drops = r.drops[:cols]
		return
	}
	for len(r.drops) < cols {
		r.drops = append(r.drops, r.startRow())
	}
}

func (r *Rain) startRow() float64 {
	return -r.rng.Float64() * 100
}

// Step produces the glyphs for one frame and advances every drop.
func (r *Rain) Step() []Draw {
	out := make([]Draw, len(r.drops))
	for i, d := range r.drops {
		out[i] = Draw{
			Glyph: string(r.glyphs[r.rng.IntN(len(r.glyphs))]),
			X:     float64(i) * r.fontSize,
			Y:     d * r.fontSize,
		}
		if d*r.fontSize > r.height && r.rng.Float64() < resetChance {
			r.drops[i] = 0
		}
		r.drops[i]++
	}
	return out
}
