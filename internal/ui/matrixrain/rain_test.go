package matrixrain

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNew_ColumnsAndStartRows(t *testing.T) {
	r := New(800, 600, seeded())

	assert.Equal(t, 50, r.Columns())
	for _, d := range r.Drops() {
		assert.LessOrEqual(t, d, 0.0)
		assert.Greater(t, d, -100.0)
	}
}

func TestStep_OneGlyphPerColumn(t *testing.T) {
	r := New(160, 320, seeded())
	before := r.Drops()

	frame := r.Step()
	require.Len(t, frame, 10)
	for i, d := range frame {
		assert.True(t, strings.Contains(Glyphs, d.Glyph), "glyph %q not in set", d.Glyph)
		assert.Equal(t, float64(i*FontSize), d.X)
		assert.Equal(t, before[i]*FontSize, d.Y)
	}

	after := r.Drops()
	for i := range after {
		assert.Equal(t, before[i]+1, after[i], "drops above the bottom always fall one row")
	}
}

func TestStep_DropsEventuallyReset(t *testing.T) {
	r := New(16, 32, seeded())
	r.drops[0] = 100

	reset := false
	for i := 0; i < 2000 && !reset; i++ {
		r.Step()
		reset = r.drops[0] == 1
	}
	assert.True(t, reset, "a drop past the bottom restarts at the top")
}

func TestResize(t *testing.T) {
	r := New(160, 100, seeded())
	r.Step()
	kept := r.Drops()

	r.Resize(320, 200)
	assert.Equal(t, 20, r.Columns())
	assert.Equal(t, kept, r.Drops()[:10])

	r.Resize(48, 200)
	assert.Equal(t, 3, r.Columns())
	assert.Equal(t, kept[:3], r.Drops())

	w, h := r.Size()
	assert.Equal(t, 48.0, w)
	assert.Equal(t, 200.0, h)
}

func TestNew_NilSource(t *testing.T) {
	r := New(32, 32, nil)
	assert.Len(t, r.Step(), 2)
}
