package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShow_Wraps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"first", 0, 0},
		{"middle", 2, 2},
		{"past last", 4, 0},
		{"before first", -1, 3},
		{"far past", 9, 1},
		{"far before", -6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(4)
			assert.Equal(t, tt.want, c.Show(tt.in))
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestNextPrev_WrapAtEnds(t *testing.T) {
	c := New(3)

	c.Show(2)
	assert.Equal(t, 0, c.Next(), "next on last slide wraps to first")
	assert.Equal(t, 2, c.Prev(), "prev on first slide wraps to last")
}

func TestIsActive_SingleMarker(t *testing.T) {
	c := New(5)
	c.Show(3)

	active := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsActive(i) {
			active++
			assert.Equal(t, 3, i)
		}
	}
	assert.Equal(t, 1, active)
}

func TestHandleKey(t *testing.T) {
	c := New(3)

	assert.True(t, c.HandleKey("ArrowRight"))
	assert.Equal(t, 1, c.Index())
	assert.True(t, c.HandleKey("ArrowLeft"))
	assert.True(t, c.HandleKey("ArrowLeft"))
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.HandleKey("Enter"))
	assert.Equal(t, 2, c.Index())
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		moved      bool
		want       int
	}{
		{"left swipe goes forward", 300, 200, true, 1},
		{"right swipe goes back", 100, 220, true, 4},
		{"at threshold ignored", 150, 100, false, 0},
		{"tap ignored", 100, 98, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(5)
			assert.Equal(t, tt.moved, c.Swipe(tt.start, tt.end))
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestTick_Autoplay(t *testing.T) {
	c := New(3, WithAutoplay(2*time.Second))
	assert.Equal(t, 2*time.Second, c.Autoplay())

	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Index())

	c.SetHovered(true)
	assert.False(t, c.Tick(), "hover pauses autoplay")
	assert.Equal(t, 1, c.Index())

	c.SetHovered(false)
	c.SetVisible(false)
	assert.False(t, c.Tick(), "leaving the viewport pauses autoplay")

	c.SetVisible(true)
	assert.True(t, c.Tick())
	assert.True(t, c.Tick())
	assert.Equal(t, 0, c.Index())
}

func TestTick_WithoutAutoplay(t *testing.T) {
	c := New(3)
	assert.True(t, c.Paused())
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Index())
}

func TestWithAutoplay_DefaultPeriod(t *testing.T) {
	c := New(2, WithAutoplay(0))
	assert.Equal(t, DefaultAutoplay, c.Autoplay())
}

func TestEmptyCarousel(t *testing.T) {
	c := New(0, WithAutoplay(time.Second))

	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
	assert.False(t, c.IsActive(0))
	assert.False(t, c.Tick())
	assert.False(t, c.Swipe(200, 0))
	assert.False(t, c.HandleKey("ArrowRight"))
	assert.Equal(t, 0, c.Index())
}
