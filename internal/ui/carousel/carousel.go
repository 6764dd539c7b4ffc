// Package carousel holds the slide state for a project's screenshot carousel.
package carousel

import "time"

// SwipeThreshold is the minimum horizontal travel, in pixels, that counts as a swipe.
const SwipeThreshold = 50

// DefaultAutoplay is the autoplay period used by WithAutoplay(0).
const DefaultAutoplay = 5 * time.Second

// Carousel tracks the current slide of a fixed set of images.
type Carousel struct {
	n     int
	index int

	autoplay time.Duration
	hovered  bool
	hidden   bool
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithAutoplay enables automatic advancing every period.
func WithAutoplay(period time.Duration) Option {
	return func(c *Carousel) {
		if period <= 0 {
			period = DefaultAutoplay
		}
		c.autoplay = period
	}
}

// New creates a carousel over n slides, starting on the first one.
func New(n int, opts ...Option) *Carousel {
	if n < 0 {
		n = 0
	}
	c := &Carousel{n: n}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return c.n }

// Index returns the current slide.
func (c *Carousel) Index() int { return c.index }

// IsActive reports whether slide i (and its dot) carries the active marker.
func (c *Carousel) IsActive(i int) bool {
	return c.n > 0 && i == c.index
}

// Show moves to slide i, wrapping around both ends, and returns the new index.
func (c *Carousel) Show(i int) int {
	if c.n == 0 {
		return 0
	}
	i %= c.n
	if i < 0 {
		i += c.n
	}
	c.index = i
	return c.index
}

// Next advances one slide.
func (c *Carousel) Next() int { return c.Show(c.index + 1) }

// Prev goes back one slide.
func (c *Carousel) Prev() int { return c.Show(c.index - 1) }

// HandleKey applies arrow-key navigation. It reports whether the key was used.
func (c *Carousel) HandleKey(key string) bool {
	if c.n == 0 {
		return false
	}
	switch key {
	case "ArrowLeft":
		c.Prev()
		return true
	case "ArrowRight":
		c.Next()
		return true
	}
	return false
}

// Swipe applies a touch gesture from startX to endX. A left swipe moves
// forward, a right swipe moves back. Short gestures are ignored.
func (c *Carousel) Swipe(startX, endX float64) bool {
	if c.n == 0 {
		return false
	}
	diff := startX - endX
	if diff > SwipeThreshold {
		c.Next()
		return true
	}
	if diff < -SwipeThreshold {
		c.Prev()
		return true
	}
	return false
}

// Autoplay returns the autoplay period, zero when autoplay is off.
func (c *Carousel) Autoplay() time.Duration { return c.autoplay }

// SetHovered records whether the pointer is over the widget.
func (c *Carousel) SetHovered(hovered bool) { c.hovered = hovered }

// SetVisible records whether the widget is inside the viewport.
func (c *Carousel) SetVisible(visible bool) { c.hidden = !visible }

// Paused reports whether autoplay ticks are currently suspended.
func (c *Carousel) Paused() bool {
	return c.autoplay == 0 || c.hovered || c.hidden
}

// Tick is called on every autoplay period and advances unless paused.
func (c *Carousel) Tick() bool {
	if c.n < 2 || c.Paused() {
		return false
	}
	c.Next()
	return true
}
