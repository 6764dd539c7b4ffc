// Package lightbox models the single full-screen image viewer shared by all carousels.
package lightbox

// Target identifies what was clicked inside the overlay.
type Target int

const (
	TargetBackdrop Target = iota
	TargetClose
	TargetImage
)

// Lightbox is the overlay state. The zero value is closed.
type Lightbox struct {
	open bool
	src  string
	alt  string
}

// Open shows the overlay with the given image.
func (l *Lightbox) Open(src, alt string) {
	l.src = src
	l.alt = alt
	l.open = true
}

// Close hides the overlay. The last image is kept so reopening is cheap for the DOM.
func (l *Lightbox) Close() {
	l.open = false
}

// IsOpen reports whether the overlay is visible.
func (l *Lightbox) IsOpen() bool { return l.open }

// Image returns the image currently loaded into the overlay.
func (l *Lightbox) Image() (src, alt string) { return l.src, l.alt }

// ScrollLocked reports whether page scrolling must be suppressed.
func (l *Lightbox) ScrollLocked() bool { return l.open }

// HandleClick closes the overlay when the backdrop or close control is clicked.
func (l *Lightbox) HandleClick(t Target) bool {
	if !l.open || t == TargetImage {
		return false
	}
	l.Close()
	return true
}

// HandleKey closes the overlay on Escape while it is open.
func (l *Lightbox) HandleKey(key string) bool {
	if !l.open || key != "Escape" {
		return false
	}
	l.Close()
	return true
}
