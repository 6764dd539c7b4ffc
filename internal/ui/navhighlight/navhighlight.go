// Package navhighlight decides which navigation link is active and when the
// sticky navigation bar is shown.
package navhighlight

// HeroID is the id of the landing section.
const HeroID = "hero"

// Observer settings mirrored by Evaluate.
const (
	Threshold    = 0.2
	MarginTop    = 100.0
	MarginBottom = 80.0
	navReveal    = 100.0
)

// NavVisible reports whether the navigation bar should be shown at the
// given scroll offset.
func NavVisible(scrollTop, heroHeight float64) bool {
	return scrollTop > heroHeight-navReveal
}

// ScrollTarget returns where to scroll for an in-page link so the section
// is not hidden under the navigation bar. The hero scrolls to its own top.
func ScrollTarget(id string, offsetTop, navHeight float64) float64 {
	if id == HeroID {
		return offsetTop
	}
	return offsetTop - navHeight
}

// Entry is one visibility change for a section.
type Entry struct {
	ID           string
	Intersecting bool
}

// Highlighter tracks the single active link.
type Highlighter struct {
	ids    map[string]bool
	order  []string
	active string
}

// New creates a highlighter for links pointing at the given section ids.
func New(ids ...string) *Highlighter {
	h := &Highlighter{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if h.ids[id] {
			continue
		}
		h.ids[id] = true
		h.order = append(h.order, id)
	}
	return h
}

// Links returns the section ids in link order.
func (h *Highlighter) Links() []string { return h.order }

// Active returns the id of the active link, or "" when none is.
func (h *Highlighter) Active() string { return h.active }

// IsActive reports whether the link for id is the active one.
func (h *Highlighter) IsActive(id string) bool {
	return h.active != "" && h.active == id
}

// Observe applies a batch of entries. Every intersecting entry in turn
// clears all links and activates its own; entries for sections without a
// link clear the highlight. It reports whether the active link changed.
func (h *Highlighter) Observe(entries []Entry) bool {
	prev := h.active
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		if h.ids[e.ID] {
			h.active = e.ID
		} else {
			h.active = ""
		}
	}
	return h.active != prev
}

// Rect is a section's vertical extent in document coordinates.
type Rect struct {
	ID     string
	Top    float64
	Height float64
}

// Viewport is the visible window of the document.
type Viewport struct {
	ScrollTop float64
	Height    float64
}

// Ratio returns the fraction of r that lies inside the viewport after the
// observer margins shrink it.
func Ratio(r Rect, v Viewport) float64 {
	if r.Height <= 0 {
		return 0
	}
	top := v.ScrollTop + MarginTop
	bottom := v.ScrollTop + v.Height - MarginBottom
	lo := max(r.Top, top)
	hi := min(r.Top+r.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / r.Height
}

// Evaluate turns section geometry into observer entries, in document order.
func Evaluate(sections []Rect, v Viewport) []Entry {
	out := make([]Entry, 0, len(sections))
	for _, s := range sections {
		out = append(out, Entry{ID: s.ID, Intersecting: Ratio(s, v) >= Threshold})
	}
	return out
}
