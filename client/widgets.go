//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/neozi12/portfolio/internal/ui/carousel"
	"github.com/neozi12/portfolio/internal/ui/lightbox"
	"github.com/neozi12/portfolio/internal/ui/navhighlight"
)

// lightboxView binds the shared overlay element to its state.
type lightboxView struct {
	state lightbox.Lightbox
	el    js.Value
	img   js.Value
	body  js.Value
}

func newLightboxView(doc js.Value) *lightboxView {
	el := doc.Call("getElementById", "lightbox")
	if el.IsNull() {
		return nil
	}
	lb := &lightboxView{
		el:   el,
		img:  el.Call("querySelector", ".lightbox-image"),
		body: doc.Get("body"),
	}

	on(el, "click", func(ev js.Value) {
		target := ev.Get("target")
		t := lightbox.TargetImage
		switch {
		case target.Equal(el):
			t = lightbox.TargetBackdrop
		case hasClass(target, "lightbox-close"):
			t = lightbox.TargetClose
		}
		if lb.state.HandleClick(t) {
			lb.render()
		}
	})
	on(doc, "keydown", func(ev js.Value) {
		if lb.state.HandleKey(ev.Get("key").String()) {
			lb.render()
		}
	})
	return lb
}

func (lb *lightboxView) open(src, alt string) {
	if lb == nil {
		return
	}
	lb.state.Open(src, alt)
	lb.render()
}

func (lb *lightboxView) render() {
	src, alt := lb.state.Image()
	if !lb.img.IsNull() {
		lb.img.Set("src", src)
		lb.img.Set("alt", alt)
	}
	toggle(lb.el, "active", lb.state.IsOpen())
	overflow := ""
	if lb.state.ScrollLocked() {
		overflow = "hidden"
	}
	lb.body.Get("style").Set("overflow", overflow)
}

func initCarousels(doc js.Value, lb *lightboxView, autoplayMS int) {
	each(doc.Call("querySelectorAll", ".project-section"), func(_ int, section js.Value) {
		el := section.Call("querySelector", ".screenshot-carousel")
		if el.IsNull() {
			return
		}
		bindCarousel(section, el, lb, autoplayMS)
	})
}

func bindCarousel(section, el js.Value, lb *lightboxView, autoplayMS int) {
	shots := el.Call("querySelectorAll", ".screenshot")
	dots := section.Call("querySelectorAll", ".dot")

	var opts []carousel.Option
	if autoplayMS > 0 {
		opts = append(opts, carousel.WithAutoplay(time.Duration(autoplayMS)*time.Millisecond))
	}
	c := carousel.New(shots.Get("length").Int(), opts...)

	render := func() {
		each(shots, func(i int, s js.Value) { toggle(s, "active", c.IsActive(i)) })
		each(dots, func(i int, d js.Value) { toggle(d, "active", c.IsActive(i)) })
	}

	if prev := el.Call("querySelector", ".carousel-btn.prev"); !prev.IsNull() {
		on(prev, "click", func(ev js.Value) {
			ev.Call("stopPropagation")
			c.Prev()
			render()
		})
	}
	if next := el.Call("querySelector", ".carousel-btn.next"); !next.IsNull() {
		on(next, "click", func(ev js.Value) {
			ev.Call("stopPropagation")
			c.Next()
			render()
		})
	}
	each(dots, func(i int, d js.Value) {
		on(d, "click", func(js.Value) {
			c.Show(i)
			render()
		})
	})

	on(el, "keydown", func(ev js.Value) {
		if c.HandleKey(ev.Get("key").String()) {
			render()
		}
	})

	var startX float64
	passive := map[string]any{"passive": true}
	on(el, "touchstart", func(ev js.Value) {
		startX = ev.Get("changedTouches").Index(0).Get("screenX").Float()
	}, passive)
	on(el, "touchend", func(ev js.Value) {
		endX := ev.Get("changedTouches").Index(0).Get("screenX").Float()
		if c.Swipe(startX, endX) {
			render()
		}
	}, passive)

	each(shots, func(_ int, s js.Value) {
		s.Get("style").Set("cursor", "pointer")
		on(s, "click", func(js.Value) {
			lb.open(s.Get("src").String(), s.Get("alt").String())
		})
	})

	if c.Autoplay() > 0 {
		on(el, "mouseenter", func(js.Value) { c.SetHovered(true) })
		on(el, "mouseleave", func(js.Value) { c.SetHovered(false) })
		observe(el, 0, "0px", func(entries js.Value) {
			each(entries, func(_ int, e js.Value) {
				c.SetVisible(e.Get("isIntersecting").Bool())
			})
		})
		setInterval(func() {
			if c.Tick() {
				render()
			}
		}, int(c.Autoplay().Milliseconds()))
	}

	c.Show(0)
	render()
}

// observe attaches an IntersectionObserver to each target.
func observe(target js.Value, threshold float64, rootMargin string, fn func(entries js.Value), more ...js.Value) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	opts := map[string]any{"threshold": threshold, "rootMargin": rootMargin}
	obs := js.Global().Get("IntersectionObserver").New(cb, opts)
	obs.Call("observe", target)
	for _, t := range more {
		obs.Call("observe", t)
	}
}

func initNavigation(doc js.Value) {
	nav := doc.Call("getElementById", "project-nav")
	hero := doc.Call("getElementById", "hero")
	if nav.IsNull() || hero.IsNull() {
		return
	}
	win := js.Global()

	on(win, "scroll", func(js.Value) {
		heroHeight := hero.Get("offsetHeight").Float()
		toggle(nav, "visible", navhighlight.NavVisible(win.Get("scrollY").Float(), heroHeight))
	})

	each(doc.Call("querySelectorAll", ".nav-link, .project-link"), func(_ int, link js.Value) {
		on(link, "click", func(ev js.Value) {
			id, ok := hrefTarget(link)
			if !ok {
				return
			}
			ev.Call("preventDefault")
			section := doc.Call("getElementById", id)
			if section.IsNull() {
				return
			}
			top := navhighlight.ScrollTarget(id, section.Get("offsetTop").Float(), nav.Get("offsetHeight").Float())
			win.Call("scrollTo", map[string]any{"top": top, "behavior": "smooth"})
		})
	})

	links := doc.Call("querySelectorAll", ".nav-link")
	var ids []string
	each(links, func(_ int, link js.Value) {
		if id, ok := hrefTarget(link); ok {
			ids = append(ids, id)
		}
	})
	h := navhighlight.New(ids...)

	var sections []js.Value
	each(doc.Call("querySelectorAll", ".project-section, #hero"), func(_ int, s js.Value) {
		sections = append(sections, s)
	})
	if len(sections) == 0 {
		return
	}

	margin := "-" + ftoa(navhighlight.MarginTop) + "px 0px -" + ftoa(navhighlight.MarginBottom) + "px 0px"
	observe(sections[0], navhighlight.Threshold, margin, func(entries js.Value) {
		var batch []navhighlight.Entry
		each(entries, func(_ int, e js.Value) {
			batch = append(batch, navhighlight.Entry{
				ID:           e.Get("target").Get("id").String(),
				Intersecting: e.Get("isIntersecting").Bool(),
			})
		})
		if !h.Observe(batch) {
			return
		}
		each(links, func(_ int, link js.Value) {
			id, _ := hrefTarget(link)
			toggle(link, "active", h.IsActive(id))
		})
	}, sections[1:]...)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
