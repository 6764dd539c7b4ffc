//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/neozi12/portfolio/internal/ui/matrixrain"
	"github.com/neozi12/portfolio/internal/ui/typewriter"
)

func startMatrixRain(doc js.Value) {
	canvas := doc.Call("getElementById", "matrix-canvas")
	if canvas.IsNull() {
		return
	}
	win := js.Global()
	ctx := canvas.Call("getContext", "2d")

	size := func() (float64, float64) {
		w, h := win.Get("innerWidth").Float(), win.Get("innerHeight").Float()
		canvas.Set("width", w)
		canvas.Set("height", h)
		return w, h
	}

	w, h := size()
	rain := matrixrain.New(w, h, nil)
	font := strconv.Itoa(matrixrain.FontSize) + "px monospace"

	setInterval(func() {
		cw, ch := rain.Size()
		ctx.Set("fillStyle", matrixrain.FadeFill)
		ctx.Call("fillRect", 0, 0, cw, ch)
		ctx.Set("fillStyle", matrixrain.GlyphFill)
		ctx.Set("font", font)
		for _, d := range rain.Step() {
			ctx.Call("fillText", d.Glyph, d.X, d.Y)
		}
	}, int(matrixrain.Interval.Milliseconds()))

	on(win, "resize", func(js.Value) {
		rain.Resize(size())
	})
}

func startHero(doc js.Value) {
	welcome := doc.Call("getElementById", "welcome-text")
	intro := doc.Call("getElementById", "intro-text")
	accent := doc.Call("getElementById", "accent-line")
	if welcome.IsNull() || intro.IsNull() {
		return
	}

	seq := typewriter.NewHero(dataText(welcome), dataText(intro))
	toggle(welcome, "typing-cursor", true)

	var tick func()
	tick = func() {
		f, delay, more := seq.Next()
		switch f.Name {
		case "welcome":
			welcome.Set("textContent", f.Text)
			if f.StageDone {
				toggle(welcome, "typing-cursor", false)
				if !accent.IsNull() {
					toggle(accent, "hidden-initial", false)
				}
				toggle(intro, "typing-cursor", true)
			}
		case "intro":
			intro.Set("innerHTML", f.Text)
		}
		if more {
			setTimeout(tick, int(delay.Milliseconds()))
		}
	}
	setTimeout(tick, int(seq.StartDelay().Milliseconds()))
}
