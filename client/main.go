//go:build js && wasm

// Command client is the browser side of the portfolio, compiled to
// WebAssembly. It drives the matrix rain, the hero typewriter, the
// screenshot carousels with their shared lightbox, and the navigation bar.
//
// Build with: GOOS=js GOARCH=wasm go build -o web/static/app.wasm ./client
package main

import (
	"strconv"
	"strings"
	"syscall/js"
)

func main() {
	doc := js.Global().Get("document")

	startMatrixRain(doc)
	startHero(doc)
	lb := newLightboxView(doc)
	initCarousels(doc, lb, autoplayMillis(doc))
	initNavigation(doc)

	select {}
}

func autoplayMillis(doc js.Value) int {
	body := doc.Get("body")
	if body.IsNull() {
		return 0
	}
	ms, err := strconv.Atoi(body.Get("dataset").Get("autoplay").String())
	if err != nil {
		return 0
	}
	return ms
}

// each calls fn for every node in a NodeList.
func each(list js.Value, fn func(i int, el js.Value)) {
	n := list.Get("length").Int()
	for i := 0; i < n; i++ {
		fn(i, list.Call("item", i))
	}
}

func on(target js.Value, event string, fn func(ev js.Value), opts ...any) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", append([]any{event, cb}, opts...)...)
}

func setTimeout(fn func(), ms int) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("setTimeout", cb, ms)
}

func setInterval(fn func(), ms int) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	js.Global().Call("setInterval", cb, ms)
}

func toggle(el js.Value, class string, on bool) {
	el.Get("classList").Call("toggle", class, on)
}

func hasClass(el js.Value, class string) bool {
	cl := el.Get("classList")
	return !cl.IsUndefined() && cl.Call("contains", class).Bool()
}

func dataText(el js.Value) string {
	v := el.Get("dataset").Get("text")
	if v.IsUndefined() {
		return ""
	}
	return v.String()
}

func hrefTarget(link js.Value) (string, bool) {
	href := link.Call("getAttribute", "href")
	if href.IsNull() {
		return "", false
	}
	s := href.String()
	if !strings.HasPrefix(s, "#") {
		return "", false
	}
	return strings.TrimPrefix(s, "#"), true
}
