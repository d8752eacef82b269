//go:build js

package swipe

import "syscall/js"

// hostTouchCaps asks the browser for touch hardware, the same checks a
// page makes: "ontouchstart" on the document element, and
// navigator.maxTouchPoints.
func hostTouchCaps() touchCaps {
	var caps touchCaps
	global := js.Global()

	if root := global.Get("document").Get("documentElement"); root.Truthy() {
		caps.touchStart = global.Get("Reflect").Call("has", root, "ontouchstart").Bool()
	}
	if nav := global.Get("navigator"); nav.Truthy() {
		if n := nav.Get("maxTouchPoints"); n.Type() == js.TypeNumber {
			caps.maxTouchPoints = n.Int()
		}
	}
	return caps
}
