//go:build !js

package swipe

// hostTouchCaps reports no static touch hardware; ebiten has no
// capability query outside the browser. Mobile targets are handled by GOOS
// in detectPlatform.
func hostTouchCaps() touchCaps {
	return touchCaps{}
}
