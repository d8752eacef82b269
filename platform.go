package swipe

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// Platform describes the input capabilities of the running environment.
// Detectors read it once at construction.
type Platform struct {
	// TouchStart reports native touch-start event support.
	TouchStart bool
	// MaxTouchPoints is the number of simultaneous contacts the device
	// reports. Zero means no touch hardware.
	MaxTouchPoints int
	// PointerEvents reports that the unified pointer event family is
	// delivered. When false, detectors fall back to touch events.
	PointerEvents bool
}

// IsSupported reports whether p can produce swipe gestures at all: either
// native touch-start support or at least one touch point.
func IsSupported(p Platform) bool {
	return p.TouchStart || p.MaxTouchPoints > 0
}

// touchCaps is the touch hardware a host reports without any finger
// being down.
type touchCaps struct {
	touchStart     bool
	maxTouchPoints int
}

// DetectPlatform inspects the ebiten runtime. Mobile targets always report
// touch support. Browser (js/wasm) builds ask the page, reading
// navigator.maxTouchPoints and touch-start support on the document.
// Desktop targets have no capability query in ebiten, so they only report
// touch support when a touch is active at call time; on touchscreen
// desktops, call DetectPlatform after the first touch or build a Platform
// value directly.
// Input synthesizes both event families, so PointerEvents is always set.
func DetectPlatform() Platform {
	return detectPlatform(runtime.GOOS, len(ebiten.AppendTouchIDs(nil)), hostTouchCaps())
}

func detectPlatform(goos string, activeTouches int, caps touchCaps) Platform {
	p := Platform{PointerEvents: true}
	switch goos {
	case "android", "ios":
		p.TouchStart = true
		p.MaxTouchPoints = maxPointers - 1
	default:
		p.TouchStart = caps.touchStart
		p.MaxTouchPoints = caps.maxTouchPoints
		if activeTouches > 0 && p.MaxTouchPoints == 0 {
			p.MaxTouchPoints = maxPointers - 1
		}
	}
	return p
}
