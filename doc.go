// Package swipe detects horizontal swipe gestures for [Ebitengine] games.
//
// A [Detector] listens to a [Surface] and calls one of three callbacks:
// left swipe, right swipe, and gesture end. A gesture is a swipe when its
// net horizontal displacement exceeds [Threshold] pixels when the finger or
// pen lifts. Mouse gestures never count as swipes.
//
// # Quick start
//
// Create an [Element] for the area that should react to swipes, feed it
// with an [Input], and attach a detector:
//
//	surface := swipe.NewElement("gallery")
//	input := swipe.NewInput(surface)
//	det := swipe.New(surface, swipe.DetectPlatform(), swipe.Config{
//		LeftCallback:  gallery.Next,
//		RightCallback: gallery.Prev,
//	})
//	defer det.Dispose()
//
//	// In your ebiten.Game:
//	func (g *Game) Update() error { g.input.Update(); return nil }
//
// # Event families
//
// Input produces two families of events, like a browser does: pointer
// events (pointerdown/pointerup/pointermove, one per contact, tagged with a
// [PointerType]) and touch events (touchstart/touchmove/touchend, carrying
// every finger on the surface). A detector picks one family once, from
// [Platform.PointerEvents], and only ever subscribes to that one.
//
// # Platforms
//
// [IsSupported] reports whether a [Platform] can produce swipes at all. On
// unsupported platforms, or with a nil surface, [New] returns an inert
// detector that never fires. [DetectPlatform] reads the running ebiten
// target; tests can build a Platform value directly.
//
// # Configuration
//
// [Config] is the typed configuration. [NewFromOptions] accepts a loosely
// typed [Options] map instead and rejects values of the wrong type with a
// [*ConfigurationError] before anything is registered.
//
// # Testing gestures
//
// [Input.InjectSwipe], [Input.InjectPointer] and [Input.InjectTouch] queue
// synthetic frames, and [LoadGestureScript] replays a JSON script of them,
// so gesture handling can be exercised without touch hardware.
//
// The carousel subpackage is a ready-made consumer with animated slides,
// and the ecs module bridges swipe callbacks into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package swipe
