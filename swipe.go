package swipe

import "math"

// --- Constants ---

const (
	componentName = "swipe"

	// EventNamespace groups every listener a Detector registers.
	EventNamespace = ".bs.swipe"

	// ClassPointerEvent is added to the surface when the detector listens
	// to pointer events, so renderers can disable competing touch handling.
	ClassPointerEvent = "pointer-event"

	// Threshold is the minimum absolute horizontal displacement, in
	// pixels, for a gesture to count as a swipe.
	Threshold = 40
)

// eventFamily is the input event model a Detector listens to. It is fixed
// at construction.
type eventFamily uint8

const (
	familyTouch eventFamily = iota
	familyPointer
)

// Detector recognises horizontal swipes on a Surface.
//
// A Detector built on a nil surface or an unsupported platform is inert:
// it registers nothing and never invokes a callback.
type Detector struct {
	surface Surface
	config  Config
	family  eventFamily
	active  bool

	// deltaX holds the gesture's anchor X after start, then the
	// displacement after a move or a pointer end.
	deltaX float64
}

// New attaches a detector to surface using a typed configuration.
func New(surface Surface, platform Platform, cfg Config) *Detector {
	d := &Detector{surface: surface}
	if surface == nil || !IsSupported(platform) {
		return d
	}
	d.init(platform, cfg)
	return d
}

// NewFromOptions attaches a detector to surface using loosely typed
// options. Options are validated before any listener is registered; a
// value of the wrong type yields a *ConfigurationError and no detector.
// Options are not inspected when the detector would be inert.
func NewFromOptions(surface Surface, platform Platform, opts Options) (*Detector, error) {
	d := &Detector{surface: surface}
	if surface == nil || !IsSupported(platform) {
		return d, nil
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	d.init(platform, cfg)
	return d, nil
}

func (d *Detector) init(platform Platform, cfg Config) {
	d.config = cfg
	d.deltaX = 0
	if platform.PointerEvents {
		d.family = familyPointer
	}
	d.active = true
	d.initEvents()
}

func (d *Detector) initEvents() {
	if d.family == familyPointer {
		d.surface.On(EventPointerDown, EventNamespace, d.start)
		d.surface.On(EventPointerUp, EventNamespace, d.end)
		d.surface.AddClass(ClassPointerEvent)
		return
	}
	d.surface.On(EventTouchStart, EventNamespace, d.start)
	d.surface.On(EventTouchMove, EventNamespace, d.move)
	d.surface.On(EventTouchEnd, EventNamespace, d.end)
}

// Dispose removes every listener the detector registered. It is safe to
// call more than once and on an inert detector.
func (d *Detector) Dispose() {
	if d.surface == nil {
		return
	}
	d.surface.Off(EventNamespace)
	d.active = false
}

// Active reports whether the detector is listening to its surface.
func (d *Detector) Active() bool {
	return d.active
}

// UsesPointerEvents reports whether the detector listens to the pointer
// event family rather than touch events.
func (d *Detector) UsesPointerEvents() bool {
	return d.active && d.family == familyPointer
}

// DeltaX returns the current anchor-or-displacement value.
func (d *Detector) DeltaX() float64 {
	return d.deltaX
}

func (d *Detector) start(evt Event) {
	if d.family == familyTouch {
		// An empty touch list has no position to anchor on.
		if t, ok := evt.firstTouch(); ok {
			d.deltaX = t.ClientX
		}
		return
	}
	if d.isPointerPenTouch(evt) {
		d.deltaX = evt.ClientX
	}
}

func (d *Detector) move(evt Event) {
	if len(evt.Touches) > 1 {
		d.deltaX = 0
		return
	}
	if t, ok := evt.firstTouch(); ok {
		d.deltaX = t.ClientX - d.deltaX
	}
}

func (d *Detector) end(evt Event) {
	if d.isPointerPenTouch(evt) {
		d.deltaX = evt.ClientX - d.deltaX
	}
	d.handleSwipe()
	execute(d.config.EndCallback)
}

func (d *Detector) handleSwipe() {
	absDeltaX := math.Abs(d.deltaX)
	if absDeltaX <= Threshold {
		d.debugf("no swipe: |dx|=%.1f", absDeltaX)
		return
	}

	direction := absDeltaX / d.deltaX
	d.deltaX = 0

	if direction == 0 || math.IsNaN(direction) {
		return
	}
	if direction > 0 {
		d.debugf("swipe right: |dx|=%.1f", absDeltaX)
		execute(d.config.RightCallback)
	} else {
		d.debugf("swipe left: |dx|=%.1f", absDeltaX)
		execute(d.config.LeftCallback)
	}
}

func (d *Detector) isPointerPenTouch(evt Event) bool {
	return d.family == familyPointer && evt.isPenOrTouch()
}

func (d *Detector) debugf(format string, args ...any) {
	debugf(d.config.Debug, format, args...)
}

func execute(cb Callback) {
	if cb != nil {
		cb()
	}
}
