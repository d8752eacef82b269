// Package carousel is a horizontal slide carousel driven by swipe gestures.
//
// A left swipe advances to the next slide and a right swipe returns to the
// previous one. The slide offset is animated with [gween]; call Update once
// per frame with the elapsed seconds and read Offset when drawing.
//
// [gween]: https://github.com/tanema/gween
package carousel

import (
	"github.com/phanxgames/swipe"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultDuration = 0.6 // seconds
)

// Options configures a Carousel. Zero values select the defaults.
type Options struct {
	Slides int     // number of slides; values below 1 are treated as 1
	Width  float64 // width of one slide in pixels
	Wrap   bool    // cycle from the last slide to the first and back

	// Interval is the autoplay period in seconds. Zero disables autoplay.
	Interval float32
	// Duration is the slide transition time in seconds.
	Duration float32
	// Ease is the transition easing. Defaults to ease.OutCubic.
	Ease ease.TweenFunc

	// OnSlide is called when a transition starts.
	OnSlide func(from, to int)
}

// Carousel tracks the active slide and its animated offset.
type Carousel struct {
	opts     Options
	detector *swipe.Detector

	index   int
	offset  float64
	tween   *gween.Tween
	elapsed float32
}

// New creates a carousel and attaches a swipe detector to surface. On
// platforms without touch support the carousel still works through Next,
// Prev and autoplay.
func New(surface swipe.Surface, platform swipe.Platform, opts Options) *Carousel {
	if opts.Slides < 1 {
		opts.Slides = 1
	}
	if opts.Duration <= 0 {
		opts.Duration = defaultDuration
	}
	if opts.Ease == nil {
		opts.Ease = ease.OutCubic
	}
	c := &Carousel{opts: opts}
	c.detector = swipe.New(surface, platform, swipe.Config{
		LeftCallback:  c.Next,
		RightCallback: c.Prev,
		EndCallback:   c.resetInterval,
	})
	return c
}

// Index returns the active slide, which is the transition target while
// sliding.
func (c *Carousel) Index() int {
	return c.index
}

// Offset returns the current horizontal offset of the slide strip.
func (c *Carousel) Offset() float64 {
	return c.offset
}

// Sliding reports whether a transition is in progress.
func (c *Carousel) Sliding() bool {
	return c.tween != nil
}

// Swipeable reports whether touch gestures are recognised.
func (c *Carousel) Swipeable() bool {
	return c.detector.Active()
}

// Next moves to the following slide. Ignored while sliding or at the last
// slide without Wrap.
func (c *Carousel) Next() {
	c.slide(c.index + 1)
}

// Prev moves to the preceding slide. Ignored while sliding or at the first
// slide without Wrap.
func (c *Carousel) Prev() {
	c.slide(c.index - 1)
}

// To moves to slide i.
func (c *Carousel) To(i int) {
	if i < 0 || i >= c.opts.Slides {
		return
	}
	c.slide(i)
}

func (c *Carousel) slide(to int) {
	if c.tween != nil {
		return
	}
	n := c.opts.Slides
	if to < 0 || to >= n {
		if !c.opts.Wrap {
			return
		}
		to = (to%n + n) % n
	}
	if to == c.index {
		return
	}

	from := c.index
	c.index = to
	c.elapsed = 0
	c.tween = gween.New(float32(c.offset), float32(c.restOffset(to)), c.opts.Duration, c.opts.Ease)
	if c.opts.OnSlide != nil {
		c.opts.OnSlide(from, to)
	}
}

func (c *Carousel) restOffset(i int) float64 {
	return -float64(i) * c.opts.Width
}

// Update advances the transition and the autoplay timer by dt seconds.
func (c *Carousel) Update(dt float32) {
	if c.tween != nil {
		val, finished := c.tween.Update(dt)
		c.offset = float64(val)
		if finished {
			c.offset = c.restOffset(c.index)
			c.tween = nil
		}
		return
	}

	if c.opts.Interval <= 0 {
		return
	}
	c.elapsed += dt
	if c.elapsed >= c.opts.Interval {
		c.elapsed = 0
		c.Next()
	}
}

// resetInterval restarts the autoplay countdown after a touch gesture.
func (c *Carousel) resetInterval() {
	c.elapsed = 0
}

// Dispose detaches the swipe detector.
func (c *Carousel) Dispose() {
	c.detector.Dispose()
}
