// Package slider computes the pixel offsets that move a slider control's
// thumb to a target logical value and delegates the drag gesture to a
// browser automation executor.
package slider

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Element is an opaque handle to a slider element. Its concrete type is
// owned by the Executor implementation, e.g. a CSS selector for the
// chromedp executor or a WebElement for the WebDriver executor.
type Element any

// Executor performs the browser-side primitives the positioner needs. All
// calls are synchronous and blocking.
type Executor interface {
	// Width returns the current rendered width of the element in pixels.
	// It is read live on every call, the page may have reflowed since the
	// last one.
	Width(el Element) (int, error)

	// Attribute returns the value of a declared attribute, with ok == false
	// when the attribute is absent.
	Attribute(el Element, name string) (value string, ok bool, err error)

	// DragBy drags the element by a pixel delta relative to its current
	// position and returns once the gesture has completed.
	DragBy(el Element, dx int, dy int) error
}

func NewPositioner(executor Executor, rng *rand.Rand) *Positioner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Positioner{
		executor: executor,
		rng:      rng,
	}
}

// Positioner moves slider thumbs to logical target values. The zero value
// is not usable, use NewPositioner. A Positioner may be shared between
// goroutines, access to its random source is serialized.
type Positioner struct {
	executor Executor
	rng      *rand.Rand
	rngMutex sync.Mutex
}

// MoveTo drags the slider's thumb to the given logical value. Values
// outside the range are not clamped, the computed offset simply points
// beyond the bar.
func (p *Positioner) MoveTo(el Element, source RangeSource, value int) error {
	r, err := source.resolve(p.executor, el)
	if err != nil {
		return err
	}
	return p.move(el, r, value)
}

// MoveToRandom drags the slider's thumb to a value picked uniformly at
// random from the resolved range, bounds included.
func (p *Positioner) MoveToRandom(el Element, source RangeSource) error {
	r, err := source.resolve(p.executor, el)
	if err != nil {
		return err
	}
	value, err := p.PickValue(r.Min, r.Max)
	if err != nil {
		return err
	}
	return p.move(el, r, value)
}

// MoveToMin drags the slider's thumb to the range's minimum.
func (p *Positioner) MoveToMin(el Element, source RangeSource) error {
	r, err := source.resolve(p.executor, el)
	if err != nil {
		return err
	}
	return p.move(el, r, r.Min)
}

// MoveToMax drags the slider's thumb to the range's maximum.
func (p *Positioner) MoveToMax(el Element, source RangeSource) error {
	r, err := source.resolve(p.executor, el)
	if err != nil {
		return err
	}
	return p.move(el, r, r.Max)
}

func (p *Positioner) move(el Element, r Range, value int) error {
	width, err := p.executor.Width(el)
	if err != nil {
		return err
	}
	dx, err := Offset(width, r.Min, r.Max, value)
	if err != nil {
		return err
	}
	return p.executor.DragBy(el, dx, 0)
}
