// Package chrome executes slider gestures through a chromedp session.
package chrome

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"

	"github.com/ftl/sliderdrive/pkg/slider"
)

// dragSteps is the number of intermediate mouse moves per drag. Some slider
// widgets ignore a jump straight to the target position.
const dragSteps = 4

// NewExecutor returns an executor bound to the given chromedp context.
// Elements are addressed by CSS selector.
func NewExecutor(ctx context.Context) *Executor {
	return &Executor{ctx: ctx}
}

type Executor struct {
	ctx context.Context
}

var _ slider.Executor = (*Executor)(nil)

type rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (x *Executor) Width(el slider.Element) (int, error) {
	selector, err := selectorOf(el)
	if err != nil {
		return 0, err
	}
	r, err := x.boundingRect(selector)
	if err != nil {
		return 0, err
	}
	return int(r.Width), nil
}

func (x *Executor) Attribute(el slider.Element, name string) (string, bool, error) {
	selector, err := selectorOf(el)
	if err != nil {
		return "", false, err
	}
	var value string
	var ok bool
	err = chromedp.Run(x.ctx, chromedp.AttributeValue(selector, name, &value, &ok, chromedp.ByQuery))
	if err != nil {
		return "", false, err
	}
	return value, ok, nil
}

func (x *Executor) DragBy(el slider.Element, dx int, dy int) error {
	selector, err := selectorOf(el)
	if err != nil {
		return err
	}
	r, err := x.boundingRect(selector)
	if err != nil {
		return err
	}
	fromX := r.X + r.Width/2
	fromY := r.Y + r.Height/2
	return chromedp.Run(x.ctx, dragAction(fromX, fromY, float64(dx), float64(dy)))
}

func (x *Executor) boundingRect(selector string) (rect, error) {
	script := fmt.Sprintf(
		`(function() {
			const r = document.querySelector(%q).getBoundingClientRect();
			return {x: r.x, y: r.y, width: r.width, height: r.height};
		})()`,
		selector,
	)
	var result rect
	err := chromedp.Run(x.ctx, chromedp.Evaluate(script, &result))
	if err != nil {
		return rect{}, err
	}
	return result, nil
}

func selectorOf(el slider.Element) (string, error) {
	selector, ok := el.(string)
	if !ok {
		return "", fmt.Errorf("the chrome executor expects a CSS selector, got %T", el)
	}
	return selector, nil
}

func dragAction(fromX float64, fromY float64, dx float64, dy float64) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		press := input.DispatchMouseEvent(input.MousePressed, fromX, fromY).
			WithButton(input.Left).
			WithClickCount(1)
		if err := press.Do(ctx); err != nil {
			return err
		}

		for step := 1; step <= dragSteps; step++ {
			move := input.DispatchMouseEvent(
				input.MouseMoved,
				fromX+dx*float64(step)/dragSteps,
				fromY+dy*float64(step)/dragSteps,
			).WithButton(input.Left)
			if err := move.Do(ctx); err != nil {
				return err
			}
		}

		release := input.DispatchMouseEvent(input.MouseReleased, fromX+dx, fromY+dy).
			WithButton(input.Left).
			WithClickCount(1)
		return release.Do(ctx)
	})
}
