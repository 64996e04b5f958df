// Package webdriver executes slider gestures through a Selenium WebDriver
// session.
package webdriver

import (
	"fmt"

	"github.com/tebeka/selenium"

	"github.com/ftl/sliderdrive/pkg/slider"
)

// NewExecutor returns an executor bound to the given WebDriver session.
// Elements are selenium.WebElement handles.
func NewExecutor(driver selenium.WebDriver) *Executor {
	return &Executor{driver: driver}
}

type Executor struct {
	driver selenium.WebDriver
}

var _ slider.Executor = (*Executor)(nil)

func (x *Executor) Width(el slider.Element) (int, error) {
	element, err := elementOf(el)
	if err != nil {
		return 0, err
	}
	size, err := element.Size()
	if err != nil {
		return 0, err
	}
	return size.Width, nil
}

func (x *Executor) Attribute(el slider.Element, name string) (string, bool, error) {
	element, err := elementOf(el)
	if err != nil {
		return "", false, err
	}
	value, err := element.GetAttribute(name)
	if err != nil {
		// the wire protocol reports an absent attribute as an error
		return "", false, nil
	}
	return value, true, nil
}

// DragBy reproduces a dragAndDropBy gesture: move the pointer to the
// element's center, press, move by the delta, release.
func (x *Executor) DragBy(el slider.Element, dx int, dy int) error {
	element, err := elementOf(el)
	if err != nil {
		return err
	}
	size, err := element.Size()
	if err != nil {
		return err
	}

	centerX := size.Width / 2
	centerY := size.Height / 2
	if err := element.MoveTo(centerX, centerY); err != nil {
		return err
	}
	if err := x.driver.ButtonDown(); err != nil {
		return err
	}
	if err := element.MoveTo(centerX+dx, centerY+dy); err != nil {
		return err
	}
	return x.driver.ButtonUp()
}

func elementOf(el slider.Element) (selenium.WebElement, error) {
	element, ok := el.(selenium.WebElement)
	if !ok {
		return nil, fmt.Errorf("the webdriver executor expects a selenium.WebElement, got %T", el)
	}
	return element, nil
}
