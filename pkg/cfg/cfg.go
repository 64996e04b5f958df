package cfg

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ftl/sliderdrive/pkg/slider"
)

type Configuration struct {
	BrowserURL  string   `json:"browser_url,omitempty"`
	SeleniumURL string   `json:"selenium_url,omitempty"`
	Seed        uint64   `json:"seed,omitempty"`
	Sliders     []Slider `json:"sliders"`
}

// Slider describes a named slider control on the page under test. Min and
// Max are optional, without them the range is resolved from the element's
// attributes at move time.
type Slider struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
}

// RangeSource returns the range source for this slider definition.
func (s Slider) RangeSource() slider.RangeSource {
	if s.Min != nil && s.Max != nil {
		return slider.Explicit(*s.Min, *s.Max)
	}
	return slider.FromAttributes()
}

func (c Configuration) SliderByName(name string) (Slider, bool) {
	for _, s := range c.Sliders {
		if s.Name == name {
			return s, true
		}
	}
	return Slider{}, false
}

func ReadFile(filename string) (Configuration, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Configuration{}, err
	}
	defer f.Close()

	return Read(f)
}

func Read(r io.Reader) (Configuration, error) {
	var result Configuration

	bytes, err := io.ReadAll(r)
	if err != nil {
		return Configuration{}, err
	}

	err = json.Unmarshal(bytes, &result)
	if err != nil {
		return Configuration{}, err
	}

	return result, nil
}
