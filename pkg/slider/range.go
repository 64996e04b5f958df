package slider

import "strconv"

// Range delimits the logical values a slider can represent. Min and Max
// carry no ordering constraint: an inverted range flips the drag direction
// instead of failing.
type Range struct {
	Min int
	Max int
}

// RangeSource tells a move operation where the slider's range comes from.
type RangeSource interface {
	resolve(x Executor, el Element) (Range, error)
}

// ResolveRange resolves a range source against the given element.
func ResolveRange(x Executor, el Element, source RangeSource) (Range, error) {
	return source.resolve(x, el)
}

type explicitRange Range

func (r explicitRange) resolve(Executor, Element) (Range, error) {
	return Range(r), nil
}

// Explicit supplies the range as already parsed integers.
func Explicit(min, max int) RangeSource {
	return explicitRange{Min: min, Max: max}
}

type stringRange struct {
	min string
	max string
}

// FromStrings supplies the range as numeric strings.
func FromStrings(min, max string) RangeSource {
	return stringRange{min: min, max: max}
}

func (r stringRange) resolve(Executor, Element) (Range, error) {
	min, err := parseBound("min", r.min)
	if err != nil {
		return Range{}, err
	}
	max, err := parseBound("max", r.max)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: min, Max: max}, nil
}

type attributeRange struct{}

// FromAttributes resolves the range from the slider element's min and max
// attributes at move time.
func FromAttributes() RangeSource {
	return attributeRange{}
}

func (attributeRange) resolve(x Executor, el Element) (Range, error) {
	min, err := parseAttribute(x, el, "min")
	if err != nil {
		return Range{}, err
	}
	max, err := parseAttribute(x, el, "max")
	if err != nil {
		return Range{}, err
	}
	return Range{Min: min, Max: max}, nil
}

func parseAttribute(x Executor, el Element, name string) (int, error) {
	raw, ok, err := x.Attribute(el, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ParseError{Field: name, Raw: ""}
	}
	return parseBound(name, raw)
}

func parseBound(field string, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: field, Raw: raw, Err: err}
	}
	return value, nil
}
