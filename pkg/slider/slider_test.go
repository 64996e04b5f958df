package slider

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	width        int
	widthErr     error
	attributes   map[string]string
	attributeErr error
	dragErr      error
	drags        [][2]int
}

func (f *fakeExecutor) Width(Element) (int, error) {
	return f.width, f.widthErr
}

func (f *fakeExecutor) Attribute(_ Element, name string) (string, bool, error) {
	if f.attributeErr != nil {
		return "", false, f.attributeErr
	}
	value, ok := f.attributes[name]
	return value, ok, nil
}

func (f *fakeExecutor) DragBy(_ Element, dx int, dy int) error {
	if f.dragErr != nil {
		return f.dragErr
	}
	f.drags = append(f.drags, [2]int{dx, dy})
	return nil
}

func TestMoveTo(t *testing.T) {
	tt := []struct {
		desc     string
		width    int
		source   RangeSource
		value    int
		expected [2]int
	}{
		{
			desc:     "explicit range",
			width:    100,
			source:   Explicit(0, 10),
			value:    5,
			expected: [2]int{50, 0},
		},
		{
			desc:     "string range",
			width:    100,
			source:   FromStrings("0", "10"),
			value:    2,
			expected: [2]int{20, 0},
		},
		{
			desc:     "attribute range",
			width:    100,
			source:   FromAttributes(),
			value:    5,
			expected: [2]int{50, 0},
		},
		{
			desc:     "inverted explicit range",
			width:    100,
			source:   Explicit(10, 0),
			value:    10,
			expected: [2]int{0, 0},
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			executor := &fakeExecutor{
				width:      tc.width,
				attributes: map[string]string{"min": "0", "max": "10"},
			}
			positioner := NewPositioner(executor, nil)

			err := positioner.MoveTo("#slider", tc.source, tc.value)

			require.NoError(t, err)
			require.Len(t, executor.drags, 1)
			assert.Equal(t, tc.expected, executor.drags[0])
		})
	}
}

func TestMoveToMinAndMax(t *testing.T) {
	executor := &fakeExecutor{width: 250}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveToMin("#slider", Explicit(2, 8))
	require.NoError(t, err)
	err = positioner.MoveToMax("#slider", Explicit(2, 8))
	require.NoError(t, err)

	require.Len(t, executor.drags, 2)
	assert.Equal(t, [2]int{0, 0}, executor.drags[0])
	assert.Equal(t, [2]int{250, 0}, executor.drags[1])
}

func TestMoveToRandom(t *testing.T) {
	executor := &fakeExecutor{
		width:      100,
		attributes: map[string]string{"min": "0", "max": "10"},
	}
	positioner := NewPositioner(executor, rand.New(rand.NewPCG(42, 42)))

	for i := 0; i < 100; i++ {
		err := positioner.MoveToRandom("#slider", FromAttributes())
		require.NoError(t, err)
	}

	require.Len(t, executor.drags, 100)
	for _, drag := range executor.drags {
		assert.GreaterOrEqual(t, drag[0], 0)
		assert.LessOrEqual(t, drag[0], 100)
		assert.Equal(t, 0, drag[1])
	}
}

func TestMoveToRandomInvertedRange(t *testing.T) {
	executor := &fakeExecutor{width: 100}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveToRandom("#slider", Explicit(8, 2))

	assert.ErrorIs(t, err, ErrInvertedRange)
	assert.Empty(t, executor.drags)
}

func TestMoveToZeroSpan(t *testing.T) {
	executor := &fakeExecutor{width: 100}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveTo("#slider", Explicit(5, 5), 5)

	assert.ErrorIs(t, err, ErrZeroSpan)
	assert.Empty(t, executor.drags)
}

func TestMoveToParseFailure(t *testing.T) {
	executor := &fakeExecutor{width: 100}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveTo("#slider", FromStrings("abc", "10"), 5)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "abc")
	assert.Empty(t, executor.drags)
}

func TestMoveToWidthFailure(t *testing.T) {
	widthErr := errors.New("element is not attached to the page document")
	executor := &fakeExecutor{widthErr: widthErr}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveTo("#slider", Explicit(0, 10), 5)

	assert.ErrorIs(t, err, widthErr)
}

func TestMoveToGestureFailurePassesThrough(t *testing.T) {
	executor := &fakeExecutor{width: 100, dragErr: ErrSwipeFailed}
	positioner := NewPositioner(executor, nil)

	err := positioner.MoveTo("#slider", Explicit(0, 10), 5)

	assert.ErrorIs(t, err, ErrSwipeFailed)
}
