package slider

import "fmt"

// PickValue returns a value picked uniformly at random from [min, max],
// bounds included. Unlike the offset calculation, the picker needs a
// non-negative span: min > max fails with ErrInvertedRange.
func (p *Positioner) PickValue(min int, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("cannot pick a value from [%d, %d]: %w", min, max, ErrInvertedRange)
	}

	p.rngMutex.Lock()
	defer p.rngMutex.Unlock()
	return min + p.rng.IntN(max-min+1), nil
}
