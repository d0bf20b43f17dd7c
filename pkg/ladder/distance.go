package ladder

import (
	"encoding/json"
	"strconv"
)

// Distance is the length of a shortest word ladder between two words, or
// [Unreachable] when no ladder exists. The zero value is Unreachable.
type Distance struct {
	steps     int
	reachable bool
}

// Unreachable is the distance between words with no connecting ladder.
var Unreachable = Distance{}

// Finite returns a reachable distance of n steps. Negative n is clamped to 0.
func Finite(n int) Distance {
	if n < 0 {
		n = 0
	}
	return Distance{steps: n, reachable: true}
}

// Reachable reports whether the distance is finite.
func (d Distance) Reachable() bool { return d.reachable }

// Steps returns the number of edits and whether the distance is finite.
func (d Distance) Steps() (int, bool) { return d.steps, d.reachable }

// Less reports whether d is strictly shorter than o. Every finite distance
// is shorter than Unreachable.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.steps < o.steps
	}
}

// String renders finite distances as integers and Unreachable as "∞".
func (d Distance) String() string {
	if !d.reachable {
		return "∞"
	}
	return strconv.Itoa(d.steps)
}

// MarshalJSON encodes finite distances as numbers and Unreachable as null.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.reachable {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.steps)), nil
}

// UnmarshalJSON accepts a non-negative number or null.
func (d *Distance) UnmarshalJSON(data []byte) error {
	var n *int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n == nil {
		*d = Unreachable
		return nil
	}
	*d = Finite(*n)
	return nil
}
