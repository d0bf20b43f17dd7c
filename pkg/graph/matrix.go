package graph

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/wordladder/pkg/ladder"
)

// MatrixJSON is the serialized form of a [ladder.Matrix].
// Distances[i][j] is nil when Words[j] is unreachable from Words[i].
type MatrixJSON struct {
	Words     []string `json:"words"`
	Distances [][]*int `json:"distances"`
}

// FromMatrix converts a matrix to its serialization format.
func FromMatrix(m *ladder.Matrix) MatrixJSON {
	out := MatrixJSON{
		Words:     append([]string{}, m.Words...),
		Distances: make([][]*int, len(m.Distances)),
	}
	for i, row := range m.Distances {
		out.Distances[i] = make([]*int, len(row))
		for j, d := range row {
			if d.Reachable() {
				steps, _ := d.Steps()
				out.Distances[i][j] = &steps
			}
		}
	}
	return out
}

// ToMatrix converts the serialized form back to a matrix.
func (mj MatrixJSON) ToMatrix() (*ladder.Matrix, error) {
	n := len(mj.Words)
	if len(mj.Distances) != n {
		return nil, fmt.Errorf("matrix has %d rows for %d words", len(mj.Distances), n)
	}
	m := &ladder.Matrix{
		Words:     append([]string{}, mj.Words...),
		Distances: make([][]ladder.Distance, n),
	}
	for i, row := range mj.Distances {
		if len(row) != n {
			return nil, fmt.Errorf("matrix row %d has %d cells for %d words", i, len(row), n)
		}
		m.Distances[i] = make([]ladder.Distance, n)
		for j, cell := range row {
			if cell == nil {
				m.Distances[i][j] = ladder.Unreachable
			} else {
				m.Distances[i][j] = ladder.Finite(*cell)
			}
		}
	}
	return m, nil
}

// MarshalMatrix converts a matrix to JSON bytes.
func MarshalMatrix(m *ladder.Matrix) ([]byte, error) {
	return json.Marshal(FromMatrix(m))
}

// UnmarshalMatrix parses JSON bytes produced by [MarshalMatrix].
func UnmarshalMatrix(data []byte) (*ladder.Matrix, error) {
	var mj MatrixJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return nil, err
	}
	return mj.ToMatrix()
}
