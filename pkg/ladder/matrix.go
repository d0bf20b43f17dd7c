package ladder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultCap is the value substituted for unreachable pairs by [Matrix.Capped]
// when no other limit is given.
const DefaultCap = 100

// Matrix is a symmetric table of distances between words. Row and column i
// both refer to Words[i]. Unreachable pairs are kept as [Unreachable].
type Matrix struct {
	Words     []string
	Distances [][]Distance
}

// Pair is an unordered pair of words.
type Pair struct {
	A, B string
}

// NewMatrix computes the distance between every pair of words through ix.
// Rows are filled concurrently by up to workers goroutines (GOMAXPROCS when
// workers <= 0); each pair is computed once and mirrored. The context is
// checked between pairs.
func NewMatrix(ctx context.Context, ix *Index, words []string, workers int) (*Matrix, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(words)
	m := &Matrix{
		Words:     words,
		Distances: make([][]Distance, n),
	}
	for i := range m.Distances {
		m.Distances[i] = make([]Distance, n)
		m.Distances[i][i] = Finite(0)
	}

	// Each goroutine owns cells (i, j) and (j, i) for j > i; no two rows
	// write the same cell.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				d := ix.Distance(words[i], words[j])
				m.Distances[i][j] = d
				m.Distances[j][i] = d
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

// Capped returns the matrix as float64 values with unreachable pairs and
// distances above limit replaced by limit. A limit <= 0 uses [DefaultCap].
func (m *Matrix) Capped(limit int) [][]float64 {
	if limit <= 0 {
		limit = DefaultCap
	}
	out := make([][]float64, len(m.Distances))
	for i, row := range m.Distances {
		out[i] = make([]float64, len(row))
		for j, d := range row {
			steps, ok := d.Steps()
			if !ok || steps > limit {
				steps = limit
			}
			out[i][j] = float64(steps)
		}
	}
	return out
}

// Disconnected lists every unordered pair with no connecting ladder, in
// row-major order.
func (m *Matrix) Disconnected() []Pair {
	var out []Pair
	for i := range m.Words {
		for j := i + 1; j < len(m.Words); j++ {
			if !m.Distances[i][j].Reachable() {
				out = append(out, Pair{A: m.Words[i], B: m.Words[j]})
			}
		}
	}
	return out
}

// Adjacent lists every unordered pair at distance exactly 1, in row-major
// order.
func (m *Matrix) Adjacent() []Pair {
	var out []Pair
	for i := range m.Words {
		for j := i + 1; j < len(m.Words); j++ {
			if steps, ok := m.Distances[i][j].Steps(); ok && steps == 1 {
				out = append(out, Pair{A: m.Words[i], B: m.Words[j]})
			}
		}
	}
	return out
}
