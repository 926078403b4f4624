package turns

import (
	"github.com/sartorproj/goturns/sequence"
)

// Collapse merges runs of consecutive equal values into a single value,
// keeping the first occurrence of each run. Equality is exact; no
// tolerance is applied. The result never has two equal adjacent
// elements and is at most as long as the input. Every input element
// must be a finite real number; otherwise sequence.ErrNonNumeric is
// returned, wherever in the input the bad value occurs.
func Collapse(values []float64) ([]float64, error) {
	if err := sequence.Validate(values); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	out := make([]float64, 0, len(values))
	out = append(out, values[0])
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out, nil
}

// CountTurns counts the turning points (local peaks and troughs) of the
// sequence after collapsing runs of equal values. A sequence whose
// collapsed form has fewer than three elements has no interior points
// and counts zero turns. The count is a pure function of the input.
func CountTurns(values []float64) (int, error) {
	collapsed, err := Collapse(values)
	if err != nil {
		return 0, err
	}
	return countCollapsed(collapsed), nil
}

// countCollapsed counts turning points of an already collapsed
// sequence. Because no two adjacent elements are equal, each interior
// point is a peak, a trough, or monotone; at most one condition holds.
func countCollapsed(collapsed []float64) int {
	n := len(collapsed)
	if n < 3 {
		return 0
	}
	count := 0
	for i := 1; i <= n-2; i++ {
		prev, cur, next := collapsed[i-1], collapsed[i], collapsed[i+1]
		trough := prev > cur && next > cur
		peak := prev < cur && next < cur
		if trough || peak {
			count++
		}
	}
	return count
}
