// Package goturns provides Kendall's turning-point (turns) test for
// randomness of numeric sequences.
//
// GoTurns counts local peaks and troughs in a sequence, compares the
// observed count against the count expected under a null hypothesis of
// random ordering, and derives a continuity-corrected z-score and
// p-value from the normal approximation.
//
// # Features
//
//   - Turn counting with run-length collapsing of equal neighbors
//   - Expected value and variance of the turn count under randomness
//   - Continuity-corrected one- and two-tailed z-test
//   - In-memory store for multiple named sequences
//   - CSV and YAML dataset loading
//   - Key/value report rendering with configurable precision
//
// # Quick Start
//
// Run the test on a slice of values:
//
//	analyzer := turns.NewAnalyzer(nil, nil)
//	result, err := analyzer.Test(turns.WithValues(values), turns.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("observed=%d expected=%.3f z=%.4f p=%.4f\n",
//	    result.Observed, result.Expected, result.ZScore, result.PValue)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - turns: turn counting, test statistics, and report rendering
//   - sequence: sequence containers, loading, and the in-memory store
//   - ztest: continuity-corrected normal z-test
//
// # References
//
//   - Kendall, M.G., & Stuart, A. (1976). The Advanced Theory of Statistics, Vol. 3
//   - Bradley, J.V. (1968). Distribution-Free Statistical Tests
package goturns
