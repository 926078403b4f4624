// Package turns implements Kendall's turning-point test for randomness
// of a numeric sequence.
//
// The test counts local peaks and troughs (turns) in a sequence after
// merging runs of equal consecutive values, and compares the observed
// count against the count expected under random ordering using a
// normal approximation.
//
// # Counting Turns
//
// Count turns of a raw sequence:
//
//	observed, err := turns.CountTurns(values)
//
// The sequence [0,0,1,1,0,1,1,1,0,1] collapses to [0,1,0,1,0,1] and
// counts 4 turns (two peaks, two troughs).
//
// # Running the Test
//
// An Analyzer composes a sequence store and a z-test:
//
//	analyzer := turns.NewAnalyzer(nil, nil)
//	analyzer.Store().Load("gatlin", values)
//
//	result, err := analyzer.Test(turns.FromStore(), turns.DefaultOptions())
//	fmt.Printf("observed=%d expected=%.3f p=%.4f\n",
//	    result.Observed, result.Expected, result.PValue)
//
// Data can also be supplied directly, or as a bare trial count for the
// closed-form statistics:
//
//	p, err := analyzer.PValue(turns.WithValues(values), nil)
//	e, err := analyzer.Expected(turns.WithN(54))
//
// # Formulas
//
// For a random sequence of n trials (after collapsing):
//
//	E[turns]   = 2/3·(n−2)
//	Var[turns] = (16n−29)/90
//
// Both are defined for any n; very small n yields degenerate negative
// values, which is accepted rather than treated as an error.
package turns
