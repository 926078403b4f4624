package turns

import (
	"fmt"
	"math"

	"github.com/sartorproj/goturns/sequence"
	"github.com/sartorproj/goturns/ztest"
)

// Expected returns the expected number of turns in a random sequence of
// n trials: 2/3·(n−2). Defined for any n; small n yields negative
// values, which is an accepted mathematical degeneracy rather than an
// error.
func Expected(n int) float64 {
	return 2.0 / 3.0 * float64(n-2)
}

// Variance returns the variance of the turn count of a random sequence
// of n trials: (16n−29)/90. Same degeneracy acceptance as Expected.
func Variance(n int) float64 {
	return (16.0*float64(n) - 29.0) / 90.0
}

// A Source names where a statistic operation gets its sequence or trial
// count from. Exactly one of three modes applies, with fixed priority:
// an explicit trial count, explicit values, or a sequence held in the
// analyzer's store. The zero value reads the first loaded sequence.
type Source struct {
	n         int
	hasN      bool
	values    []float64
	hasValues bool
	sel       sequence.Selector
}

// WithN supplies an explicit trial count. Operations that need actual
// data, such as counting observed turns, fail with sequence.ErrNoData
// for a count-only source.
func WithN(n int) Source {
	return Source{n: n, hasN: true}
}

// WithValues supplies an explicit data sequence. The trial count is the
// length of its collapsed form.
func WithValues(values []float64) Source {
	return Source{values: values, hasValues: true}
}

// FromStore reads the sequence identified by sel from the analyzer's
// store; with no selector the first loaded sequence is used.
func FromStore(sel ...sequence.Selector) Source {
	var s Source
	if len(sel) > 0 {
		s.sel = sel[0]
	}
	return s
}

// A ZTester converts an observed count and its normal approximation
// into a z-score and p-value. *ztest.Normal satisfies it; tests can
// substitute a fake.
type ZTester interface {
	Evaluate(observed, expected, variance float64, cfg ztest.Config) (ztest.Result, error)
}

// Options control a z-score or p-value computation.
type Options struct {
	// Observed overrides the counted number of turns when non-nil.
	Observed *int

	// Config is passed through to the z-test.
	Config ztest.Config
}

// DefaultOptions returns the conventional options: continuity
// correction on, two-tailed, full precision, no override.
func DefaultOptions() *Options {
	return &Options{Config: ztest.DefaultConfig()}
}

// An Analyzer runs the turning-point test. It composes a sequence
// store and a z-test; both are explicit dependencies, injected at
// construction. An Analyzer is safe for concurrent use.
type Analyzer struct {
	store *sequence.Store
	zt    ZTester
}

// NewAnalyzer creates an analyzer over store using zt for z-score
// derivation. A nil store gets a fresh empty store; a nil zt gets the
// standard normal z-test.
func NewAnalyzer(store *sequence.Store, zt ZTester) *Analyzer {
	if store == nil {
		store = sequence.NewStore()
	}
	if zt == nil {
		zt = ztest.New()
	}
	return &Analyzer{store: store, zt: zt}
}

// Store returns the analyzer's sequence store, for loading data.
func (a *Analyzer) Store() *sequence.Store {
	return a.store
}

// resolve turns a Source into a collapsed sequence and trial count.
// collapsed is nil for a count-only source.
func (a *Analyzer) resolve(src Source) (collapsed []float64, n int, err error) {
	switch {
	case src.hasN:
		return nil, src.n, nil
	case src.hasValues:
		collapsed, err = Collapse(src.values)
		if err != nil {
			return nil, 0, err
		}
		return collapsed, len(collapsed), nil
	default:
		seq, err := a.store.Read(src.sel)
		if err != nil {
			return nil, 0, err
		}
		collapsed, err = Collapse(seq.Values)
		if err != nil {
			return nil, 0, err
		}
		return collapsed, len(collapsed), nil
	}
}

// Observed counts the turns of the resolved sequence.
func (a *Analyzer) Observed(src Source) (int, error) {
	collapsed, _, err := a.resolve(src)
	if err != nil {
		return 0, err
	}
	if collapsed == nil {
		return 0, fmt.Errorf("a trial count alone has no observable turns: %w", sequence.ErrNoData)
	}
	return countCollapsed(collapsed), nil
}

// Expected returns the expected turn count for the resolved trial
// count.
func (a *Analyzer) Expected(src Source) (float64, error) {
	_, n, err := a.resolve(src)
	if err != nil {
		return 0, err
	}
	return Expected(n), nil
}

// Variance returns the turn-count variance for the resolved trial
// count.
func (a *Analyzer) Variance(src Source) (float64, error) {
	_, n, err := a.resolve(src)
	if err != nil {
		return 0, err
	}
	return Variance(n), nil
}

// ObsDev returns observed − expected, with both sides resolved from the
// same source.
func (a *Analyzer) ObsDev(src Source) (float64, error) {
	collapsed, n, err := a.resolve(src)
	if err != nil {
		return 0, err
	}
	if collapsed == nil {
		return 0, fmt.Errorf("a trial count alone has no observable turns: %w", sequence.ErrNoData)
	}
	return float64(countCollapsed(collapsed)) - Expected(n), nil
}

// StDev returns the standard deviation of the turn count for the
// resolved trial count. For n ≤ 1 the variance is negative and StDev
// fails with ztest.ErrDomain rather than returning NaN.
func (a *Analyzer) StDev(src Source) (float64, error) {
	_, n, err := a.resolve(src)
	if err != nil {
		return 0, err
	}
	v := Variance(n)
	if v < 0 {
		return 0, fmt.Errorf("variance %v is negative for %d trials: %w", v, n, ztest.ErrDomain)
	}
	return math.Sqrt(v), nil
}

// ZScore resolves the observed turn count and trial count from src and
// delegates to the z-test. The observed count is the override in opts
// when set, otherwise the counted turns of the resolved sequence. A nil
// opts uses DefaultOptions.
func (a *Analyzer) ZScore(src Source, opts *Options) (ztest.Result, error) {
	observed, n, err := a.resolveObserved(src, opts)
	if err != nil {
		return ztest.Result{}, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	return a.zt.Evaluate(float64(observed), Expected(n), Variance(n), opts.Config)
}

// PValue runs the turning-point test and returns the probability of a
// turn count at least as extreme as the observed one under the null
// hypothesis of random ordering. It forwards to ZScore and selects the
// p-value component.
func (a *Analyzer) PValue(src Source, opts *Options) (float64, error) {
	res, err := a.ZScore(src, opts)
	if err != nil {
		return 0, err
	}
	return res.P, nil
}

// Test runs the full turning-point test and bundles every derived
// statistic into a Result. The Result is created fresh per call and
// owned by the caller; no error leaves a partial Result.
func (a *Analyzer) Test(src Source, opts *Options) (*Result, error) {
	observed, n, err := a.resolveObserved(src, opts)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	expected := Expected(n)
	variance := Variance(n)
	zres, err := a.zt.Evaluate(float64(observed), expected, variance, opts.Config)
	if err != nil {
		return nil, err
	}

	return &Result{
		Observed: observed,
		Expected: expected,
		Variance: variance,
		ObsDev:   float64(observed) - expected,
		StDev:    math.Sqrt(variance),
		ZScore:   zres.Z,
		PValue:   zres.P,
	}, nil
}

// resolveObserved resolves the observed count and trial count for a
// z-score computation from one consistent source resolution.
func (a *Analyzer) resolveObserved(src Source, opts *Options) (observed, n int, err error) {
	collapsed, n, err := a.resolve(src)
	if err != nil {
		return 0, 0, err
	}
	if opts != nil && opts.Observed != nil {
		return *opts.Observed, n, nil
	}
	if collapsed == nil {
		return 0, 0, fmt.Errorf("a trial count alone has no observable turns: %w", sequence.ErrNoData)
	}
	return countCollapsed(collapsed), n, nil
}
