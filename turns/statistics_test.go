package turns

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goturns/sequence"
	"github.com/sartorproj/goturns/ztest"
)

// gatlin holds the 56 Gatlin measurement values, the reference dataset
// for the turning-point test.
var gatlin = []float64{
	15.2, 16.9, 15.3, 14.9, 15.7, 15.1, 16.7, 16.3, 16.5, 13.3, 16.5, 15.0,
	15.9, 15.5, 16.9, 16.4, 14.9, 14.5, 16.6, 15.1, 14.6, 16.0, 16.8, 16.8,
	15.5, 17.3, 15.5, 15.5, 14.2, 15.8, 15.7, 14.1, 14.8, 14.4, 15.6, 13.9,
	14.7, 14.3, 14.0, 14.5, 15.4, 15.3, 16.0, 16.4, 17.2, 17.8, 14.4, 15.0,
	16.0, 16.8, 16.9, 16.6, 16.2, 14.0, 18.1, 17.5,
}

func TestExpectedFormula(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 54, 1000} {
		assert.Equal(t, 2.0/3.0*float64(n-2), Expected(n), "n=%d", n)
	}
}

func TestVarianceFormula(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 54, 1000} {
		assert.Equal(t, (16.0*float64(n)-29.0)/90.0, Variance(n), "n=%d", n)
	}
}

func TestDegenerateSmallN(t *testing.T) {
	// Small trial counts yield negative expected values and variances;
	// these are accepted, not errors.
	assert.Less(t, Expected(1), 0.0)
	assert.Less(t, Variance(1), 0.0)
	assert.Equal(t, 0.0, Expected(2))
}

func TestGatlinReference(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	result, err := analyzer.Test(WithValues(gatlin), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 35, result.Observed)
	assert.InDelta(t, 34.667, result.Expected, 0.01)
	assert.InDelta(t, 9.278, result.Variance, 0.01)
	assert.InDelta(t, 3.04, result.StDev, 0.01)
	assert.InDelta(t, 35-34.667, result.ObsDev, 0.01)
	assert.InDelta(t, -0.0547, result.ZScore, 0.01)
	assert.InDelta(t, 0.9564, result.PValue, 0.01)
}

func TestGatlinThroughStore(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)
	require.NoError(t, analyzer.Store().Load("gatlin", gatlin))

	p, err := analyzer.PValue(FromStore(sequence.ByName("gatlin")), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.9564, p, 0.01)

	// Default selector reads the first loaded sequence.
	p, err = analyzer.PValue(FromStore(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.9564, p, 0.01)
}

func TestSourceExplicitN(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	e, err := analyzer.Expected(WithN(54))
	require.NoError(t, err)
	assert.InDelta(t, 34.667, e, 0.001)

	v, err := analyzer.Variance(WithN(54))
	require.NoError(t, err)
	assert.InDelta(t, 9.278, v, 0.001)

	sd, err := analyzer.StDev(WithN(54))
	require.NoError(t, err)
	assert.InDelta(t, 3.046, sd, 0.001)

	// A bare count has no observable data.
	_, err = analyzer.Observed(WithN(54))
	assert.ErrorIs(t, err, sequence.ErrNoData)

	_, err = analyzer.ObsDev(WithN(54))
	assert.ErrorIs(t, err, sequence.ErrNoData)
}

func TestSourceUsesCollapsedLength(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	// [1,1,2,2,3] collapses to [1,2,3]: n=3.
	e, err := analyzer.Expected(WithValues([]float64{1, 1, 2, 2, 3}))
	require.NoError(t, err)
	assert.InDelta(t, Expected(3), e, 1e-12)
}

func TestSourceNoData(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	_, err := analyzer.Expected(FromStore())
	assert.ErrorIs(t, err, sequence.ErrNoData)

	_, err = analyzer.Test(Source{}, nil)
	assert.ErrorIs(t, err, sequence.ErrNoData)
}

func TestObsDev(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	got, err := analyzer.ObsDev(WithValues(gatlin))
	require.NoError(t, err)

	observed, err := CountTurns(gatlin)
	require.NoError(t, err)
	collapsed, err := Collapse(gatlin)
	require.NoError(t, err)

	assert.InDelta(t, float64(observed)-Expected(len(collapsed)), got, 1e-12)
}

func TestStDevNegativeVariance(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	_, err := analyzer.StDev(WithN(1))
	assert.ErrorIs(t, err, ztest.ErrDomain)

	// n=2 has positive variance: (32−29)/90.
	sd, err := analyzer.StDev(WithN(2))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3.0/90.0), sd, 1e-12)
}

func TestObservedOverride(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	override := 30
	opts := DefaultOptions()
	opts.Observed = &override

	result, err := analyzer.Test(WithValues(gatlin), opts)
	require.NoError(t, err)
	assert.Equal(t, 30, result.Observed)
	assert.InDelta(t, 30-34.667, result.ObsDev, 0.01)

	// An override also makes a count-only source testable.
	res, err := analyzer.ZScore(WithN(54), opts)
	require.NoError(t, err)
	assert.Equal(t, result.ZScore, res.Z)
}

// fakeZTester records the arguments it was called with.
type fakeZTester struct {
	observed, expected, variance float64
	cfg                          ztest.Config
	result                       ztest.Result
}

func (f *fakeZTester) Evaluate(observed, expected, variance float64, cfg ztest.Config) (ztest.Result, error) {
	f.observed = observed
	f.expected = expected
	f.variance = variance
	f.cfg = cfg
	return f.result, nil
}

func TestZTesterInjection(t *testing.T) {
	fake := &fakeZTester{result: ztest.Result{Z: -1.5, P: 0.25}}
	analyzer := NewAnalyzer(nil, fake)

	result, err := analyzer.Test(WithValues(gatlin), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, -1.5, result.ZScore)
	assert.Equal(t, 0.25, result.PValue)
	assert.Equal(t, 35.0, fake.observed)
	assert.InDelta(t, 34.667, fake.expected, 0.001)
	assert.InDelta(t, 9.278, fake.variance, 0.001)
	assert.True(t, fake.cfg.CCorr)
	assert.Equal(t, 2, fake.cfg.Tails)
}

func TestPValueForwardsZScore(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	res, err := analyzer.ZScore(WithValues(gatlin), nil)
	require.NoError(t, err)
	p, err := analyzer.PValue(WithValues(gatlin), nil)
	require.NoError(t, err)

	assert.Equal(t, res.P, p)
}

func TestTestNoPartialResult(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil)

	// n=1 gives negative variance; the z-test rejects it and no Result
	// is returned.
	override := 3
	opts := DefaultOptions()
	opts.Observed = &override

	result, err := analyzer.Test(WithN(1), opts)
	assert.ErrorIs(t, err, ztest.ErrDomain)
	assert.Nil(t, result)
}
