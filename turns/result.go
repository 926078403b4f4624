package turns

// Result represents the outcome of a turning-point test. It is
// immutable once computed and never shared between invocations.
type Result struct {
	Observed int     // Counted turns of the collapsed sequence
	Expected float64 // Expected turns under random ordering: 2/3·(n−2)
	Variance float64 // Variance of the turn count: (16n−29)/90
	ObsDev   float64 // Observed − Expected
	StDev    float64 // sqrt(Variance)
	ZScore   float64 // Continuity-corrected z-score
	PValue   float64 // One- or two-tailed probability
}
