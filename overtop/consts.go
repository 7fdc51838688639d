package overtop

const (
	// sliding window length and the single full span window length are
	// fixed by the analysis convention, only the stride is configurable
	WindowLength   = 30
	FullSpanLength = 50

	// sliding windows cover start offsets 0..SlidingRange
	SlidingRange = FullSpanLength - WindowLength

	DefaultStep = 1

	// serialized placeholder for a window whose fit failed
	MissingMarker = "NA"

	// finite sentinel return period when the exceedance risk is zero
	MaxReturnPeriod = 1e12
)
