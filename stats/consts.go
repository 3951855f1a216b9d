package stats

const (
	// BaseAlpha is the default significance level.
	BaseAlpha = 0.05
	// BaseZStar is the z* value for the default level.
	BaseZStar = 2.325

	// DefaultBins is the bin count used when bucketing raw data,
	// matching numpy's historic histogram default.
	DefaultBins = 10

	// MinCleanPointCnt is the smallest sample CleanSeries accepts;
	// leave-one-out intervals on fewer points are meaningless.
	MinCleanPointCnt = 5
)

// zStarRows holds the two-sided confidence level -> z* reference pairs.
var zStarRows = []struct {
	Level string
	ZStar float64
}{
	{"99%", 2.576},
	{"98%", 2.326},
	{"95%", 1.960},
	{"90%", 1.645},
}
