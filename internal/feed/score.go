package feed

import "errors"

// RiskLabel buckets a composite risk score.
type RiskLabel string

const (
	RiskLow    RiskLabel = "Low"
	RiskMedium RiskLabel = "Medium"
	RiskHigh   RiskLabel = "High"
)

// ErrGrowthUndefined is returned when week-over-week growth has no defined
// value (zero baseline or too few points).
var ErrGrowthUndefined = errors.New("week-over-week growth undefined")

// RiskScore rates a token from holder count, top-pool liquidity and market
// cap. More holders and deeper liquidity mean lower risk. The score is a
// weighted sum of three capped sub-scores: holders up to 40 points at 100k
// holders, liquidity ratio up to 30 points at 5% of market cap, and market
// cap up to 30 points at $50M.
func RiskScore(holders int, liquidityUSD, marketCapUSD float64) (RiskLabel, float64) {
	holderScore := capAt(float64(holders)/100_000, 1) * 40

	var liquidityRatio float64
	if marketCapUSD > 0 {
		liquidityRatio = liquidityUSD / marketCapUSD * 100
	}
	liquidityScore := capAt(liquidityRatio/5, 1) * 30

	mcapScore := capAt(marketCapUSD/50_000_000, 1) * 30

	total := holderScore + liquidityScore + mcapScore
	switch {
	case total >= 70:
		return RiskLow, total
	case total >= 40:
		return RiskMedium, total
	default:
		return RiskHigh, total
	}
}

// WeekOverWeekGrowth compares the mean daily total of the last seven days
// of an activity series against the first seven. Series shorter than two
// weeks, or with a zero first-week mean, have no defined growth.
func WeekOverWeekGrowth(series []ActivityPoint) (float64, error) {
	if len(series) < 14 {
		return 0, ErrGrowthUndefined
	}

	first := meanTotal(series[:7])
	last := meanTotal(series[len(series)-7:])
	if first == 0 {
		return 0, ErrGrowthUndefined
	}
	return (last/first - 1) * 100, nil
}

// AccumulateDeployments fills in the running total of per-day deployment
// sums across an ordered series. It is applied uniformly to live and
// sample data.
func AccumulateDeployments(series []ActivityPoint) []ActivityPoint {
	running := 0
	for i := range series {
		running += series[i].DeploymentSum()
		series[i].Cumulative = running
	}
	return series
}

func meanTotal(points []ActivityPoint) float64 {
	sum := 0
	for _, p := range points {
		sum += p.TotalTxs
	}
	return float64(sum) / float64(len(points))
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
