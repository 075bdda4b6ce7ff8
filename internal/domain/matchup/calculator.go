package matchup

// Default weighting of the base-score blend. OBP carries the most weight.
const (
	defaultBAWeight  = 0.30
	defaultOBPWeight = 0.40
	defaultSLGWeight = 0.30
	maxScore         = 100.0
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights overrides the base-score blend weights. Non-positive or
// zero-sum weight sets are ignored.
func WithWeights(ba, obp, slg float64) Option {
	return func(c *Calculator) {
		if ba >= 0 && obp >= 0 && slg >= 0 && ba+obp+slg > 0 {
			c.baWeight = ba
			c.obpWeight = obp
			c.slgWeight = slg
		}
	}
}

// Calculator renders matchup scores on the [0,100] scale.
type Calculator struct {
	baWeight  float64
	obpWeight float64
	slgWeight float64
}

// NewCalculator builds a calculator with the default stat weights.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		baWeight:  defaultBAWeight,
		obpWeight: defaultOBPWeight,
		slgWeight: defaultSLGWeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseScore blends the batter's rate stats into a [0,100] score before
// any matchup adjustments.
func (c *Calculator) BaseScore(b Batter) float64 {
	weighted := b.BA*c.baWeight + b.OBP*c.obpWeight + b.SLG*c.slgWeight
	return clampScore(weighted * maxScore)
}

// Score computes the final matchup score: weighted base plus the summed
// rule adjustments, clamped to [0,100].
func (c *Calculator) Score(b Batter, p Pitcher) float64 {
	return clampScore(c.BaseScore(b) + EvaluateAdjustments(b, p))
}

// ScoreAll scores every batter against one pitcher. A batter that cannot
// be scored contributes 0.0 rather than aborting the batch.
func (c *Calculator) ScoreAll(batters []Batter, p Pitcher) map[string]float64 {
	results := make(map[string]float64, len(batters))
	for _, b := range batters {
		results[b.Name] = c.Score(b, p)
	}
	return results
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > maxScore:
		return maxScore
	default:
		return v
	}
}
