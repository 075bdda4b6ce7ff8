// Package defense implements the defensive performance pipeline: fact
// construction, position-specific rule evaluation, cross-position
// prediction, and final score calculation.
//
// The package is fail-soft by contract: fact construction and evaluation
// never return errors. Malformed numeric input degrades to zero, rule
// evaluation degrades to a 0.0 score, and predictions without a usable
// source position are omitted rather than reported.
package defense

import "github.com/dugoutlabs/fieldscore/internal/domain/model"

// Fact is the normalized per-player-per-position record used as the unit
// of evaluation. Facts are immutable once constructed and live only for
// the analysis pass that produced them.
type Fact struct {
	PlayerName        string
	Position          model.Position
	FieldingPct       float64
	Errors            int
	Putouts           int
	PassedBalls       int     // 0 unless catcher
	CaughtStealingPct float64 // 0 unless catcher
	IsCatcher         bool
	Predicted         bool    // synthesized by the cross-position predictor
	Similarity        float64 // source similarity for predicted facts, 0 otherwise
}

// TotalChances is the denominator for rate-based defensive metrics.
// Never negative.
func (f Fact) TotalChances() int {
	tc := f.Putouts + f.Errors
	if tc < 0 {
		return 0
	}
	return tc
}
