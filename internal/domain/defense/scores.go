package defense

import (
	"math"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// maxScore is the upper bound of the rendered score scale.
const maxScore = 100.0

// Evaluator abstracts the knowledge base for the score calculator so the
// fallback path can be exercised independently.
type Evaluator interface {
	Evaluate(fact Fact) float64
}

// ScoreCalculator renders raw [0,1] rule evaluations onto the [0,100]
// scale. It keeps a local duplicate of the rule-counting logic as a
// fallback so that scoring always succeeds even when the knowledge base
// misbehaves; the duplicate is kept in sync by contract, not shared code.
type ScoreCalculator struct {
	kb Evaluator
}

// NewScoreCalculator builds a calculator delegating to the given evaluator.
func NewScoreCalculator(kb Evaluator) *ScoreCalculator {
	return &ScoreCalculator{kb: kb}
}

// CalculateScore converts one fact into a [0,100] score. The knowledge
// base is tried first; a panic or non-finite result switches to the local
// fallback rules. The result is always finite and clamped.
func (c *ScoreCalculator) CalculateScore(fact Fact) float64 {
	raw, ok := c.evaluate(fact)
	if !ok {
		raw = c.fallbackEvaluate(fact)
	}
	return clampUnit(raw) * maxScore
}

// evaluate delegates to the knowledge base, absorbing panics and
// rejecting non-numeric results.
func (c *ScoreCalculator) evaluate(fact Fact) (raw float64, ok bool) {
	defer func() {
		if recover() != nil {
			raw, ok = 0, false
		}
	}()
	if c.kb == nil {
		return 0, false
	}
	raw = c.kb.Evaluate(fact)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}
	return raw, true
}

// fallbackEvaluate duplicates the boolean rule counting of the knowledge
// base. Any change to the rule sets there must be mirrored here.
func (c *ScoreCalculator) fallbackEvaluate(fact Fact) float64 {
	fp := normalizePct(fact.FieldingPct)
	tc := fact.TotalChances()

	met := 0
	if fact.IsCatcher || fact.Position == model.Catcher {
		if fp >= catcherMinFieldingPct {
			met++
		}
		if tc == 0 || float64(fact.PassedBalls)/float64(tc) <= catcherMaxPassedBallPct {
			met++
		}
		if normalizePct(fact.CaughtStealingPct) >= catcherMinCaughtPct {
			met++
		}
		if fact.Errors <= catcherMaxErrors {
			met++
		}
		if fact.Putouts >= catcherMinPutouts {
			met++
		}
	} else {
		if fp >= generalMinFieldingPct {
			met++
		}
		if tc == 0 || float64(fact.Errors)/float64(tc) <= generalMaxErrorRate {
			met++
		}
		if tc > 0 && float64(fact.Putouts)/float64(tc) >= generalMinPutoutRate {
			met++
		}
		if fact.Errors <= generalMaxErrors {
			met++
		}
		if fact.Putouts >= generalMinPutouts {
			met++
		}
	}
	return float64(met) / ruleCount
}

// CalculateAllScores maps every player/position fact through
// CalculateScore. Scoring is fail-soft per entry, so the batch always
// completes with a full table.
func (c *ScoreCalculator) CalculateAllScores(facts map[string]map[model.Position]Fact) map[string]map[model.Position]float64 {
	scores := make(map[string]map[model.Position]float64, len(facts))
	for player, positionFacts := range facts {
		playerScores := make(map[model.Position]float64, len(positionFacts))
		for pos, fact := range positionFacts {
			playerScores[pos] = c.CalculateScore(fact)
		}
		scores[player] = playerScores
	}
	return scores
}
