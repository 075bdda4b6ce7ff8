package defense

import (
	"math"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// ruleCount is the number of boolean predicates in each rule set. The
// raw score is the fraction of predicates that hold, so every criterion
// carries equal weight and "how many bars were cleared" stays legible.
const ruleCount = 5

// Rule thresholds for the catcher rule set.
const (
	catcherMinFieldingPct   = 0.95
	catcherMaxPassedBallPct = 0.01
	catcherMinCaughtPct     = 0.25
	catcherMaxErrors        = 5
	catcherMinPutouts       = 100
)

// Rule thresholds for the general (non-catcher) rule set.
const (
	generalMinFieldingPct = 0.95
	generalMaxErrorRate   = 0.05
	generalMinPutoutRate  = 0.80
	generalMaxErrors      = 10
	generalMinPutouts     = 50
)

// unknownPlayerName is the placeholder used when a record carries no name.
const unknownPlayerName = "Unknown"

const catcherRuleText = "Catcher rules (each worth 1/5): fielding pct >= 0.95; " +
	"passed balls per total chance <= 0.01; caught-stealing pct >= 0.25; " +
	"errors <= 5; putouts >= 100."

const generalRuleText = "General rules (each worth 1/5): fielding pct >= 0.95; " +
	"error rate <= 0.05 of total chances; putout rate >= 0.80 of total chances; " +
	"errors <= 10; putouts >= 50."

// KnowledgeBase evaluates defensive facts against position-specific
// boolean rule sets. It is stateless and safe for concurrent use.
type KnowledgeBase struct{}

// NewKnowledgeBase returns a ready-to-use knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{}
}

// AddFact builds a Fact for one player at one position. It is a pure
// transform and never fails: numeric fields that cannot be coerced
// degrade to zero, and a missing name degrades to a placeholder.
func (kb *KnowledgeBase) AddFact(rec model.PlayerRecord, pos model.Position) Fact {
	name := rec.Name()
	if name == "" {
		name = unknownPlayerName
	}
	return Fact{
		PlayerName:        name,
		Position:          pos,
		FieldingPct:       rec.Float(model.KeyFieldingPct),
		Errors:            rec.Int(model.KeyErrors),
		Putouts:           rec.Int(model.KeyPutouts),
		PassedBalls:       rec.Int(model.KeyPassedBalls),
		CaughtStealingPct: rec.Float(model.KeyCaughtStealingPct),
		IsCatcher:         pos == model.Catcher,
	}
}

// Evaluate scores a fact against the rule set for its position and
// returns the fraction of rules satisfied, clamped to [0,1]. Dispatch is
// a closed two-way switch: catchers get the catcher rule set, everything
// else the general one.
func (kb *KnowledgeBase) Evaluate(fact Fact) float64 {
	if fact.IsCatcher || fact.Position == model.Catcher {
		return kb.catcherRuleScore(fact)
	}
	return kb.generalRuleScore(fact)
}

func (kb *KnowledgeBase) catcherRuleScore(fact Fact) float64 {
	fp := normalizePct(fact.FieldingPct)
	cs := normalizePct(fact.CaughtStealingPct)
	tc := fact.TotalChances()

	// With no chances the passed-ball rate is 0.0 and the rule passes.
	passedBallRate := 0.0
	if tc > 0 {
		passedBallRate = float64(fact.PassedBalls) / float64(tc)
	}

	rules := []bool{
		fp >= catcherMinFieldingPct,
		passedBallRate <= catcherMaxPassedBallPct,
		cs >= catcherMinCaughtPct,
		fact.Errors <= catcherMaxErrors,
		fact.Putouts >= catcherMinPutouts,
	}
	return ruleFraction(rules)
}

func (kb *KnowledgeBase) generalRuleScore(fact Fact) float64 {
	fp := normalizePct(fact.FieldingPct)
	tc := fact.TotalChances()

	errorRate := 0.0
	putoutRate := 0.0
	if tc > 0 {
		errorRate = float64(fact.Errors) / float64(tc)
		putoutRate = float64(fact.Putouts) / float64(tc)
	}

	rules := []bool{
		fp >= generalMinFieldingPct,
		errorRate <= generalMaxErrorRate,
		putoutRate >= generalMinPutoutRate,
		fact.Errors <= generalMaxErrors,
		fact.Putouts >= generalMinPutouts,
	}
	return ruleFraction(rules)
}

// RuleDescription returns the fixed human-readable rule text for the
// rule set a position dispatches to. Diagnostic accessor only.
func (kb *KnowledgeBase) RuleDescription(pos model.Position) string {
	if pos == model.Catcher {
		return catcherRuleText
	}
	return generalRuleText
}

// ruleFraction counts satisfied predicates and returns the clamped
// fraction in [0,1].
func ruleFraction(rules []bool) float64 {
	met := 0
	for _, ok := range rules {
		if ok {
			met++
		}
	}
	return clampUnit(float64(met) / ruleCount)
}

// normalizePct accepts either [0,1] or [0,100] percentage conventions:
// values above 1.0 are divided by 100, then clamped to [0,1].
func normalizePct(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1.0 {
		v /= 100.0
	}
	return clampUnit(v)
}

// clampUnit clamps v to [0,1], treating NaN as 0.
func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
