package defense_test

import (
	"math"
	"testing"

	"github.com/dugoutlabs/fieldscore/internal/domain/defense"
	"github.com/dugoutlabs/fieldscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// panicEvaluator simulates a knowledge base that blows up.
type panicEvaluator struct{}

func (panicEvaluator) Evaluate(defense.Fact) float64 { panic("rule explosion") }

// nanEvaluator simulates a knowledge base returning a non-numeric score.
type nanEvaluator struct{}

func (nanEvaluator) Evaluate(defense.Fact) float64 { return math.NaN() }

func TestCalculateScore(t *testing.T) {
	Convey("Given a score calculator over the real knowledge base", t, func() {
		kb := defense.NewKnowledgeBase()
		calc := defense.NewScoreCalculator(kb)

		Convey("When scoring an all-perfect general fact", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Perfect",
				"fielding_pct": 1.0,
				"errors":       0,
				"putouts":      100,
			}, model.SecondBase)

			So(calc.CalculateScore(fact), ShouldAlmostEqual, 100.0)
		})

		Convey("When scoring an all-worst catcher fact", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":                "Poor",
				"fielding_pct":        0.0,
				"errors":              10,
				"putouts":             0,
				"passed_balls":        10,
				"caught_stealing_pct": 0.0,
			}, model.Catcher)

			So(calc.CalculateScore(fact), ShouldAlmostEqual, 0.0)
		})

		Convey("When inputs are far out of range", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Chaos",
				"fielding_pct": 150.0,
				"errors":       -5,
				"putouts":      99999,
			}, model.LeftField)
			score := calc.CalculateScore(fact)

			Convey("Then the score stays within [0,100]", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(score, ShouldBeLessThanOrEqualTo, 100.0)
			})
		})
	})

	Convey("Given a knowledge base that panics", t, func() {
		calc := defense.NewScoreCalculator(panicEvaluator{})
		perfect := defense.Fact{
			PlayerName:  "Perfect",
			Position:    model.SecondBase,
			FieldingPct: 1.0,
			Putouts:     100,
		}

		Convey("Then the local fallback rules still produce the right score", func() {
			So(calc.CalculateScore(perfect), ShouldAlmostEqual, 100.0)
		})
	})

	Convey("Given a knowledge base that returns NaN", t, func() {
		calc := defense.NewScoreCalculator(nanEvaluator{})
		fact := defense.Fact{
			PlayerName:        "Perfect C",
			Position:          model.Catcher,
			FieldingPct:       1.0,
			Putouts:           100,
			CaughtStealingPct: 1.0,
			IsCatcher:         true,
		}

		Convey("Then the fallback takes over and scoring succeeds", func() {
			So(calc.CalculateScore(fact), ShouldAlmostEqual, 100.0)
		})
	})
}

func TestCalculateAllScores(t *testing.T) {
	Convey("Given facts for multiple players", t, func() {
		kb := defense.NewKnowledgeBase()
		calc := defense.NewScoreCalculator(kb)
		evaluator := defense.NewPositionEvaluator(kb, defense.NewPredictor())

		records := []model.PlayerRecord{
			{
				"name":         "Slick Mitts",
				"fielding_pct": 0.996,
				"errors":       5,
				"putouts":      1147,
				"positions":    []string{"1B"},
			},
			{
				"name":         "Rag Arm",
				"fielding_pct": 0.91,
				"errors":       12,
				"putouts":      40,
				"positions":    "3B",
			},
		}
		facts := evaluator.EvaluateAllPlayers(records, true)

		Convey("When scoring the whole table", func() {
			scores := calc.CalculateAllScores(facts)

			Convey("Then the played position has a score in range", func() {
				score, have := scores["Slick Mitts"][model.FirstBase]
				So(have, ShouldBeTrue)
				So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(score, ShouldBeLessThanOrEqualTo, 100.0)
			})

			Convey("Then every other position is either scored in range or absent", func() {
				for _, playerScores := range scores {
					for _, score := range playerScores {
						So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
						So(score, ShouldBeLessThanOrEqualTo, 100.0)
					}
				}
			})

			Convey("Then the output mirrors the fact table shape", func() {
				So(len(scores), ShouldEqual, len(facts))
				So(len(scores["Slick Mitts"]), ShouldEqual, len(facts["Slick Mitts"]))
			})
		})
	})
}
