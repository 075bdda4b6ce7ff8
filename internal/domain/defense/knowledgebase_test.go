package defense_test

import (
	"testing"

	"github.com/dugoutlabs/fieldscore/internal/domain/defense"
	"github.com/dugoutlabs/fieldscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAddFact(t *testing.T) {
	Convey("Given a knowledge base", t, func() {
		kb := defense.NewKnowledgeBase()

		Convey("When building a fact for a catcher record", func() {
			rec := model.PlayerRecord{
				"player_name":         "Jane Doe",
				"fielding_pct":        0.995,
				"errors":              1,
				"putouts":             200,
				"passed_balls":        2,
				"caught_stealing_pct": 0.4,
			}
			fact := kb.AddFact(rec, model.Catcher)

			Convey("Then all fields carry over and the catcher flag is set", func() {
				So(fact.PlayerName, ShouldEqual, "Jane Doe")
				So(fact.Position, ShouldEqual, model.Catcher)
				So(fact.FieldingPct, ShouldAlmostEqual, 0.995)
				So(fact.Errors, ShouldEqual, 1)
				So(fact.Putouts, ShouldEqual, 200)
				So(fact.PassedBalls, ShouldEqual, 2)
				So(fact.CaughtStealingPct, ShouldAlmostEqual, 0.4)
				So(fact.IsCatcher, ShouldBeTrue)
			})
		})

		Convey("When the record holds CSV-style string numbers", func() {
			rec := model.PlayerRecord{
				"name":         "John Doe",
				"fielding_pct": "0.950",
				"errors":       "5",
				"putouts":      "150",
			}
			fact := kb.AddFact(rec, model.SecondBase)

			Convey("Then coercion succeeds and the catcher flag is clear", func() {
				So(fact.FieldingPct, ShouldAlmostEqual, 0.950)
				So(fact.Errors, ShouldEqual, 5)
				So(fact.Putouts, ShouldEqual, 150)
				So(fact.IsCatcher, ShouldBeFalse)
			})
		})

		Convey("When the record holds garbage values and no name", func() {
			rec := model.PlayerRecord{
				"fielding_pct": "not-a-number",
				"errors":       []string{"nope"},
			}
			fact := kb.AddFact(rec, model.LeftField)

			Convey("Then fields degrade to zero and the name to a placeholder", func() {
				So(fact.PlayerName, ShouldEqual, "Unknown")
				So(fact.FieldingPct, ShouldEqual, 0.0)
				So(fact.Errors, ShouldEqual, 0)
				So(fact.Putouts, ShouldEqual, 0)
			})
		})
	})
}

func TestEvaluateCatcherRules(t *testing.T) {
	Convey("Given the catcher rule set", t, func() {
		kb := defense.NewKnowledgeBase()

		Convey("When evaluating an all-perfect catcher", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":                "Perfect C",
				"fielding_pct":        1.0,
				"errors":              0,
				"putouts":             100,
				"passed_balls":        0,
				"caught_stealing_pct": 1.0,
			}, model.Catcher)

			Convey("Then all five rules pass", func() {
				So(kb.Evaluate(fact), ShouldAlmostEqual, 1.0)
			})
		})

		Convey("When evaluating an all-worst catcher", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":                "Poor C",
				"fielding_pct":        0.0,
				"errors":              10,
				"putouts":             0,
				"passed_balls":        10,
				"caught_stealing_pct": 0.0,
			}, model.Catcher)

			Convey("Then no rule passes", func() {
				So(kb.Evaluate(fact), ShouldAlmostEqual, 0.0)
			})
		})

		Convey("When a catcher has no total chances", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":                "Bench C",
				"fielding_pct":        1.0,
				"errors":              0,
				"putouts":             0,
				"passed_balls":        4,
				"caught_stealing_pct": 0.3,
			}, model.Catcher)

			Convey("Then the passed-ball rule is treated as passing", func() {
				// fp, passed-ball, caught-stealing, and errors pass; putouts fail.
				So(kb.Evaluate(fact), ShouldAlmostEqual, 0.8)
			})
		})
	})
}

func TestEvaluateGeneralRules(t *testing.T) {
	Convey("Given the general rule set", t, func() {
		kb := defense.NewKnowledgeBase()

		Convey("When evaluating an all-perfect infielder", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Perfect 2B",
				"fielding_pct": 1.0,
				"errors":       0,
				"putouts":      100,
			}, model.SecondBase)

			So(kb.Evaluate(fact), ShouldAlmostEqual, 1.0)
		})

		Convey("When evaluating an all-worst infielder", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Poor 2B",
				"fielding_pct": 0.0,
				"errors":       15,
				"putouts":      0,
			}, model.SecondBase)

			So(kb.Evaluate(fact), ShouldAlmostEqual, 0.0)
		})

		Convey("When an otherwise-worst infielder sits on the error cap", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Cap 2B",
				"fielding_pct": 0.0,
				"errors":       10,
				"putouts":      0,
			}, model.SecondBase)

			Convey("Then exactly the error-count rule passes", func() {
				// errors == 10 is inside the cap; one more pushes it out.
				So(kb.Evaluate(fact), ShouldAlmostEqual, 0.2)

				over := fact
				over.Errors = 11
				So(kb.Evaluate(over), ShouldAlmostEqual, 0.0)
			})
		})

		Convey("When the fielding percentage uses the [0,100] convention", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Percent Scale",
				"fielding_pct": 99.6,
				"errors":       2,
				"putouts":      120,
			}, model.Shortstop)

			Convey("Then it is normalized before the threshold comparison", func() {
				So(kb.Evaluate(fact), ShouldAlmostEqual, 1.0)
			})
		})

		Convey("When inputs are wildly out of range", func() {
			fact := kb.AddFact(model.PlayerRecord{
				"name":         "Chaos",
				"fielding_pct": 150.0,
				"errors":       -5,
				"putouts":      0,
			}, model.ThirdBase)
			score := kb.Evaluate(fact)

			Convey("Then the score stays within [0,1]", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(score, ShouldBeLessThanOrEqualTo, 1.0)
			})
		})
	})
}

func TestRuleDescription(t *testing.T) {
	Convey("Given the rule description accessor", t, func() {
		kb := defense.NewKnowledgeBase()

		Convey("Then catchers and general positions dispatch to distinct texts", func() {
			catcherText := kb.RuleDescription(model.Catcher)
			generalText := kb.RuleDescription(model.Shortstop)
			So(catcherText, ShouldContainSubstring, "passed balls")
			So(generalText, ShouldContainSubstring, "putout rate")
			So(catcherText, ShouldNotEqual, generalText)
		})

		Convey("Then every non-catcher position shares the general text", func() {
			base := kb.RuleDescription(model.FirstBase)
			for _, pos := range model.AllPositions[1:] {
				So(kb.RuleDescription(pos), ShouldEqual, base)
			}
		})
	})
}
