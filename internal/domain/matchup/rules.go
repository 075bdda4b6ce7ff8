package matchup

// A Rule inspects one batter-pitcher pairing and returns a score
// adjustment in points on the [0,100] scale: positive for an advantage,
// negative for a penalty, zero when the rule does not apply. Rules are
// independent of each other and of the base score.
type Rule func(Batter, Pitcher) float64

// handednessRule: same-handed matchups penalize the batter, opposite
// hands give a small bonus, switch hitters are unaffected.
func handednessRule(b Batter, p Pitcher) float64 {
	if b.IsSwitchHitter() {
		return 0
	}
	pitcherHand := RightHanded
	if p.ThrowsLeft() {
		pitcherHand = LeftHanded
	}
	if b.Handedness == pitcherHand {
		return -15.0
	}
	return 5.0
}

// obpWalkRule: a high-OBP batter against a wild pitcher draws walks.
func obpWalkRule(b Batter, p Pitcher) float64 {
	if b.OBP > 0.350 && p.WalkRate > 0.10 {
		return 8.0
	}
	return 0
}

// powerVsERARule: power bats punish pitchers who give up runs.
func powerVsERARule(b Batter, p Pitcher) float64 {
	if b.SLG > 0.500 {
		if p.ERA > 4.00 {
			return 10.0
		}
		if p.ERA > 3.00 {
			return 5.0
		}
	}
	return 0
}

// strikeoutRule: strikeout-prone batters struggle against strikeout
// pitchers; contact hitters hold their own.
func strikeoutRule(b Batter, p Pitcher) float64 {
	if p.KRate > 0.30 {
		if b.Strikeouts > 150 {
			return -8.0
		}
		if b.Strikeouts < 100 {
			return 5.0
		}
	}
	return 0
}

// obpVsWHIPRule: on-base machines feast on pitchers who allow traffic.
func obpVsWHIPRule(b Batter, p Pitcher) float64 {
	if b.OBP > 0.400 && p.WHIP > 1.30 {
		return 7.0
	}
	return 0
}

// eliteBatterRule: elite slash lines earn a bonus regardless of pitcher.
func eliteBatterRule(b Batter, _ Pitcher) float64 {
	if b.BA > 0.300 && b.OBP > 0.400 && b.SLG > 0.500 {
		return 6.0
	}
	return 0
}

// elitePitcherRule: dominant pitchers suppress every batter.
func elitePitcherRule(_ Batter, p Pitcher) float64 {
	if p.ERA < 2.50 && p.WHIP < 1.00 && p.KRate > 0.30 {
		return -12.0
	}
	if p.ERA < 3.00 && p.WHIP < 1.10 && p.KRate > 0.25 {
		return -6.0
	}
	return 0
}

// powerHitterRule: big home-run totals against a hittable pitcher.
func powerHitterRule(b Batter, p Pitcher) float64 {
	if b.HomeRuns > 30 && b.SLG > 0.500 && p.ERA > 4.00 {
		return 9.0
	}
	return 0
}

// contactHitterRule: low-strikeout, high-average hitters neutralize
// strikeout pitchers.
func contactHitterRule(b Batter, p Pitcher) float64 {
	if b.Strikeouts < 100 && b.BA > 0.300 && p.KRate > 0.30 {
		return 7.0
	}
	return 0
}

// AllRules returns the full fixed rule set in evaluation order.
func AllRules() []Rule {
	return []Rule{
		handednessRule,
		obpWalkRule,
		powerVsERARule,
		strikeoutRule,
		obpVsWHIPRule,
		eliteBatterRule,
		elitePitcherRule,
		powerHitterRule,
		contactHitterRule,
	}
}

// EvaluateAdjustments sums every rule's adjustment for one matchup.
// Individual rules are independent; none can abort the evaluation.
func EvaluateAdjustments(b Batter, p Pitcher) float64 {
	total := 0.0
	for _, rule := range AllRules() {
		total += rule(b, p)
	}
	return total
}
