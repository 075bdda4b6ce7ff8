package defense

import (
	"math"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// Predictor synthesizes defensive facts for positions a player has never
// played, by transferring statistics from the most similar played
// position through the fixed difficulty and error-rate tables. It is
// stateless and safe for concurrent use.
type Predictor struct{}

// NewPredictor returns a cross-position predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// IsSimilar reports whether source and target are pair-adjacent in the
// fixed similarity relation. Only adjacent pairs may serve as prediction
// sources; the weight table is used for ranking, never gating.
func (p *Predictor) IsSimilar(source, target model.Position) bool {
	_, ok := adjacency[positionPair{source, target}]
	return ok
}

// Similarity returns the ranking weight for an ordered (source, target)
// pair, defaulting to 0.5 for adjacent pairs without an explicit entry.
func (p *Predictor) Similarity(source, target model.Position) float64 {
	if w, ok := similarityWeights[positionPair{source, target}]; ok {
		return w
	}
	return defaultSimilarity
}

// BestSourcePosition picks, among the player's played positions, the one
// most similar to target: adjacency gates candidacy and the weight table
// ranks survivors. Equal weights resolve to the candidate closest to the
// target in the difficulty order, so the pick does not depend on the
// order positions were listed in. ok is false when no played position is
// adjacent to the target.
func (p *Predictor) BestSourcePosition(played []model.Position, target model.Position) (source model.Position, similarity float64, ok bool) {
	best := 0.0
	for _, candidate := range played {
		if !p.IsSimilar(candidate, target) {
			continue
		}
		switch w := p.Similarity(candidate, target); {
		case !ok || w > best:
			best, source, ok = w, candidate, true
		case w == best && rankGap(candidate, target) < rankGap(source, target):
			source = candidate
		}
	}
	return source, best, ok
}

// transferFieldingPct shifts the player's observed rate by the delta
// between the target and source baseline offsets, clamped to [0,1].
func (p *Predictor) transferFieldingPct(source, target model.Position, observed float64) float64 {
	delta := fieldingPctOffset[target] - fieldingPctOffset[source]
	return clampUnit(normalizePct(observed) + delta)
}

// transferErrors rescales the error count by the ratio of target to
// source error-rate multipliers, clamped to [0, totalChances].
func (p *Predictor) transferErrors(source, target model.Position, errors, totalChances int) int {
	if totalChances <= 0 {
		return errors
	}
	srcMult := errorRateMultiplier[source]
	if srcMult == 0 {
		srcMult = 1.0
	}
	tgtMult := errorRateMultiplier[target]
	if tgtMult == 0 {
		tgtMult = 1.0
	}
	predicted := int(math.Round(float64(errors) * tgtMult / srcMult))
	if predicted < 0 {
		return 0
	}
	if predicted > totalChances {
		return totalChances
	}
	return predicted
}

// rank returns the difficulty rank for a position, falling back to the
// middle of the order for an unknown code.
func rank(pos model.Position) int {
	if r, ok := difficultyRank[pos]; ok {
		return r
	}
	return defaultDifficultyRank
}

// rankGap measures how far apart two positions sit in the difficulty
// order.
func rankGap(a, b model.Position) int {
	gap := rank(a) - rank(b)
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// PredictFact builds a predicted Fact for target from the player's fact
// at source. The original player name carries forward; catcher-only
// fields carry over only on catcher-to-catcher transfers, default to the
// league average when predicting into catcher, and are zeroed otherwise.
func (p *Predictor) PredictFact(source, target model.Position, sourceFact Fact, similarity float64) Fact {
	totalChances := sourceFact.Putouts + sourceFact.Errors
	if totalChances < 1 {
		totalChances = 1
	}

	fp := p.transferFieldingPct(source, target, sourceFact.FieldingPct)
	errors := p.transferErrors(source, target, sourceFact.Errors, totalChances)
	putouts := totalChances - errors
	if putouts < 0 {
		putouts = 0
	}

	passedBalls := 0
	caughtStealing := 0.0
	if target == model.Catcher {
		if source == model.Catcher {
			passedBalls = sourceFact.PassedBalls
			caughtStealing = sourceFact.CaughtStealingPct
		} else {
			caughtStealing = leagueAvgCaughtStealing
		}
	}

	return Fact{
		PlayerName:        sourceFact.PlayerName,
		Position:          target,
		FieldingPct:       fp,
		Errors:            errors,
		Putouts:           putouts,
		PassedBalls:       passedBalls,
		CaughtStealingPct: caughtStealing,
		IsCatcher:         target == model.Catcher,
		Predicted:         true,
		Similarity:        similarity,
	}
}

// PredictPlayerPositions synthesizes facts for every position in the
// fixed 8-set absent from the player's played-position facts. Targets
// with no adjacent source, or whose source fact is missing, are silently
// omitted; a player may legitimately end up with fewer than 8 positions.
func (p *Predictor) PredictPlayerPositions(played []model.Position, facts map[model.Position]Fact) map[model.Position]Fact {
	predicted := make(map[model.Position]Fact)
	for _, target := range model.AllPositions {
		if _, have := facts[target]; have {
			continue
		}
		source, similarity, ok := p.BestSourcePosition(played, target)
		if !ok {
			continue
		}
		sourceFact, have := facts[source]
		if !have {
			continue
		}
		predicted[target] = p.PredictFact(source, target, sourceFact, similarity)
	}
	return predicted
}
