package defense

import "github.com/dugoutlabs/fieldscore/internal/domain/model"

// Fixed lookup tables for cross-position prediction. All of them are
// hand-curated constants derived from aggregate MLB fielding data; none
// are trained or mutated at runtime.

type positionPair struct {
	source model.Position
	target model.Position
}

// adjacency is the symmetric similarity relation over position pairs.
// A pair outside the relation is never eligible as a prediction source,
// regardless of any weight entry. As curated it spans all 28 unordered
// pairs of the 8-position set; the gate only bites if pairs are removed.
var adjacency = buildAdjacency([][2]model.Position{
	// Outfield corners and center
	{model.LeftField, model.RightField},
	{model.LeftField, model.CenterField},
	{model.RightField, model.CenterField},
	// Corner outfield to first base
	{model.LeftField, model.FirstBase},
	{model.RightField, model.FirstBase},
	// Infield combinations
	{model.Shortstop, model.SecondBase},
	{model.Shortstop, model.ThirdBase},
	{model.SecondBase, model.ThirdBase},
	{model.ThirdBase, model.FirstBase},
	{model.FirstBase, model.SecondBase},
	{model.FirstBase, model.Shortstop},
	{model.FirstBase, model.CenterField},
	// Catcher transitions
	{model.Catcher, model.FirstBase},
	{model.Catcher, model.LeftField},
	{model.Catcher, model.RightField},
	{model.Catcher, model.CenterField},
	{model.Catcher, model.SecondBase},
	{model.Catcher, model.Shortstop},
	{model.Catcher, model.ThirdBase},
	// Middle infield to outfield
	{model.SecondBase, model.LeftField},
	{model.SecondBase, model.RightField},
	{model.SecondBase, model.CenterField},
	{model.Shortstop, model.LeftField},
	{model.Shortstop, model.RightField},
	{model.Shortstop, model.CenterField},
	// Third base to outfield
	{model.ThirdBase, model.LeftField},
	{model.ThirdBase, model.RightField},
	{model.ThirdBase, model.CenterField},
})

func buildAdjacency(pairs [][2]model.Position) map[positionPair]struct{} {
	m := make(map[positionPair]struct{}, len(pairs)*2)
	for _, p := range pairs {
		m[positionPair{p[0], p[1]}] = struct{}{}
		m[positionPair{p[1], p[0]}] = struct{}{}
	}
	return m
}

// defaultSimilarity is used for a pair that is adjacent but carries no
// explicit weight entry.
const defaultSimilarity = 0.5

// similarityWeights ranks candidate source positions; it never gates.
// Keyed by ordered (source, target) pair because a handful of entries
// are direction-dependent (e.g. C->1B vs 1B->C).
var similarityWeights = map[positionPair]float64{
	// Outfield corners: near-interchangeable
	{model.LeftField, model.RightField}: 0.97,
	{model.RightField, model.LeftField}: 0.97,
	// Outfield corner to center: center is materially harder
	{model.LeftField, model.CenterField}:  0.82,
	{model.CenterField, model.LeftField}:  0.82,
	{model.RightField, model.CenterField}: 0.82,
	{model.CenterField, model.RightField}: 0.82,
	// Corner outfield and first base: similar defensive demands
	{model.LeftField, model.FirstBase}:  0.78,
	{model.RightField, model.FirstBase}: 0.78,
	{model.FirstBase, model.LeftField}:  0.78,
	{model.FirstBase, model.RightField}: 0.78,
	// Middle infield
	{model.Shortstop, model.SecondBase}: 0.88,
	{model.SecondBase, model.Shortstop}: 0.88,
	// Left side infield
	{model.Shortstop, model.ThirdBase}: 0.85,
	{model.ThirdBase, model.Shortstop}: 0.85,
	// Second and third: close in difficulty
	{model.SecondBase, model.ThirdBase}: 0.92,
	{model.ThirdBase, model.SecondBase}: 0.92,
	// Corner infield
	{model.ThirdBase, model.FirstBase}: 0.72,
	{model.FirstBase, model.ThirdBase}: 0.72,
	// First base to middle infield: middle infield skills are harder
	{model.FirstBase, model.SecondBase}: 0.68,
	{model.SecondBase, model.FirstBase}: 0.68,
	{model.FirstBase, model.Shortstop}:  0.62,
	{model.Shortstop, model.FirstBase}:  0.62,
	// First base to center field: infield vs outfield skills
	{model.FirstBase, model.CenterField}: 0.58,
	{model.CenterField, model.FirstBase}: 0.58,
	// Catcher: specialized, limited cross-prediction
	{model.Catcher, model.FirstBase}:   0.52,
	{model.FirstBase, model.Catcher}:   0.48,
	{model.Catcher, model.LeftField}:   0.38,
	{model.Catcher, model.RightField}:  0.38,
	{model.LeftField, model.Catcher}:   0.35,
	{model.RightField, model.Catcher}:  0.35,
	{model.Catcher, model.CenterField}: 0.40,
	{model.CenterField, model.Catcher}: 0.38,
	// Middle infield to outfield: some athleticism transfers
	{model.SecondBase, model.LeftField}:   0.45,
	{model.LeftField, model.SecondBase}:   0.45,
	{model.SecondBase, model.RightField}:  0.45,
	{model.RightField, model.SecondBase}:  0.45,
	{model.SecondBase, model.CenterField}: 0.42,
	{model.CenterField, model.SecondBase}: 0.42,
	{model.Shortstop, model.LeftField}:    0.43,
	{model.LeftField, model.Shortstop}:    0.43,
	{model.Shortstop, model.RightField}:   0.43,
	{model.RightField, model.Shortstop}:   0.43,
	{model.Shortstop, model.CenterField}:  0.40,
	{model.CenterField, model.Shortstop}:  0.40,
	// Third base to outfield: corner positions
	{model.ThirdBase, model.LeftField}:   0.48,
	{model.LeftField, model.ThirdBase}:   0.48,
	{model.ThirdBase, model.RightField}:  0.48,
	{model.RightField, model.ThirdBase}:  0.48,
	{model.ThirdBase, model.CenterField}: 0.45,
	{model.CenterField, model.ThirdBase}: 0.45,
	// Middle infield to catcher: very different, floor similarity
	{model.SecondBase, model.Catcher}: 0.36,
	{model.Catcher, model.SecondBase}: 0.36,
	{model.Shortstop, model.Catcher}:  0.36,
	{model.Catcher, model.Shortstop}:  0.36,
	{model.ThirdBase, model.Catcher}:  0.37,
	{model.Catcher, model.ThirdBase}:  0.37,
}

// difficultyRank totally orders the positions by defensive demand
// (1 = easiest), derived from aggregate observed fielding percentages.
// It decides the direction of statistical adjustment on transfer.
var difficultyRank = map[model.Position]int{
	model.Catcher:     1, // 0.998 avg FP
	model.CenterField: 2, // 0.997
	model.FirstBase:   3, // 0.994
	model.SecondBase:  4, // 0.994
	model.Shortstop:   5, // 0.993
	model.RightField:  6, // 0.990
	model.LeftField:   7, // 0.987
	model.ThirdBase:   8, // 0.981, hardest
}

// defaultDifficultyRank is used for a position missing a rank entry.
const defaultDifficultyRank = 4

// fieldingPctOffset is each position's fixed fielding-percentage offset
// against the catcher baseline; positive means easier than baseline. The
// transfer applies the delta between target and source offsets to the
// player's own observed rate.
var fieldingPctOffset = map[model.Position]float64{
	model.Catcher:     0.0,
	model.CenterField: -0.001,
	model.FirstBase:   0.004,
	model.SecondBase:  -0.004,
	model.Shortstop:   -0.005,
	model.RightField:  -0.008,
	model.LeftField:   -0.011,
	model.ThirdBase:   -0.017,
}

// errorRateMultiplier scales error counts between positions, normalized
// to center field = 1.0 (the lowest observed error rate).
var errorRateMultiplier = map[model.Position]float64{
	model.CenterField: 1.0,   // 0.0035 error rate baseline
	model.Catcher:     1.17,  // 0.0041
	model.FirstBase:   1.34,  // 0.0047
	model.RightField:  3.37,  // 0.0118
	model.LeftField:   3.49,  // 0.0122
	model.SecondBase:  6.06,  // 0.0212
	model.Shortstop:   8.40,  // 0.0294
	model.ThirdBase:   30.40, // 0.1064, highest error rate
}

// leagueAvgCaughtStealing is the caught-stealing percentage assigned when
// predicting the catcher position from a non-catcher source.
const leagueAvgCaughtStealing = 0.22
