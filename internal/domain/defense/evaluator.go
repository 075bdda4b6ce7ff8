package defense

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// PositionEvaluator extracts the positions a player is eligible for and
// builds per-position facts through the knowledge base, optionally
// invoking the predictor for unplayed positions.
type PositionEvaluator struct {
	kb        *KnowledgeBase
	predictor *Predictor
}

// NewPositionEvaluator builds an evaluator around a knowledge base and a
// cross-position predictor.
func NewPositionEvaluator(kb *KnowledgeBase, predictor *Predictor) *PositionEvaluator {
	return &PositionEvaluator{kb: kb, predictor: predictor}
}

// EligiblePositions returns the positions a player has played. The
// record's positions field may be a sequence of codes or a delimited
// string (commas and slashes both separate). Tokens are trimmed and
// upper-cased, unknown codes are dropped, and input order and duplicates
// are preserved. A missing or unusable field yields an empty list.
func (e *PositionEvaluator) EligiblePositions(rec model.PlayerRecord) []model.Position {
	raw, ok := rec[model.KeyPositions]
	if !ok {
		return nil
	}

	var tokens []string
	switch v := raw.(type) {
	case string:
		tokens = strings.Split(strings.ReplaceAll(v, "/", ","), ",")
	case []string:
		tokens = v
	case []any:
		for _, item := range v {
			tokens = append(tokens, fmt.Sprint(item))
		}
	case []model.Position:
		for _, p := range v {
			tokens = append(tokens, string(p))
		}
	default:
		return nil
	}

	var eligible []model.Position
	for _, tok := range tokens {
		if p, valid := model.ParsePosition(tok); valid {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// EvaluatePlayerPositions builds a position->Fact map covering every
// eligible position of one player.
func (e *PositionEvaluator) EvaluatePlayerPositions(rec model.PlayerRecord) map[model.Position]Fact {
	facts := make(map[model.Position]Fact)
	for _, pos := range e.EligiblePositions(rec) {
		facts[pos] = e.kb.AddFact(rec, pos)
	}
	return facts
}

// EvaluatePlayer builds one player's fact map and the key it should be
// stored under: the player name, or a generated fallback key when the
// name is absent. With predictAll set, facts for unplayed positions are
// synthesized by the predictor and merged in; predictions never
// overwrite played positions, and unpredictable targets are simply
// absent.
func (e *PositionEvaluator) EvaluatePlayer(rec model.PlayerRecord, predictAll bool) (string, map[model.Position]Fact) {
	key := rec.Name()
	if key == "" {
		key = fmt.Sprintf("player-%s", uuid.NewString())
	}

	facts := e.EvaluatePlayerPositions(rec)
	if predictAll {
		played := e.EligiblePositions(rec)
		for pos, fact := range e.predictor.PredictPlayerPositions(played, facts) {
			if _, have := facts[pos]; !have {
				facts[pos] = fact
			}
		}
	}
	return key, facts
}

// EvaluateAllPlayers builds every player's facts, keyed per
// EvaluatePlayer. Per-player computations are independent; callers that
// need throughput may fan records out across workers instead.
func (e *PositionEvaluator) EvaluateAllPlayers(records []model.PlayerRecord, predictAll bool) map[string]map[model.Position]Fact {
	results := make(map[string]map[model.Position]Fact, len(records))
	for _, rec := range records {
		key, facts := e.EvaluatePlayer(rec, predictAll)
		results[key] = facts
	}
	return results
}
