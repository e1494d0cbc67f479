// Package coverage ranks types and type combos by how their matchups score.
package coverage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Scored[T fmt.Stringer] struct {
	Entry T
	Score int
}

type Result[T fmt.Stringer] struct {
	Best  Scored[T]
	Worst Scored[T]

	// Scores holds every entry in the order it was visited.
	Scores []Scored[T]
}

// Top returns the n highest scoring entries, or nil when n is not positive.
// Ties keep visit order.
func (res Result[T]) Top(n int) []Scored[T] {
	if n <= 0 {
		return nil
	}

	ranked := make([]Scored[T], len(res.Scores))
	copy(ranked, res.Scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

var ErrEmptyPopulation = errors.New("nothing to search")

// extremes applies last-seen-wins on ties for both ends.
func extremes[T fmt.Stringer](scores []Scored[T]) (Result[T], error) {
	if len(scores) == 0 {
		return Result[T]{}, ErrEmptyPopulation
	}

	res := Result[T]{
		Best:   scores[0],
		Worst:  scores[0],
		Scores: scores,
	}
	for _, s := range scores[1:] {
		if s.Score >= res.Best.Score {
			res.Best = s
		}
		if s.Score <= res.Worst.Score {
			res.Worst = s
		}
	}

	return res, nil
}

type Searcher struct {
	model *model.Model
}

func NewSearcher(mdl *model.Model) *Searcher {
	return &Searcher{model: mdl}
}

func (s *Searcher) Singles() (Result[*model.Type], error) {
	scores := make([]Scored[*model.Type], 0, len(s.model.Types()))
	for _, typ := range s.model.Types() {
		score, err := Score(typ.AttackingEfficacies())
		if err != nil {
			return Result[*model.Type]{}, fmt.Errorf("error while scoring type %q: %w", typ.Name, err)
		}
		scores = append(scores, Scored[*model.Type]{Entry: typ, Score: score})
	}

	res, err := extremes(scores)
	if err != nil {
		return res, fmt.Errorf("error while searching single types: %w", err)
	}
	log.Debug().Int("searched", len(scores)).Msg("single type search done")

	return res, nil
}

// Pairs scores every ordered pair of distinct types, so both (A, B) and (B, A) are visited.
func (s *Searcher) Pairs() (Result[*model.TypeCombo], error) {
	types := s.model.Types()
	pairs := lo.FlatMap(types, func(primary *model.Type, _ int) [][2]*model.Type {
		return lo.FilterMap(types, func(secondary *model.Type, _ int) ([2]*model.Type, bool) {
			return [2]*model.Type{primary, secondary}, primary != secondary
		})
	})

	scores := make([]Scored[*model.TypeCombo], 0, len(pairs))
	for _, pair := range pairs {
		combo, err := s.model.NewTypeCombo(pair[0], pair[1])
		if err != nil {
			return Result[*model.TypeCombo]{}, fmt.Errorf("error while combining types: %w", err)
		}

		score, err := Score(combo.Efficacies())
		if err != nil {
			return Result[*model.TypeCombo]{}, fmt.Errorf("error while scoring type combo %q: %w", combo, err)
		}
		scores = append(scores, Scored[*model.TypeCombo]{Entry: combo, Score: score})
	}

	res, err := extremes(scores)
	if err != nil {
		return res, fmt.Errorf("error while searching type combos: %w", err)
	}
	log.Debug().Int("searched", len(scores)).Msg("type combo search done")

	return res, nil
}
