package coverage

import (
	"fmt"

	"github.com/notjagan/poketypecalc/pkg/model"
)

var categoryPoints = map[model.Category]int{
	model.CategoryImmune:         -2,
	model.CategoryIneffective:    -1,
	model.CategoryEffective:      1,
	model.CategorySuperEffective: 2,
}

// Score sums one point delta per efficacy, picked by the category of its level.
func Score(effs []model.TypeEfficacy) (int, error) {
	score := 0
	for _, te := range effs {
		cat, err := model.CategoryOf(te.EfficacyLevel())
		if err != nil {
			return 0, fmt.Errorf("could not score matchup against %q: %w", targetName(te), err)
		}
		score += categoryPoints[cat]
	}

	return score, nil
}

func targetName(te model.TypeEfficacy) string {
	if typ := te.OpposingType(); typ != nil {
		return typ.Name
	}
	return "?"
}
