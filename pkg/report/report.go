// Package report renders search results and efficacy charts as console text.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/notjagan/poketypecalc/pkg/coverage"
	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/samber/lo"
)

var ErrUnexpectedLevel = errors.New("unexpected type efficacy level")

type Field struct {
	Name  string
	Value string
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	neutral      string
	weak         string
	doubleWeak   string
	immune       string
}

var attackingNames = efficacyNames{
	doubleStrong: "Super Effective (4x)",
	strong:       "Super Effective (2x)",
	neutral:      "Neutral (1x)",
	weak:         "Resisted (0.5x)",
	doubleWeak:   "Resisted (0.25x)",
	immune:       "No Effect (0x)",
}

// efficacyFields groups target names by level. Empty 4x and 0.25x groups are
// always omitted, the other groups only when includeAll is false.
func efficacyFields(effs []model.TypeEfficacy, includeAll bool, names efficacyNames) ([]Field, error) {
	n := len(effs)
	doubleStrengths := make([]string, 0, n)
	strengths := make([]string, 0, n)
	neutrals := make([]string, 0, n)
	weaks := make([]string, 0, n)
	doubleWeaks := make([]string, 0, n)
	immunes := make([]string, 0, n)

	for _, te := range effs {
		name := te.OpposingType().Name

		switch te.EfficacyLevel() {
		case model.DoubleSuperEffective:
			doubleStrengths = append(doubleStrengths, name)
		case model.SuperEffective:
			strengths = append(strengths, name)
		case model.NormalEffective:
			neutrals = append(neutrals, name)
		case model.NotVeryEffective:
			weaks = append(weaks, name)
		case model.DoubleNotVeryEffective:
			doubleWeaks = append(doubleWeaks, name)
		case model.Immune:
			immunes = append(immunes, name)
		default:
			return nil, fmt.Errorf("level %d against %q: %w", te.DamageFactor, name, ErrUnexpectedLevel)
		}
	}

	groups := []struct {
		name     string
		values   []string
		optional bool
	}{
		{names.doubleStrong, doubleStrengths, true},
		{names.strong, strengths, false},
		{names.neutral, neutrals, false},
		{names.weak, weaks, false},
		{names.doubleWeak, doubleWeaks, true},
		{names.immune, immunes, false},
	}

	fields := make([]Field, 0, len(groups))
	for _, g := range groups {
		switch {
		case len(g.values) > 0:
			fields = append(fields, Field{Name: g.name, Value: strings.Join(g.values, " ")})
		case includeAll && !g.optional:
			fields = append(fields, Field{Name: g.name, Value: "_None_"})
		}
	}

	return fields, nil
}

func writeChart(w io.Writer, title string, effs []model.TypeEfficacy) error {
	fmt.Fprintf(w, "%s:\n", title)
	for _, te := range effs {
		fmt.Fprintf(w, "\t%s: %g\n", te.OpposingType().Name, te.EfficacyLevel().Multiplier())
	}

	fields, err := efficacyFields(effs, true, attackingNames)
	if err != nil {
		return fmt.Errorf("could not encode type efficacies: %w", err)
	}
	fmt.Fprintln(w)
	for _, f := range fields {
		fmt.Fprintf(w, "%s\n\t%s\n", f.Name, f.Value)
	}

	score, err := coverage.Score(effs)
	if err != nil {
		return fmt.Errorf("could not score chart: %w", err)
	}
	_, err = fmt.Fprintf(w, "\nScore: %dpts.\n", score)
	return err
}

// TypeChart prints every matchup of a single type.
func TypeChart(w io.Writer, typ *model.Type) error {
	return writeChart(w, fmt.Sprintf("Coverage of type '%s'", typ.Name), typ.AttackingEfficacies())
}

// ComboChart prints every combined matchup of a type combo.
func ComboChart(w io.Writer, combo *model.TypeCombo) error {
	title := fmt.Sprintf("Coverage of types '%s' and '%s'", combo.Type1.Name, combo.Type2.Name)
	return writeChart(w, title, combo.Efficacies())
}

func comboLabel(combo *model.TypeCombo) string {
	return combo.Type1.Name + ", " + combo.Type2.Name
}

func typeLabel(typ *model.Type) string {
	return typ.Name
}

func writeResult[T fmt.Stringer](w io.Writer, heading string, res coverage.Result[T], top int, label func(T) string) error {
	fmt.Fprintf(w, "Now searching for the best %s.\n", heading)
	fmt.Fprintf(w, "\tFound best: %s: %dpts.\n", label(res.Best.Entry), res.Best.Score)
	_, err := fmt.Fprintf(w, "\tFound worst: %s: %dpts.\n", label(res.Worst.Entry), res.Worst.Score)
	if err != nil || top <= 0 {
		return err
	}

	ranked := lo.Map(res.Top(top), func(s coverage.Scored[T], i int) string {
		return fmt.Sprintf("\t%3d. %s: %dpts.", i+1, label(s.Entry), s.Score)
	})
	_, err = fmt.Fprintf(w, "Top %d:\n%s\n", len(ranked), strings.Join(ranked, "\n"))
	return err
}

func Singles(w io.Writer, res coverage.Result[*model.Type], top int) error {
	return writeResult(w, "single type", res, top, typeLabel)
}

func Pairs(w io.Writer, res coverage.Result[*model.TypeCombo], top int) error {
	return writeResult(w, "dual type", res, top, comboLabel)
}

// TypeNames prints one type per line.
func TypeNames(w io.Writer, types []*model.Type) error {
	names := lo.Map(types, func(typ *model.Type, _ int) string {
		return typ.Name
	})
	_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
	return err
}
