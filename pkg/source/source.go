// Package source loads type charts: the embedded canonical chart, chart files
// written in the same TOML layout, and read-only PokeAPI databases.
package source

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/notjagan/poketypecalc/pkg/model"
)

//go:embed chart.toml
var canonicalChart []byte

// CanonicalTypes is the fixed list of types in the embedded chart, in registration order.
var CanonicalTypes = []string{
	"bug", "dark", "dragon", "electric", "fighting", "fire", "flying", "ghost", "grass",
	"ground", "ice", "normal", "poison", "psychic", "rock", "steel", "water",
}

var ErrChartFormat = errors.New("malformed chart")

var validate = validator.New()

// Decode parses a TOML chart and checks that every type and matchup is named.
func Decode(data []byte) (*model.Chart, error) {
	var chart model.Chart
	md, err := toml.Decode(string(data), &chart)
	if err != nil {
		return nil, fmt.Errorf("could not decode chart: %w: %v", ErrChartFormat, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown chart keys %v: %w", undecoded, ErrChartFormat)
	}

	err = validate.Struct(chart)
	if err != nil {
		return nil, fmt.Errorf("chart failed validation: %w: %v", ErrChartFormat, err)
	}

	return &chart, nil
}

func Canonical() (*model.Chart, error) {
	chart, err := Decode(canonicalChart)
	if err != nil {
		return nil, fmt.Errorf("error while loading canonical chart: %w", err)
	}

	return chart, nil
}

func ReadFile(path string) (*model.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read chart file %q: %w", path, err)
	}

	chart, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error while loading chart file %q: %w", path, err)
	}

	return chart, nil
}
