package model

import (
	"errors"
	"fmt"
)

type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

// Multiplier returns the damage factor as a plain multiplier, e.g. 0.5 for NotVeryEffective.
func (lvl EfficacyLevel) Multiplier() float64 {
	return float64(lvl) / 100
}

// Stack combines two levels the way two defending types do: 200 * 200 is 400, 50 * 0 is 0.
func (lvl EfficacyLevel) Stack(other EfficacyLevel) EfficacyLevel {
	return lvl * other / 100
}

func (lvl EfficacyLevel) String() string {
	return fmt.Sprintf("%gx", lvl.Multiplier())
}

//go:generate go tool enumer -type=Category -trimprefix=Category -transform=snake -text

type Category int

// The zero value is not a category, so a matchup without one is rejected.
const (
	CategorySuperEffective Category = iota + 1
	CategoryEffective
	CategoryIneffective
	CategoryImmune
)

func (c Category) Level() EfficacyLevel {
	switch c {
	case CategorySuperEffective:
		return SuperEffective
	case CategoryEffective:
		return NormalEffective
	case CategoryIneffective:
		return NotVeryEffective
	default:
		return Immune
	}
}

var ErrUnclassifiableLevel = errors.New("efficacy level does not belong to any category")

// CategoryOf classifies a level into exactly one category. Stacked levels fall
// into the category of the level they were stacked from, so 400 scores like
// 200 and 25 like 50 rather than counting for nothing.
func CategoryOf(lvl EfficacyLevel) (Category, error) {
	switch lvl {
	case Immune:
		return CategoryImmune, nil
	case DoubleNotVeryEffective, NotVeryEffective:
		return CategoryIneffective, nil
	case NormalEffective:
		return CategoryEffective, nil
	case SuperEffective, DoubleSuperEffective:
		return CategorySuperEffective, nil
	default:
		return 0, fmt.Errorf("level %d: %w", lvl, ErrUnclassifiableLevel)
	}
}

type TypeEfficacy struct {
	DamageFactor int

	opposingType *Type
}

func (te *TypeEfficacy) EfficacyLevel() EfficacyLevel {
	return EfficacyLevel(te.DamageFactor)
}

func (te *TypeEfficacy) OpposingType() *Type {
	return te.opposingType
}
