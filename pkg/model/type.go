package model

import (
	"errors"
	"fmt"
)

type Type struct {
	model *Model

	ID   int
	Name string

	efficacies map[*Type]EfficacyLevel
}

// Efficacy returns the level this type deals against target, and false if the
// chart never specified it.
func (typ *Type) Efficacy(target *Type) (EfficacyLevel, bool) {
	lvl, ok := typ.efficacies[target]
	return lvl, ok
}

// AttackingEfficacies lists the specified matchups of this type in registry order.
func (typ *Type) AttackingEfficacies() []TypeEfficacy {
	return typ.model.orderedEfficacies(typ.efficacies)
}

func (typ *Type) String() string {
	return typ.Name
}

type TypeCombo struct {
	model *Model

	Type1 *Type
	Type2 *Type
}

var ErrSameType = errors.New("type combo requires two distinct types")

func (m *Model) NewTypeCombo(typ1 *Type, typ2 *Type) (*TypeCombo, error) {
	if typ1 == nil || typ2 == nil {
		return nil, fmt.Errorf("type combo is missing a type: %w", ErrUnknownType)
	}
	if typ1 == typ2 {
		return nil, fmt.Errorf("could not combine %q with itself: %w", typ1.Name, ErrSameType)
	}

	return &TypeCombo{
		model: m,
		Type1: typ1,
		Type2: typ2,
	}, nil
}

// TypeComboByName looks up both types and combines them.
func (m *Model) TypeComboByName(name1 string, name2 string) (*TypeCombo, error) {
	typ1, err := m.TypeByName(name1)
	if err != nil {
		return nil, fmt.Errorf("could not get first type by name: %w", err)
	}

	typ2, err := m.TypeByName(name2)
	if err != nil {
		return nil, fmt.Errorf("could not get second type by name: %w", err)
	}

	return m.NewTypeCombo(typ1, typ2)
}

// Efficacies stacks both types' matchups. A target only one of the types
// specifies keeps that type's level unchanged.
func (combo *TypeCombo) Efficacies() []TypeEfficacy {
	combined := make(map[*Type]EfficacyLevel, len(combo.Type1.efficacies))
	for target, lvl := range combo.Type1.efficacies {
		combined[target] = lvl
	}
	for target, lvl := range combo.Type2.efficacies {
		if cur, ok := combined[target]; ok {
			combined[target] = cur.Stack(lvl)
			continue
		}
		combined[target] = lvl
	}

	return combo.model.orderedEfficacies(combined)
}

func (combo *TypeCombo) String() string {
	return combo.Type1.Name + "/" + combo.Type2.Name
}
