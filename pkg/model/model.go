package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Model is the type registry. It is built once from a Chart and read-only afterwards.
type Model struct {
	types  []*Type
	byName map[string]*Type
	sealed bool
}

type Matchup struct {
	Target   string   `toml:"target" validate:"required"`
	Category Category `toml:"category" validate:"required"`
}

type TypeChart struct {
	Name     string    `toml:"name" validate:"required"`
	Matchups []Matchup `toml:"matchups" validate:"dive"`
}

// Chart is the authored effectiveness data: per attacking type, the ordered
// list of matchups it declares.
type Chart struct {
	Types []TypeChart `toml:"types" validate:"required,dive"`
}

var (
	ErrUnknownType   = errors.New("type is not registered")
	ErrDuplicateType = errors.New("type is already registered")
	ErrSealed        = errors.New("type registry is read-only")
	ErrInvalidChart  = errors.New("invalid type chart")
)

// NewRegistry returns an empty registry open for Register and SetEfficacy.
func NewRegistry() *Model {
	return &Model{byName: make(map[string]*Type)}
}

// New registers every type of the chart before applying any matchups, since
// matchups refer to other types by name.
func New(chart Chart) (*Model, error) {
	m := NewRegistry()

	for _, tc := range chart.Types {
		_, err := m.Register(tc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to register type chart: %w", err)
		}
	}

	for _, tc := range chart.Types {
		typ, err := m.TypeByName(tc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to apply matchups: %w", err)
		}

		for _, mu := range tc.Matchups {
			if !mu.Category.IsACategory() {
				return nil, fmt.Errorf("matchup %q -> %q has category %d: %w", tc.Name, mu.Target, mu.Category, ErrInvalidChart)
			}

			err = m.SetEfficacy(typ, mu.Target, mu.Category.Level())
			if err != nil {
				return nil, fmt.Errorf("failed to apply matchups for type %q: %w", tc.Name, err)
			}
		}
	}
	m.Seal()

	log.Debug().Int("types", len(m.types)).Msg("type registry loaded")
	for name, targets := range m.MissingMatchups() {
		log.Warn().Str("type", name).Strs("targets", targets).Msg("type chart leaves matchups unspecified")
	}

	return m, nil
}

// Seal makes the registry read-only.
func (m *Model) Seal() {
	m.sealed = true
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *Model) Register(name string) (*Type, error) {
	if m.sealed {
		return nil, fmt.Errorf("could not register type %q: %w", name, ErrSealed)
	}

	key := normalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("type name is empty: %w", ErrInvalidChart)
	}
	if _, ok := m.byName[key]; ok {
		return nil, fmt.Errorf("type %q: %w", key, ErrDuplicateType)
	}

	typ := &Type{
		model:      m,
		ID:         len(m.types) + 1,
		Name:       key,
		efficacies: make(map[*Type]EfficacyLevel),
	}
	m.types = append(m.types, typ)
	m.byName[key] = typ

	return typ, nil
}

func (m *Model) SetEfficacy(from *Type, toName string, lvl EfficacyLevel) error {
	if m.sealed {
		return fmt.Errorf("could not set efficacy of type %q: %w", from.Name, ErrSealed)
	}
	if from.model != m {
		return fmt.Errorf("type %q belongs to another registry: %w", from.Name, ErrUnknownType)
	}

	to, err := m.TypeByName(toName)
	if err != nil {
		return fmt.Errorf("no matching target for type %q: %w", from.Name, err)
	}
	from.efficacies[to] = lvl

	return nil
}

func (m *Model) TypeByName(name string) (*Type, error) {
	typ, ok := m.byName[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("no matching type found for %q: %w", name, ErrUnknownType)
	}

	return typ, nil
}

// Types returns every type in registration order.
func (m *Model) Types() []*Type {
	types := make([]*Type, len(m.types))
	copy(types, m.types)
	return types
}

// MissingMatchups lists, per type, the registered targets it has no entry for.
func (m *Model) MissingMatchups() map[string][]string {
	missing := make(map[string][]string)
	for _, typ := range m.types {
		for _, target := range m.types {
			if _, ok := typ.efficacies[target]; !ok {
				missing[typ.Name] = append(missing[typ.Name], target.Name)
			}
		}
	}

	return missing
}

func (m *Model) orderedEfficacies(effs map[*Type]EfficacyLevel) []TypeEfficacy {
	ordered := make([]TypeEfficacy, 0, len(effs))
	for _, target := range m.types {
		lvl, ok := effs[target]
		if !ok {
			continue
		}
		ordered = append(ordered, TypeEfficacy{
			DamageFactor: int(lvl),
			opposingType: target,
		})
	}

	return ordered
}

// SearchTypes returns up to limit types whose name starts with prefix, in
// registration order. A negative limit returns every match.
func (m *Model) SearchTypes(prefix string, limit int) []*Type {
	prefix = normalizeName(prefix)

	var types []*Type
	for _, typ := range m.types {
		if limit >= 0 && len(types) == limit {
			break
		}
		if strings.HasPrefix(typ.Name, prefix) {
			types = append(types, typ)
		}
	}

	return types
}
