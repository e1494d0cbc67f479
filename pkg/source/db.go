package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/rs/zerolog/log"
)

// PokeAPI ids at or above this mark pseudo types such as "unknown" and "shadow".
const pseudoTypeID = 10000

type dbType struct {
	ID           int    `db:"id"`
	GenerationID int    `db:"generation_id"`
	Name         string `db:"name"`
}

type dbEfficacy struct {
	DamageType   string `db:"damage_type"`
	TargetType   string `db:"target_type"`
	DamageFactor int    `db:"damage_factor"`
}

// DB reads type charts from a PokeAPI sqlite database, opened read-only.
type DB struct {
	db *sqlx.DB
}

func OpenDB(ctx context.Context, dbPath string) (*DB, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

var ErrUnknownGeneration = errors.New("generation not found")

func (d *DB) LatestGeneration(ctx context.Context) (int, error) {
	var gen int
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT COALESCE(MAX(id), 0)
		FROM pokemon_v2_generation
	`).Scan(&gen)
	if err != nil {
		return 0, fmt.Errorf("error while getting latest generation: %w", err)
	}
	if gen == 0 {
		return 0, ErrUnknownGeneration
	}

	return gen, nil
}

func (d *DB) types(ctx context.Context, gen int) ([]dbType, error) {
	var types []dbType
	err := d.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT id, generation_id, name
		FROM pokemon_v2_type
		WHERE generation_id <= ? AND id < ?
		ORDER BY id ASC
	`, gen, pseudoTypeID)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for generation %d: %w", gen, err)
	}

	return types, nil
}

func (d *DB) efficacies(ctx context.Context, gen int) ([]dbEfficacy, error) {
	var effs []dbEfficacy
	err := d.db.SelectContext(ctx, &effs,
		/* sql */ `
		SELECT a.name AS damage_type, t.name AS target_type, e.damage_factor
		FROM pokemon_v2_typeefficacy e
		JOIN pokemon_v2_type a
			ON e.damage_type_id = a.id
		JOIN pokemon_v2_type t
			ON e.target_type_id = t.id
		WHERE a.generation_id <= ? AND t.generation_id <= ? AND a.id < ? AND t.id < ?
		ORDER BY a.id ASC, t.id ASC
	`, gen, gen, pseudoTypeID, pseudoTypeID)
	if err != nil {
		return nil, fmt.Errorf("error while getting type efficacies for generation %d: %w", gen, err)
	}

	return effs, nil
}

func categoryForFactor(factor int) (model.Category, error) {
	for _, cat := range model.CategoryValues() {
		if int(cat.Level()) == factor {
			return cat, nil
		}
	}

	return 0, fmt.Errorf("damage factor %d: %w", factor, model.ErrUnclassifiableLevel)
}

// Chart builds the chart of every type introduced up to gen. A gen of 0 selects
// the latest generation in the database.
func (d *DB) Chart(ctx context.Context, gen int) (*model.Chart, error) {
	if gen == 0 {
		latest, err := d.LatestGeneration(ctx)
		if err != nil {
			return nil, fmt.Errorf("error while getting default generation: %w", err)
		}
		gen = latest
	}

	types, err := d.types(ctx, gen)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no types in generation %d: %w", gen, ErrUnknownGeneration)
	}

	chart := model.Chart{Types: make([]model.TypeChart, len(types))}
	index := make(map[string]int, len(types))
	for i, typ := range types {
		chart.Types[i].Name = typ.Name
		index[typ.Name] = i
	}

	effs, err := d.efficacies(ctx, gen)
	if err != nil {
		return nil, err
	}
	for _, eff := range effs {
		cat, err := categoryForFactor(eff.DamageFactor)
		if err != nil {
			return nil, fmt.Errorf("invalid efficacy %q -> %q: %w", eff.DamageType, eff.TargetType, err)
		}

		i := index[eff.DamageType]
		chart.Types[i].Matchups = append(chart.Types[i].Matchups, model.Matchup{
			Target:   eff.TargetType,
			Category: cat,
		})
	}

	log.Debug().Int("generation", gen).Int("types", len(types)).Int("matchups", len(effs)).Msg("loaded chart from database")

	return &chart, nil
}
