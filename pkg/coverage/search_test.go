package coverage

import (
	"testing"

	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/notjagan/poketypecalc/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalSearcher(t *testing.T) *Searcher {
	t.Helper()

	chart, err := source.Canonical()
	require.NoError(t, err)
	mdl, err := model.New(*chart)
	require.NoError(t, err)

	return NewSearcher(mdl)
}

func TestSingles_Canonical(t *testing.T) {
	res, err := canonicalSearcher(t).Singles()
	require.NoError(t, err)

	assert.Equal(t, "dragon", res.Best.Entry.Name)
	assert.Equal(t, 16, res.Best.Score)
	assert.Equal(t, "grass", res.Worst.Entry.Name)
	assert.Equal(t, 6, res.Worst.Score)
	assert.Len(t, res.Scores, 17)

	top := res.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, "dragon", top[0].Entry.Name)
	assert.Equal(t, "ground", top[1].Entry.Name)
	assert.Equal(t, "rock", top[2].Entry.Name)
	assert.Equal(t, 15, top[2].Score)
}

func TestPairs_Canonical(t *testing.T) {
	res, err := canonicalSearcher(t).Pairs()
	require.NoError(t, err)

	assert.Len(t, res.Scores, 17*16)
	assert.Equal(t, "water", res.Best.Entry.Type1.Name)
	assert.Equal(t, "fire", res.Best.Entry.Type2.Name)
	assert.Equal(t, 17, res.Best.Score)
	assert.Equal(t, "normal", res.Worst.Entry.Type1.Name)
	assert.Equal(t, "grass", res.Worst.Entry.Type2.Name)
	assert.Equal(t, 2, res.Worst.Score)

	for _, s := range res.Scores {
		assert.NotSame(t, s.Entry.Type1, s.Entry.Type2)
	}
}

func tiedSearcher(t *testing.T) *Searcher {
	t.Helper()

	mdl, err := model.New(model.Chart{Types: []model.TypeChart{
		{Name: "a", Matchups: []model.Matchup{{Target: "a", Category: model.CategoryEffective}}},
		{Name: "b", Matchups: []model.Matchup{{Target: "a", Category: model.CategoryEffective}}},
		{Name: "c", Matchups: []model.Matchup{{Target: "a", Category: model.CategoryImmune}}},
		{Name: "d", Matchups: []model.Matchup{{Target: "a", Category: model.CategoryImmune}}},
	}})
	require.NoError(t, err)

	return NewSearcher(mdl)
}

func TestSingles_LastSeenWinsTies(t *testing.T) {
	res, err := tiedSearcher(t).Singles()
	require.NoError(t, err)

	assert.Equal(t, "b", res.Best.Entry.Name)
	assert.Equal(t, 1, res.Best.Score)
	assert.Equal(t, "d", res.Worst.Entry.Name)
	assert.Equal(t, -2, res.Worst.Score)
}

func TestPairs_LastSeenWinsTies(t *testing.T) {
	res, err := tiedSearcher(t).Pairs()
	require.NoError(t, err)

	assert.Equal(t, "b/a", res.Best.Entry.String())
	assert.Equal(t, 1, res.Best.Score)
	assert.Equal(t, "d/c", res.Worst.Entry.String())
	assert.Equal(t, -2, res.Worst.Score)
}

func TestSearch_Empty(t *testing.T) {
	mdl, err := model.New(model.Chart{})
	require.NoError(t, err)
	s := NewSearcher(mdl)

	_, err = s.Singles()
	assert.ErrorIs(t, err, ErrEmptyPopulation)
	_, err = s.Pairs()
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}

func TestResult_Top(t *testing.T) {
	res, err := tiedSearcher(t).Singles()
	require.NoError(t, err)

	all := res.Top(10)
	require.Len(t, all, 4)
	assert.Equal(t, "a", all[0].Entry.Name, "ties keep visit order")
	assert.Equal(t, "b", all[1].Entry.Name)

	assert.Empty(t, res.Top(0))
	assert.Nil(t, res.Top(-1))
}
