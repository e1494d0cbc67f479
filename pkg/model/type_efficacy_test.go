package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		lvl  EfficacyLevel
		want Category
	}{
		{Immune, CategoryImmune},
		{DoubleNotVeryEffective, CategoryIneffective},
		{NotVeryEffective, CategoryIneffective},
		{NormalEffective, CategoryEffective},
		{SuperEffective, CategorySuperEffective},
		{DoubleSuperEffective, CategorySuperEffective},
	}

	for _, tt := range tests {
		got, err := CategoryOf(tt.lvl)
		assert.NoError(t, err, "level %d", tt.lvl)
		assert.Equal(t, tt.want, got, "level %d", tt.lvl)
	}
}

func TestCategoryOf_Unclassifiable(t *testing.T) {
	for _, lvl := range []EfficacyLevel{-100, 12, 75, 150, 800} {
		_, err := CategoryOf(lvl)
		assert.ErrorIs(t, err, ErrUnclassifiableLevel, "level %d", lvl)
	}
}

func TestEfficacyLevel_Stack(t *testing.T) {
	assert.Equal(t, DoubleSuperEffective, SuperEffective.Stack(SuperEffective))
	assert.Equal(t, DoubleNotVeryEffective, NotVeryEffective.Stack(NotVeryEffective))
	assert.Equal(t, NormalEffective, SuperEffective.Stack(NotVeryEffective))
	assert.Equal(t, SuperEffective, SuperEffective.Stack(NormalEffective))

	for _, lvl := range []EfficacyLevel{SuperEffective, NormalEffective, NotVeryEffective, Immune} {
		assert.Equal(t, Immune, lvl.Stack(Immune))
		assert.Equal(t, Immune, Immune.Stack(lvl))
	}
}

func TestEfficacyLevel_Multiplier(t *testing.T) {
	assert.Equal(t, 2.0, SuperEffective.Multiplier())
	assert.Equal(t, 1.0, NormalEffective.Multiplier())
	assert.Equal(t, 0.5, NotVeryEffective.Multiplier())
	assert.Equal(t, 0.0, Immune.Multiplier())
	assert.Equal(t, 0.25, DoubleNotVeryEffective.Multiplier())
	assert.Equal(t, "0.25x", DoubleNotVeryEffective.String())
}

func TestCategory_Text(t *testing.T) {
	assert.Equal(t, []string{"super_effective", "effective", "ineffective", "immune"}, CategoryStrings())

	assert.False(t, Category(0).IsACategory(), "the zero value is not a category")

	var c Category
	assert.NoError(t, c.UnmarshalText([]byte("Immune")))
	assert.Equal(t, CategoryImmune, c)
	assert.Error(t, c.UnmarshalText([]byte("resisted")))
}
