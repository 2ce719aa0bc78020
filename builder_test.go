package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderRejectsKanji(t *testing.T) {
	_, err := NewBuilder(3, WithMode(ModeKanji))
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestNewBuilderRejectsVersionOutOfRange(t *testing.T) {
	_, err := NewBuilder(3, WithVersion(41))
	assert.Error(t, err)
}

func TestNewBuilderRejectsMaskOutOfRange(t *testing.T) {
	_, err := NewBuilder(3, WithMask(8))
	assert.Error(t, err)
}

func TestNewBuilderAutoPicksSmallestVersionAtHighestLevel(t *testing.T) {
	b, err := NewBuilder(10, WithMode(ModeAlphanumeric))
	assert.NoError(t, err)
	assert.Equal(t, LevelH, b.Level())
	assert.Equal(t, 1, b.Version())
}

func TestNewBuilderAutoDowngradesLevelWhenVersionPinned(t *testing.T) {
	b, err := NewBuilder(perVersion[1][LevelH].capacity[ModeByte]+1, WithVersion(1), WithMode(ModeByte))
	assert.NoError(t, err)
	assert.NotEqual(t, LevelH, b.Level())
	assert.Equal(t, 1, b.Version())
}

func TestNewBuilderFixedVersionAndLevelRejectsOverCapacity(t *testing.T) {
	_, err := NewBuilder(perVersion[1][LevelH].capacity[ModeByte]+1, WithVersion(1), WithLevel(LevelH), WithMode(ModeByte))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestNewBuilderFixedLevelPicksSmallestFittingVersion(t *testing.T) {
	b, err := NewBuilder(10, WithLevel(LevelM), WithMode(ModeAlphanumeric))
	assert.NoError(t, err)
	assert.Equal(t, LevelM, b.Level())
	assert.Equal(t, 1, b.Version())
}

func TestNewBuilderRejectsDataThatFitsNoVersion(t *testing.T) {
	_, err := NewBuilder(1<<20, WithMode(ModeByte))
	assert.ErrorIs(t, err, ErrVersionUnavailable)
}

func TestDimensionFormula(t *testing.T) {
	assert.Equal(t, 21, dimension(1))
	assert.Equal(t, 25, dimension(2))
	assert.Equal(t, 177, dimension(40))
}
