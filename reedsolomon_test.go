package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeECCodewords(t *testing.T) {
	data := []byte{32, 65, 205, 69, 41, 220, 46, 128, 236}
	ecWords := eccCodewordsPerBlock[LevelH][1]
	assert.Equal(t, 17, ecWords)

	got := computeECCodewords(data, ecWords)
	want := []byte{42, 159, 74, 221, 244, 169, 239, 150, 138, 70, 237, 85, 224, 96, 74, 219, 61}
	assert.Equal(t, want, got)
}

func TestGfMultiplyIdentityAndZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMultiply(0, 200))
	assert.Equal(t, byte(0), gfMultiply(200, 0))
	assert.Equal(t, byte(200), gfMultiply(1, 200))
}

func TestGeneratorLogHasOneEntryPerDistinctECCount(t *testing.T) {
	for e := Level(0); e <= LevelH; e++ {
		for v := 1; v <= 40; v++ {
			k := eccCodewordsPerBlock[e][v]
			gen, ok := generatorLog[k]
			assert.True(t, ok, "missing generator for %d EC words", k)
			assert.Equal(t, k, len(gen))
		}
	}
}

func TestComputeECCodewordsPanicsOnUnknownWordCount(t *testing.T) {
	assert.Panics(t, func() { computeECCodewords([]byte{1, 2, 3}, 0) })
}
