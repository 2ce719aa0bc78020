package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteFormatInfoZeroDataIsXorMask(t *testing.T) {
	g := newWorkGrid(21)
	g.writeFormatInfo(LevelM, 0) // LevelM.formatBits()==0, so data==0 and rem==0.

	regions := formatInfoRegions(21)
	for _, region := range regions {
		for i, p := range region {
			assert.Equal(t, getBitAsBool(0x5412, i), g.modules[p.Row][p.Col], "bit %d", i)
		}
	}
}

func TestWriteFormatInfoBothCopiesAgree(t *testing.T) {
	g := newWorkGrid(21)
	g.writeFormatInfo(LevelQ, 5)

	regions := formatInfoRegions(21)
	for i := range regions[0] {
		a := regions[0][i]
		b := regions[1][i]
		assert.Equal(t, g.modules[a.Row][a.Col], g.modules[b.Row][b.Col], "bit %d", i)
	}
}

func TestWriteVersionInfoNoopBelowVersion7(t *testing.T) {
	g := newWorkGrid(dimension(6))
	before := g.clone()
	g.writeVersionInfo(6)
	assert.Equal(t, before.modules, g.modules)
}

func TestVersionInfoWordsEncodeTheVersionInTopBits(t *testing.T) {
	for v := 7; v <= 40; v++ {
		assert.Equal(t, v, versionInfoWords[v]>>12)
	}
}

func TestWriteVersionInfoBothCopiesAgree(t *testing.T) {
	g := newWorkGrid(dimension(7))
	g.writeVersionInfo(7)

	regions := versionInfoRegions(dimension(7))
	for i := range regions[0] {
		a := regions[0][i]
		b := regions[1][i]
		assert.Equal(t, g.modules[a.Row][a.Col], g.modules[b.Row][b.Col], "bit %d", i)
	}
}
