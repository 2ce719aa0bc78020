package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionPatternPositionsIncludesDarkModule(t *testing.T) {
	fp := functionPatternPositions(1, 21)
	assert.True(t, fp.contains(Position{21 - 8, 8}))
}

func TestFunctionPatternPositionsIncludesFinders(t *testing.T) {
	fp := functionPatternPositions(1, 21)
	assert.True(t, fp.contains(Position{0, 0}))
	assert.True(t, fp.contains(Position{0, 20}))
	assert.True(t, fp.contains(Position{20, 0}))
	assert.False(t, fp.contains(Position{20, 20})) // No finder in the bottom-right corner.
}

func TestFunctionPatternPositionsOmitVersionInfoBelowVersion7(t *testing.T) {
	fp6 := functionPatternPositions(6, dimension(6))
	fp7 := functionPatternPositions(7, dimension(7))

	for _, seq := range versionInfoRegions(dimension(6)) {
		for _, p := range seq {
			assert.False(t, fp6.contains(p))
		}
	}
	for _, seq := range versionInfoRegions(dimension(7)) {
		for _, p := range seq {
			assert.True(t, fp7.contains(p))
		}
	}
}

func TestAlignmentGridPositionsSkipsFinderCorners(t *testing.T) {
	// Version 2 has a single non-finder alignment center at (18, 18).
	positions := alignmentGridPositions(2)
	assert.Equal(t, []Position{{18, 18}}, positions)
}

func TestAlignmentGridPositionsVersion1HasNone(t *testing.T) {
	assert.Empty(t, alignmentGridPositions(1))
}

func TestPositionLess(t *testing.T) {
	assert.True(t, Position{0, 1}.Less(Position{1, 0}))
	assert.True(t, Position{1, 0}.Less(Position{1, 1}))
	assert.False(t, Position{1, 1}.Less(Position{1, 1}))
}
