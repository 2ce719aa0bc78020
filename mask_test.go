package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalancePenaltyAllDark(t *testing.T) {
	assert.Equal(t, 100, balancePenalty(441, 441))
}

func TestBalancePenaltyExactlyHalf(t *testing.T) {
	assert.Equal(t, 0, balancePenalty(50, 100))
}

func TestApplyMaskIsInvolution(t *testing.T) {
	g := newWorkGrid(21)
	fp := functionPatternPositions(1, 21)
	g.drawFunctionPatterns(1, fp)

	before := g.clone()
	g.applyMask(3, fp)
	g.applyMask(3, fp)
	assert.Equal(t, before.modules, g.modules)
}

func TestApplyMaskLeavesFunctionModulesUntouched(t *testing.T) {
	g := newWorkGrid(21)
	fp := functionPatternPositions(1, 21)
	g.drawFunctionPatterns(1, fp)

	before := g.clone()
	g.applyMask(0, fp)
	for p := range fp {
		assert.Equal(t, before.modules[p.Row][p.Col], g.modules[p.Row][p.Col])
	}
}

func TestSelectMaskAutoPicksMinimumPenalty(t *testing.T) {
	g := newWorkGrid(21)
	fp := functionPatternPositions(1, 21)
	g.drawFunctionPatterns(1, fp)

	chosen := g.selectMask(AutoMask, fp)
	best := g.penaltyScore()

	for k := 0; k < 8; k++ {
		candidate := newWorkGrid(21)
		candidate.drawFunctionPatterns(1, fp)
		candidate.applyMask(k, fp)
		assert.True(t, candidate.penaltyScore() >= best)
	}
	assert.True(t, chosen >= 0 && chosen <= 7)
}

func TestSelectMaskForcedAppliesRequestedMask(t *testing.T) {
	g := newWorkGrid(21)
	fp := functionPatternPositions(1, 21)
	g.drawFunctionPatterns(1, fp)

	want := g.clone()
	want.applyMask(5, fp)

	got := g.selectMask(5, fp)
	assert.Equal(t, 5, got)
	assert.Equal(t, want.modules, g.modules)
}
