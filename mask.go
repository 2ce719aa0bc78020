/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *
 * Mask selection and the four-rule penalty score (spec §4.6). The run-length
 * / finder-like-pattern scan is adapted from the teacher's getPenaltyScore,
 * which already scans the full [0,dim-2]x[0,dim-2] range for rule 2 (the
 * REDESIGN FLAG in spec §9 describes an undercounting original the teacher
 * does not reproduce). Rule 4 (balance) is reimplemented using spec §4.6's
 * literal formula rather than the teacher's equivalent-band shortcut — see
 * SPEC_FULL.md DECISIONS for why the two disagree at the all-dark extreme.
 */

package qrencode

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// maskPredicate reports whether mask k inverts the module at (row, col),
// per spec §4.6's table (i=row, j=col).
func maskPredicate(k, row, col int) bool {
	switch k {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return row*col%2+row*col%3 == 0
	case 6:
		return (row*col%2+row*col%3)%2 == 0
	case 7:
		return ((row*col%3)+(row+col)%2)%2 == 0
	default:
		panic("illegal mask index")
	}
}

// applyMask XORs every non-function module with maskPredicate(k, ...).
// Applying the same mask twice undoes it.
func (g *workGrid) applyMask(k int, functionPositions PositionSet) {
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			if functionPositions.contains(Position{row, col}) {
				continue
			}
			if maskPredicate(k, row, col) {
				g.modules[row][col] = !g.modules[row][col]
			}
		}
	}
}

// selectMask applies forced (if not AutoMask) or the minimum-penalty mask
// among 0..7, leaving g.modules in the winning masked state, and returns the
// chosen mask index.
func (g *workGrid) selectMask(forced int, functionPositions PositionSet) int {
	if forced != AutoMask {
		g.applyMask(forced, functionPositions)
		return forced
	}

	bestMask := -1
	bestPenalty := 0
	var bestModules [][]bool
	for k := 0; k < 8; k++ {
		candidate := g.clone()
		candidate.applyMask(k, functionPositions)
		penalty := candidate.penaltyScore()
		if bestMask == -1 || penalty < bestPenalty {
			bestMask = k
			bestPenalty = penalty
			bestModules = candidate.modules
		}
	}
	g.modules = bestModules
	return bestMask
}

// penaltyScore computes the sum of the four penalty rules (spec §4.6).
func (g *workGrid) penaltyScore() int {
	result := 0

	for row := 0; row < g.dim; row++ {
		result += g.lineRunPenalty(func(i int) bool { return g.modules[row][i] })
	}
	for col := 0; col < g.dim; col++ {
		result += g.lineRunPenalty(func(i int) bool { return g.modules[i][col] })
	}

	for row := 0; row < g.dim-1; row++ {
		for col := 0; col < g.dim-1; col++ {
			c := g.modules[row][col]
			if c == g.modules[row][col+1] && c == g.modules[row+1][col] && c == g.modules[row+1][col+1] {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, row := range g.modules {
		for _, c := range row {
			if c {
				dark++
			}
		}
	}
	result += balancePenalty(dark, g.dim*g.dim)

	return result
}

// balancePenalty is rule 4: 10 points for every 5% the dark-module
// proportion strays from 50% (spec §4.6).
func balancePenalty(dark, total int) int {
	percent := dark * 100 / total
	return penaltyN4 * (abs(percent-50) / 5)
}

// lineRunPenalty scores rule 1 (runs of 5+ same-colored modules) and rule 3
// (finder-like 1:1:3:1:1 patterns) for one row or column, via the combined
// run-history scan (spec §4.6 rules 1 and 3). runColor starts light (the
// implicit border), exactly as the teacher's getPenaltyScore does, so a line
// that starts dark records that border's history entry on its first
// transition instead of losing it.
func (g *workGrid) lineRunPenalty(at func(int) bool) int {
	result := 0
	runColor := false
	runLength := 0
	var history [7]int

	for i := 0; i < g.dim; i++ {
		color := at(i)
		if color == runColor {
			runLength++
			if runLength == 5 {
				result += penaltyN1
			} else if runLength > 5 {
				result++
			}
			continue
		}
		finderPenaltyAddHistory(runLength, &history, g.dim)
		if !runColor {
			result += finderPenaltyCountPatterns(&history, g.dim) * penaltyN3
		}
		runColor = color
		runLength = 1
	}
	result += finderPenaltyTerminateAndCount(runColor, runLength, &history, g.dim) * penaltyN3
	return result
}

func finderPenaltyAddHistory(runLength int, history *[7]int, dim int) {
	if history[0] == 0 {
		runLength += dim // Count the initial implicit light border as part of the first run.
	}
	copy(history[1:], history[0:6])
	history[0] = runLength
}

func finderPenaltyCountPatterns(history *[7]int, dim int) int {
	n := history[1]
	if n > dim*3 {
		panic("bad run history")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

func finderPenaltyTerminateAndCount(runColor bool, runLength int, history *[7]int, dim int) int {
	if runColor {
		finderPenaltyAddHistory(runLength, history, dim)
		runLength = 0
	}
	runLength += dim // Count the implicit light border past the last run.
	finderPenaltyAddHistory(runLength, history, dim)
	return finderPenaltyCountPatterns(history, dim)
}
