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
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * Static per-version metadata (spec §3 PerVersionInfo, §9 "Global/static
 * tables"). Modeled after package.go, generalized from a single
 * reedSolomonDivisors map to the full per-(version,level) block-group and
 * capacity tables spec.md's data model names explicitly.
 */

package qrencode

// blockGroup describes one group of same-sized Reed-Solomon blocks within a
// version/level (spec §3 PerVersionInfo.per_level[...].block_groups[]).
type blockGroup struct {
	nBlocks           int
	dataWordsPerBlock int
	totalWordsPerBlock int
}

// perLevelInfo is the per-(version,level) slice of PerVersionInfo (spec §3).
type perLevelInfo struct {
	capacity    [4]int // Max input units (chars, or bytes for Byte mode) per mode.
	nDataWords  int
	blockGroups []blockGroup
}

var (
	// eccCodewordsPerBlock[level][version] is ISO/IEC 18004 table 9; index 0
	// is unused padding.
	eccCodewordsPerBlock = [4][41]int{
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	// numBlocks[level][version] is ISO/IEC 18004 table 9.
	numBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

	numRawDataModules  [41]int // Data-carrying bits per version, incl. remainder.
	remainderBits      [41]int
	alignmentPatternCoords [41][]int
	versionInfoWords   [41]int // Precomputed per spec §3, versions >= 7.

	// perVersion[version][level].
	perVersion [41][4]perLevelInfo
)

func init() {
	initRawDataModules()
	initAlignmentPatternCoords()
	initPerVersionTables()
	initVersionInfoWords()
	initGFTables()
	initGeneratorPolynomials()
}

// initRawDataModules computes the number of data-carrying bits available in
// a version-v symbol once every function pattern is excluded (spec §3
// PerVersionInfo; ISO/IEC 18004 table 1 derivation).
func initRawDataModules() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
		remainderBits[v] = result % 8
	}
}

// initAlignmentPatternCoords computes alignment-pattern center coordinates
// per version (ISO/IEC 18004 table E.1).
func initAlignmentPatternCoords() {
	for v := 1; v <= 40; v++ {
		alignmentPatternCoords[v] = alignmentCoordsForVersion(v)
	}
}

func alignmentCoordsForVersion(version int) []int {
	if version == 1 {
		return []int{}
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake (ISO/IEC 18004 table E.1 footnote).
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}
	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// initPerVersionTables computes nDataWords, block groups, and per-mode
// capacities for every (version, level).
func initPerVersionTables() {
	for v := 1; v <= 40; v++ {
		rawCodewords := numRawDataModules[v] / 8
		for e := Level(0); e <= LevelH; e++ {
			blocks := numBlocks[e][v]
			eccPerBlock := eccCodewordsPerBlock[e][v]
			nDataWords := rawCodewords - eccPerBlock*blocks

			shortBlockLen := rawCodewords / blocks
			numShortBlocks := blocks - rawCodewords%blocks

			var groups []blockGroup
			if numShortBlocks > 0 {
				groups = append(groups, blockGroup{
					nBlocks:            numShortBlocks,
					dataWordsPerBlock:  shortBlockLen - eccPerBlock,
					totalWordsPerBlock: shortBlockLen,
				})
			}
			if longBlocks := blocks - numShortBlocks; longBlocks > 0 {
				groups = append(groups, blockGroup{
					nBlocks:            longBlocks,
					dataWordsPerBlock:  shortBlockLen - eccPerBlock + 1,
					totalWordsPerBlock: shortBlockLen + 1,
				})
			}

			info := perLevelInfo{nDataWords: nDataWords, blockGroups: groups}
			availBits := nDataWords*8 - 4 // Mode indicator is always 4 bits.
			for m := ModeNumeric; m <= ModeKanji; m++ {
				ccBits := m.ccIndicatorBits(v)
				modeAvail := availBits - ccBits
				info.capacity[m] = maxUnitsForMode(m, modeAvail)
			}
			perVersion[v][e] = info
		}
	}
}

// maxUnitsForMode returns the largest number of input units (characters, or
// bytes for Byte mode) whose mode-specific encoding (spec §4.2) fits within
// availBits bits. Returns 0 if availBits < 0.
func maxUnitsForMode(m Mode, availBits int) int {
	if availBits < 0 {
		return 0
	}
	switch m {
	case ModeNumeric:
		n := (availBits / 10) * 3
		switch rem := availBits % 10; {
		case rem >= 7:
			n += 2
		case rem >= 4:
			n++
		}
		return n
	case ModeAlphanumeric:
		n := (availBits / 11) * 2
		if availBits%11 >= 6 {
			n++
		}
		return n
	case ModeByte:
		return availBits / 8
	default: // Kanji: unimplemented, no usable capacity.
		return 0
	}
}

// initVersionInfoWords precomputes the 18-bit BCH(18,6)-protected version
// word for every version >= 7 (spec §3, §4.7).
func initVersionInfoWords() {
	for v := 7; v <= 40; v++ {
		rem := v
		for i := 0; i < 12; i++ {
			rem = rem<<1 ^ (rem>>11)*0x1F25
		}
		bits := v<<12 | rem
		if bits>>18 != 0 {
			panic("incorrect version info calculation")
		}
		versionInfoWords[v] = bits
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a >= 0 {
		return a
	}
	return -a
}

func getBit(x, i int) int {
	return x >> i & 1
}

func getBitAsBool(x, i int) bool {
	return x>>i&1 == 1
}
