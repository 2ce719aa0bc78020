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
 */

package qrencode

// Level is the error-correction level of a QR code symbol.
type Level int8

// Error-correction levels, ordered weakest to strongest.
const (
	LevelL Level = iota // Recovers ~7% of data.
	LevelM              // Recovers ~15% of data.
	LevelQ              // Recovers ~25% of data.
	LevelH              // Recovers ~30% of data.
)

// AutoLevel requests automatic error-correction level selection.
const AutoLevel Level = -1

// formatBits returns the 2-bit field the format-information word encodes for
// this level (ISO/IEC 18004 table 25: L=01, M=00, Q=11, H=10).
func (l Level) formatBits() int {
	switch l {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	case LevelH:
		return 2
	default:
		panic("unknown error correction level")
	}
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	case AutoLevel:
		return "auto"
	default:
		return "invalid"
	}
}
