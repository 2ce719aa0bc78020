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
 * Format- and version-information encoding (spec §4.7), adapted from the
 * teacher's drawFormatBits/drawVersion. Format info uses a BCH(15,5) code
 * with generator polynomial 0x537 and the fixed XOR mask 0x5412; version
 * info (version >= 7 only) uses the precomputed BCH(18,6) words in
 * versionInfoWords (tables.go).
 */

package qrencode

const (
	formatInfoGenerator = 0x537
	formatInfoXorMask   = 0x5412
)

// writeFormatInfo computes the 15-bit format-information word for (level,
// mask) and writes it, bit 0 first, into both reserved regions.
func (g *workGrid) writeFormatInfo(level Level, mask int) {
	data := level.formatBits()<<3 | mask

	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * formatInfoGenerator)
	}
	bits := (data<<10 | rem) ^ formatInfoXorMask

	regions := formatInfoRegions(g.dim)
	for _, region := range regions {
		for i, p := range region {
			g.modules[p.Row][p.Col] = getBitAsBool(bits, i)
		}
	}
}

// writeVersionInfo writes the 18-bit version-information word for versions
// 7 and above into both reserved regions; it is a no-op below version 7.
func (g *workGrid) writeVersionInfo(version int) {
	if version < 7 {
		return
	}
	bits := versionInfoWords[version]
	for _, region := range versionInfoRegions(g.dim) {
		for i, p := range region {
			g.modules[p.Row][p.Col] = getBitAsBool(bits, i)
		}
	}
}
