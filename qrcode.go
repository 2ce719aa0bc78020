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
 * The QRCode result type (spec §3, §6) and its String/ToSVGString rendering
 * methods, adapted from the teacher's qrcode.go to read the public,
 * bottom-left-addressed Modules field rather than its own internal grid.
 */

package qrencode

import (
	"fmt"
	"strings"
)

// QRCode is the completed, immutable result of a successful Generate call
// (spec §3 QRCode, §6). Modules is addressed bottom-left: Modules[x][y] is
// true (dark) for the module at horizontal position x, vertical position y
// measured up from the bottom-left corner.
type QRCode struct {
	Version int
	Level   Level
	Mode    Mode
	Mask    int
	Modules [][]bool
}

// Dimension returns the module width/height of this symbol.
func (q *QRCode) Dimension() int {
	return len(q.Modules)
}

// String renders the symbol as a half-block-free, two-character-per-module
// text grid for quick inspection in logs and tests.
func (q *QRCode) String() string {
	dim := q.Dimension()
	var sb strings.Builder
	sb.WriteString("QRCode\n")
	fmt.Fprintf(&sb, "\tVersion: %d\n", q.Version)
	fmt.Fprintf(&sb, "\tDimension: %d\n", dim)
	fmt.Fprintf(&sb, "\tLevel: %s\n", q.Level)
	fmt.Fprintf(&sb, "\tMask: %d\n", q.Mask)
	sb.WriteString("\tModules\n")
	for y := dim - 1; y >= 0; y-- {
		sb.WriteString("\t\t")
		for x := 0; x < dim; x++ {
			if q.Modules[x][y] {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToSVGString renders the symbol as a standalone SVG document with border
// modules of light padding on every side.
func (q *QRCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("border must be non-negative")
	}

	dim := q.Dimension()
	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := dim - 1; y >= 0; y-- {
		row := dim - 1 - y
		for x := 0; x < dim; x++ {
			if q.Modules[x][y] {
				if !first {
					sb.WriteString(" ")
				}
				first = false
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, row+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
