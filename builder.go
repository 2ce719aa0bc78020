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
 * Builder construction and auto-selection (spec §4.1, §6). The functional-
 * options shape is carried over from the teacher's segmentencoder.go; the
 * selection algorithm itself has no teacher equivalent (the teacher only
 * widens ECL upward after fixing the smallest fitting version at a single
 * starting level) and is implemented directly from spec §4.1's description.
 */

package qrencode

import "fmt"

// AutoVersion requests automatic version selection.
const AutoVersion = -1

// AutoMask requests automatic mask selection.
const AutoMask = -1

// MinVersion and MaxVersion bound the legal QR code version range.
const (
	MinVersion = 1
	MaxVersion = 40
)

// Builder holds the resolved, immutable configuration used by Generate
// (spec §3 BuilderConfig).
type Builder struct {
	version                  int
	level                    Level
	mode                     Mode
	mask                     int
	dimension                int
	functionPatternPositions PositionSet
}

type builderOptions struct {
	version int
	level   Level
	mode    Mode
	mask    int
}

// BuilderOption configures NewBuilder.
type BuilderOption func(*builderOptions)

// WithVersion pins the QR code version (1..40). Defaults to AutoVersion.
func WithVersion(version int) BuilderOption {
	return func(o *builderOptions) { o.version = version }
}

// WithLevel pins the error-correction level. Defaults to AutoLevel.
func WithLevel(level Level) BuilderOption {
	return func(o *builderOptions) { o.level = level }
}

// WithMode pins the encoding mode. Defaults to ModeByte.
func WithMode(mode Mode) BuilderOption {
	return func(o *builderOptions) { o.mode = mode }
}

// WithMask pins the mask index (0..7). Defaults to AutoMask.
func WithMask(mask int) BuilderOption {
	return func(o *builderOptions) { o.mask = mask }
}

// NewBuilder resolves a concrete (version, level) for a payload of
// dataLength input units (bytes for Byte mode, characters otherwise) and
// returns a ready-to-use Builder. Only the length is checked here: Generate
// can still return ErrModeViolation for bytes outside the mode's alphabet,
// or ErrPayloadTooLarge when the payload does not fit the resolved version
// and level.
func NewBuilder(dataLength int, opts ...BuilderOption) (*Builder, error) {
	o := builderOptions{version: AutoVersion, level: AutoLevel, mode: ModeByte, mask: AutoMask}
	for _, opt := range opts {
		opt(&o)
	}

	if o.mode == ModeKanji {
		return nil, fmt.Errorf("kanji mode: %w", ErrNotImplemented)
	}
	if o.version != AutoVersion && (o.version < MinVersion || o.version > MaxVersion) {
		return nil, fmt.Errorf("version %d out of range [%d, %d]", o.version, MinVersion, MaxVersion)
	}
	if o.mask != AutoMask && (o.mask < 0 || o.mask > 7) {
		return nil, fmt.Errorf("mask %d out of range [0, 7]", o.mask)
	}

	version, level, err := resolveVersionLevel(dataLength, o.mode, o.version, o.level)
	if err != nil {
		return nil, err
	}

	dim := dimension(version)
	return &Builder{
		version:                  version,
		level:                    level,
		mode:                     o.mode,
		mask:                     o.mask,
		dimension:                dim,
		functionPatternPositions: functionPatternPositions(version, dim),
	}, nil
}

// Version, Level and Mode report the resolved configuration. Mask reports
// the requested mask, which is AutoMask when the mask is chosen per Generate
// call (the chosen index is in QRCode.Mask).
func (b *Builder) Version() int { return b.version }
func (b *Builder) Level() Level { return b.level }
func (b *Builder) Mode() Mode   { return b.mode }
func (b *Builder) Mask() int    { return b.mask }

// dimension computes the module width/height of a version-v symbol
// (spec §3: 21 + 4*(version-1)).
func dimension(version int) int {
	return 21 + 4*(version-1)
}

// resolveVersionLevel implements the four cases of spec §4.1.
func resolveVersionLevel(dataLength int, mode Mode, version int, level Level) (int, Level, error) {
	switch {
	case version != AutoVersion && level != AutoLevel:
		if perVersion[version][level].capacity[mode] < dataLength {
			return 0, 0, fmt.Errorf("%d units exceeds capacity %d at version %d level %s: %w",
				dataLength, perVersion[version][level].capacity[mode], version, level, ErrPayloadTooLarge)
		}
		return version, level, nil

	case version == AutoVersion && level == AutoLevel:
		for _, lvl := range []Level{LevelH, LevelQ, LevelM, LevelL} {
			if v, ok := smallestFittingVersion(dataLength, mode, lvl); ok {
				return v, lvl, nil
			}
		}
		return 0, 0, fmt.Errorf("%d units fit no (version, level) combination: %w", dataLength, ErrVersionUnavailable)

	case version == AutoVersion && level != AutoLevel:
		if v, ok := smallestFittingVersion(dataLength, mode, level); ok {
			return v, level, nil
		}
		return 0, 0, fmt.Errorf("%d units fit no version at level %s: %w", dataLength, level, ErrVersionUnavailable)

	default: // version != AutoVersion && level == AutoLevel
		for _, lvl := range []Level{LevelH, LevelQ, LevelM, LevelL} {
			if perVersion[version][lvl].capacity[mode] >= dataLength {
				return version, lvl, nil
			}
		}
		return 0, 0, fmt.Errorf("%d units fit no level at version %d: %w", dataLength, version, ErrLevelUnavailable)
	}
}

func smallestFittingVersion(dataLength int, mode Mode, level Level) (int, bool) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if perVersion[v][level].capacity[mode] >= dataLength {
			return v, true
		}
	}
	return 0, false
}
