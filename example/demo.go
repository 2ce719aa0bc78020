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
 * demo builds a QR code for a command-line argument, logs the resolved
 * configuration with zerolog, writes the SVG rendering to a temp file and
 * opens it with pkg/browser, and prints the two-character-per-module text
 * rendering from QRCode.String.
 */

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/kessaljr/qrencode"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	text := "https://www.iso.org/standard/62021.html"
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	builder, err := qrencode.NewBuilder(len(text), qrencode.WithMode(qrencode.ModeByte))
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build a QR code configuration")
	}

	logger.Info().
		Int("version", builder.Version()).
		Str("level", builder.Level().String()).
		Msg("resolved configuration")

	code, err := builder.Generate([]byte(text))
	if err != nil {
		logger.Fatal().Err(err).Msg("could not generate QR code")
	}

	logger.Info().Int("mask", code.Mask).Int("dimension", code.Dimension()).Msg("generated")
	fmt.Println(code.String())

	svg, err := code.ToSVGString(4, true)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not render SVG")
	}

	f, err := os.CreateTemp("", "qrencode-*.svg")
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create temp file")
	}
	defer f.Close()

	if _, err := f.WriteString(svg); err != nil {
		logger.Fatal().Err(err).Msg("could not write SVG")
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		logger.Warn().Err(err).Msg("could not open browser; SVG is at " + f.Name())
	}
}
