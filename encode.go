/*
 * Bit-stream assembly (spec §4.2) and top-level Generate orchestration
 * (spec §2 pipeline, §6 Builder.generate). Grounded in the teacher's
 * EncodeSegments (mode indicator, character-count indicator, terminator,
 * byte alignment, pad-byte fill), generalized to run off the resolved
 * Builder rather than a list of QRSegments.
 */

package qrencode

import "fmt"

// Generate runs the full pipeline (spec §2) and returns the assembled,
// masked QR code. Per spec §7, a successfully constructed Builder's
// Generate call does not fail for the reasons covered during construction;
// it can still fail if payload violates the chosen mode's alphabet or the
// capacity used during construction turns out insufficient for this exact
// payload (distinct units were requested than are actually supplied).
func (b *Builder) Generate(payload []byte) (*QRCode, error) {
	dataWords, err := b.buildDataCodewords(payload)
	if err != nil {
		return nil, err
	}

	blocks := b.splitIntoBlocks(dataWords)
	allCodewords := interleave(blocks)

	dim := b.dimension
	work := newWorkGrid(dim)
	work.drawFunctionPatterns(b.version, b.functionPatternPositions)
	work.drawCodewords(allCodewords, remainderBits[b.version], b.functionPatternPositions)

	mask := work.selectMask(b.mask, b.functionPatternPositions)
	work.writeFormatInfo(b.level, mask)
	work.writeVersionInfo(b.version)

	return &QRCode{
		Version: b.version,
		Level:   b.level,
		Mode:    b.mode,
		Mask:    mask,
		Modules: work.toPublicModules(),
	}, nil
}

// buildDataCodewords assembles the bit stream (mode indicator, character
// count indicator, mode-specific payload, terminator, byte alignment, pad
// bytes) and packs it into n_data_words codewords.
func (b *Builder) buildDataCodewords(payload []byte) ([]byte, error) {
	info := perVersion[b.version][b.level]
	capacityBits := info.nDataWords * 8

	var bb bitBuffer
	bb.appendBits(b.mode.modeBits(), 4)

	ccBits := b.mode.ccIndicatorBits(b.version)
	if len(payload) >= 1<<uint(ccBits) {
		return nil, fmt.Errorf("%d units exceeds character-count field width at version %d: %w",
			len(payload), b.version, ErrPayloadTooLarge)
	}
	bb.appendBits(len(payload), ccBits)

	if err := encodePayload(&bb, b.mode, payload); err != nil {
		return nil, err
	}

	if len(bb) > capacityBits {
		return nil, fmt.Errorf("encoded payload (%d bits) exceeds capacity (%d bits): %w",
			len(bb), capacityBits, ErrPayloadTooLarge)
	}

	bb.appendBits(0, min(4, capacityBits-len(bb)))
	bb.appendBits(0, (8-len(bb)%8)%8)

	for padByte := 0xEC; len(bb) < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.packCodewords(), nil
}
