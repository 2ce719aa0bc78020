/*
 * Reed-Solomon block splitting and interleaving (spec §4.3 block split,
 * §4.4 interleaving). The two-pass column interleave (data codewords
 * column-wise, then EC codewords column-wise) is the direct implementation
 * of spec §4.4's description; see SPEC_FULL.md DECISIONS for why this
 * differs in shape (but not in result) from the teacher's single combined
 * loop.
 */

package qrencode

// block is one Reed-Solomon block: its data codewords and the EC codewords
// computed from them.
type block struct {
	data []byte
	ec   []byte
}

// splitIntoBlocks partitions dataWords across this Builder's block groups
// and computes each block's EC codewords (spec §4.3).
func (b *Builder) splitIntoBlocks(dataWords []byte) []block {
	ecWords := eccCodewordsPerBlock[b.level][b.version]

	var blocks []block
	offset := 0
	for _, g := range perVersion[b.version][b.level].blockGroups {
		for i := 0; i < g.nBlocks; i++ {
			data := dataWords[offset : offset+g.dataWordsPerBlock]
			offset += g.dataWordsPerBlock
			blocks = append(blocks, block{
				data: data,
				ec:   computeECCodewords(data, ecWords),
			})
		}
	}
	return blocks
}

// interleave reorders data codewords then EC codewords by taking column i
// across every block in order, skipping blocks too short to contribute at
// that column (spec §4.4).
func interleave(blocks []block) []byte {
	maxData, maxEC := 0, 0
	for _, blk := range blocks {
		maxData = max(maxData, len(blk.data))
		maxEC = max(maxEC, len(blk.ec))
	}

	result := make([]byte, 0, maxData*len(blocks)+maxEC*len(blocks))
	for i := 0; i < maxData; i++ {
		for _, blk := range blocks {
			if i < len(blk.data) {
				result = append(result, blk.data[i])
			}
		}
	}
	for i := 0; i < maxEC; i++ {
		for _, blk := range blocks {
			if i < len(blk.ec) {
				result = append(result, blk.ec[i])
			}
		}
	}
	return result
}
