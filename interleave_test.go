package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterleaveMatchesScenarioPrefix(t *testing.T) {
	payload := []byte("https://github.com/caozhanhao/qrcode.mbt")
	b, err := NewBuilder(len(payload))
	assert.NoError(t, err)

	dataWords, err := b.buildDataCodewords(payload)
	assert.NoError(t, err)

	blocks := b.splitIntoBlocks(dataWords)
	got := interleave(blocks)

	want := []byte{66, 151, 22, 54, 134, 70, 247, 246, 135, 135, 166, 70, 71, 86, 134, 82}
	assert.Equal(t, want, got[:len(want)])

	total := 0
	for _, g := range perVersion[b.Version()][b.Level()].blockGroups {
		total += g.nBlocks * g.totalWordsPerBlock
	}
	assert.Equal(t, total, len(got))
}

func TestInterleaveSingleBlockIsIdentity(t *testing.T) {
	blocks := []block{{data: []byte{1, 2, 3}, ec: []byte{9, 8}}}
	got := interleave(blocks)
	assert.Equal(t, []byte{1, 2, 3, 9, 8}, got)
}
