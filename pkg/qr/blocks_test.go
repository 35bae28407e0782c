package qr

import (
	"strings"
	"testing"

	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockInfo(t *testing.T) {
	tests := []struct {
		version    int
		level      Level
		want       ECInfo
		dataWords  int
		totalWords int
	}{
		{1, LevelM, ECInfo{10, 1, 16, 0, 0}, 16, 26},
		{1, LevelL, ECInfo{7, 1, 19, 0, 0}, 19, 26},
		{5, LevelQ, ECInfo{18, 2, 15, 2, 16}, 62, 134},
		{40, LevelH, ECInfo{30, 20, 15, 61, 16}, 1276, 3706},
	}

	for _, tt := range tests {
		info, err := BlockInfo(tt.version, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, info)
		assert.Equal(t, tt.dataWords, info.TotalDataCodewords())
		assert.Equal(t, tt.totalWords, info.TotalCodewords())
	}

	_, err := BlockInfo(0, LevelL)
	assert.Error(t, err)
	_, err = BlockInfo(1, Level(7))
	assert.Error(t, err)
}

func TestBlocks_SingleBlock(t *testing.T) {
	sym, err := EncodeData("HELLO WORLD", LevelM)
	require.NoError(t, err)

	blocks, err := sym.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, sym.Data, blocks[0].Data)
	assert.Equal(t, []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}, blocks[0].ECC)

	codewords := Interleave(blocks)
	assert.Equal(t, append(append([]byte{}, sym.Data...), blocks[0].ECC...), codewords)
}

func TestBlocks_TwoGroups(t *testing.T) {
	text := strings.Repeat("HELLO WORLD ", 7)
	sym, err := EncodeDataVersion(text, LevelQ, 5)
	require.NoError(t, err)

	blocks, err := sym.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	sizes := []int{15, 15, 16, 16}
	offset := 0
	for i, b := range blocks {
		assert.Equal(t, []int{1, 1, 2, 2}[i], b.Group)
		assert.Len(t, b.Data, sizes[i])
		assert.Len(t, b.ECC, 18)
		assert.Equal(t, sym.Data[offset:offset+sizes[i]], b.Data)
		offset += sizes[i]

		ok, err := reedsolomon.Verify(append(append([]byte{}, b.Data...), b.ECC...), 18)
		require.NoError(t, err)
		assert.True(t, ok, "block %d", i)
	}

	codewords := Interleave(blocks)
	assert.Len(t, codewords, 134)

	// Column-wise: first data codeword of each block, in block order.
	assert.Equal(t, []byte{blocks[0].Data[0], blocks[1].Data[0], blocks[2].Data[0], blocks[3].Data[0]}, codewords[:4])
	// The extra codeword of the group 2 blocks comes last in the data section.
	assert.Equal(t, []byte{blocks[2].Data[15], blocks[3].Data[15]}, codewords[60:62])
	assert.Equal(t, blocks[0].ECC[0], codewords[62])
	assert.Equal(t, blocks[3].ECC[17], codewords[133])
}

func TestBlocks_DataLengthMismatch(t *testing.T) {
	sym := &Symbol{Version: 1, Level: LevelM, Data: []byte{1, 2, 3}}
	_, err := sym.Blocks()
	assert.Error(t, err)
}

func TestInterleave(t *testing.T) {
	blocks := []Block{
		{Data: []byte{1, 2}, ECC: []byte{9, 7}},
		{Data: []byte{3, 4, 5}, ECC: []byte{8, 6}},
	}
	assert.Equal(t, []byte{1, 3, 2, 4, 5, 9, 8, 7, 6}, Interleave(blocks))
	assert.Empty(t, Interleave(nil))
}
