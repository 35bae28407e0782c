package qr

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/reedsolomon"
)

// Block is one error correction block: a run of data codewords and the
// correction codewords computed over it.
type Block struct {
	Group int    `json:"group"`
	Data  []byte `json:"data"`
	ECC   []byte `json:"ecc"`
}

// Blocks splits the symbol's data codewords into groups and blocks and
// computes each block's error correction codewords.
func (s *Symbol) Blocks() ([]Block, error) {
	info, err := BlockInfo(s.Version, s.Level)
	if err != nil {
		return nil, err
	}
	if len(s.Data) != info.TotalDataCodewords() {
		return nil, fmt.Errorf("symbol %d-%s has %d data codewords, want %d",
			s.Version, s.Level, len(s.Data), info.TotalDataCodewords())
	}

	blocks := make([]Block, 0, info.NumBlocks())
	offset := 0
	groups := []struct{ count, size int }{
		{info.Group1Blocks, info.Group1DataCodewords},
		{info.Group2Blocks, info.Group2DataCodewords},
	}
	for g, group := range groups {
		for i := 0; i < group.count; i++ {
			data := s.Data[offset : offset+group.size]
			offset += group.size

			ecc, err := reedsolomon.Encode(data, info.CodewordsPerBlock)
			if err != nil {
				return nil, fmt.Errorf("block %d of group %d: %w", i+1, g+1, err)
			}
			blocks = append(blocks, Block{
				Group: g + 1,
				Data:  append([]byte(nil), data...),
				ECC:   ecc,
			})
		}
	}

	return blocks, nil
}

// Interleave takes the first data codeword of every block, then the second,
// and so on, followed by the correction codewords in the same order.
func Interleave(blocks []Block) []byte {
	var maxData, maxECC, total int
	for _, b := range blocks {
		maxData = max(maxData, len(b.Data))
		maxECC = max(maxECC, len(b.ECC))
		total += len(b.Data) + len(b.ECC)
	}

	out := make([]byte, 0, total)
	for i := 0; i < maxData; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				out = append(out, b.Data[i])
			}
		}
	}
	for i := 0; i < maxECC; i++ {
		for _, b := range blocks {
			if i < len(b.ECC) {
				out = append(out, b.ECC[i])
			}
		}
	}
	return out
}
