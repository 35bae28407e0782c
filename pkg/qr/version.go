package qr

import "fmt"

const (
	MinVersion = 1
	MaxVersion = 40
)

// ECInfo is the block structure of one (version, level) pair. Group 2
// blocks, if any, carry one more data codeword than group 1 blocks.
type ECInfo struct {
	CodewordsPerBlock   int `json:"ec_codewords_per_block"`
	Group1Blocks        int `json:"group1_blocks"`
	Group1DataCodewords int `json:"group1_data_codewords"`
	Group2Blocks        int `json:"group2_blocks"`
	Group2DataCodewords int `json:"group2_data_codewords"`
}

// TotalDataCodewords is the number of data codewords in the symbol.
func (e ECInfo) TotalDataCodewords() int {
	return e.Group1Blocks*e.Group1DataCodewords + e.Group2Blocks*e.Group2DataCodewords
}

// NumBlocks is the number of blocks across both groups.
func (e ECInfo) NumBlocks() int {
	return e.Group1Blocks + e.Group2Blocks
}

// TotalCodewords is data plus error correction codewords.
func (e ECInfo) TotalCodewords() int {
	return e.TotalDataCodewords() + e.NumBlocks()*e.CodewordsPerBlock
}

// BlockInfo looks up the block structure for a version and level.
func BlockInfo(version int, level Level) (ECInfo, error) {
	if version < MinVersion || version > MaxVersion {
		return ECInfo{}, fmt.Errorf("unsupported version %d, expected %d-%d", version, MinVersion, MaxVersion)
	}
	if !level.valid() {
		return ECInfo{}, fmt.Errorf("unsupported error correction level %s", level)
	}
	return ecBlocks[level][version-1], nil
}

// Capacity returns how many characters of the given mode fit in a symbol.
func Capacity(version int, mode Mode, level Level) (int, error) {
	if version < MinVersion || version > MaxVersion {
		return 0, fmt.Errorf("unsupported version %d, expected %d-%d", version, MinVersion, MaxVersion)
	}
	if !level.valid() {
		return 0, fmt.Errorf("unsupported error correction level %s", level)
	}
	if mode < Numeric || mode > Byte {
		return 0, fmt.Errorf("unsupported mode %s", mode)
	}
	return characterCapacity[mode][level][version-1], nil
}

// SelectVersion returns the smallest version holding length characters.
func SelectVersion(length int, mode Mode, level Level) (int, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		c, err := Capacity(v, mode, level)
		if err != nil {
			return 0, err
		}
		if length <= c {
			return v, nil
		}
	}
	return 0, fmt.Errorf("data too long: %d %s characters exceed version %d-%s capacity", length, mode, MaxVersion, level)
}
