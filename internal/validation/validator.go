package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Davincible/qrecc/pkg/qr"
	"github.com/Davincible/qrecc/pkg/reedsolomon"
)

var (
	hexPattern     = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	decimalPattern = regexp.MustCompile(`^[0-9]{1,3}$`)
)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

// ValidateDecimalCodewords checks that every field is a base-10 byte value.
func ValidateDecimalCodewords(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("codeword list cannot be empty")
	}

	for i, f := range fields {
		if !decimalPattern.MatchString(f) {
			return fmt.Errorf("codeword %d is not a decimal number: %q", i+1, f)
		}
		if v, _ := strconv.Atoi(f); v > 255 {
			return fmt.Errorf("codeword %d out of range 0-255: %s", i+1, f)
		}
	}

	return nil
}

// ValidateBlockParams checks a data length and correction codeword count
// against the polynomial capacity.
func ValidateBlockParams(dataLen, codewords int) error {
	if codewords < 1 || codewords > reedsolomon.MaxCodewords {
		return fmt.Errorf("%w: codewords must be between 1 and %d (got %d)",
			reedsolomon.ErrInvalidParameter, reedsolomon.MaxCodewords, codewords)
	}

	if dataLen+codewords > reedsolomon.Capacity {
		return fmt.Errorf("%w: %d data + %d correction codewords exceed %d",
			reedsolomon.ErrInvalidParameter, dataLen, codewords, reedsolomon.Capacity)
	}

	return nil
}

// ValidateVersion accepts 0 (pick automatically) or a symbol version.
func ValidateVersion(version int) error {
	if version == 0 {
		return nil
	}

	if version < qr.MinVersion || version > qr.MaxVersion {
		return fmt.Errorf("version must be between %d and %d (got %d)", qr.MinVersion, qr.MaxVersion, version)
	}

	return nil
}
