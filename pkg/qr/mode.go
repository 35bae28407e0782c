package qr

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode is the character class a symbol's payload is encoded in.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
)

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericPattern      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericPattern = regexp.MustCompile(`^[0-9A-Z $%*+\-./:]*$`)
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// indicator is the 4-bit mode indicator written at the start of the stream.
func (m Mode) indicator() uint32 {
	switch m {
	case Numeric:
		return 0b0001
	case Alphanumeric:
		return 0b0010
	default:
		return 0b0100
	}
}

// countBits is the width of the character count field for version v.
func (m Mode) countBits(v int) int {
	switch {
	case v <= 9:
		return [...]int{10, 9, 8}[m]
	case v <= 26:
		return [...]int{12, 11, 16}[m]
	default:
		return [...]int{14, 13, 16}[m]
	}
}

// DetectMode returns the most compact mode that can represent s.
func DetectMode(s string) Mode {
	switch {
	case numericPattern.MatchString(s):
		return Numeric
	case alphanumericPattern.MatchString(s):
		return Alphanumeric
	default:
		return Byte
	}
}

func alphanumericCode(c byte) (uint32, error) {
	i := strings.IndexByte(alphanumericCharset, c)
	if i < 0 {
		return 0, fmt.Errorf("character %q is not in the alphanumeric set", c)
	}
	return uint32(i), nil
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	for _, c := range []Mode{Numeric, Alphanumeric, Byte} {
		if strings.EqualFold(string(text), c.String()) {
			*m = c
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", text)
}
