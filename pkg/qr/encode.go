package qr

import (
	"fmt"
)

// Pad codewords alternate after the terminator until the symbol is full.
var padCodewords = [2]byte{0xEC, 0x11}

// Symbol holds the data codewords of one QR code symbol.
type Symbol struct {
	Text    string `json:"text"`
	Version int    `json:"version"`
	Level   Level  `json:"level"`
	Mode    Mode   `json:"mode"`
	Data    []byte `json:"data"`
}

// EncodeData picks the mode and the smallest version for text at level and
// packs it into data codewords.
func EncodeData(text string, level Level) (*Symbol, error) {
	mode := DetectMode(text)
	version, err := SelectVersion(len(text), mode, level)
	if err != nil {
		return nil, err
	}
	return EncodeDataVersion(text, level, version)
}

// EncodeDataVersion packs text into a symbol of a fixed version.
func EncodeDataVersion(text string, level Level, version int) (*Symbol, error) {
	mode := DetectMode(text)

	capacity, err := Capacity(version, mode, level)
	if err != nil {
		return nil, err
	}
	if len(text) > capacity {
		return nil, fmt.Errorf("data too long: %d %s characters exceed version %d-%s capacity %d",
			len(text), mode, version, level, capacity)
	}

	info, err := BlockInfo(version, level)
	if err != nil {
		return nil, err
	}

	var buf BitBuffer
	buf.AppendBits(mode.indicator(), 4)
	buf.AppendBits(uint32(len(text)), mode.countBits(version))
	if err := appendSegment(&buf, text, mode); err != nil {
		return nil, fmt.Errorf("failed to encode %s data: %w", mode, err)
	}

	if err := pad(&buf, info.TotalDataCodewords()*8); err != nil {
		return nil, err
	}

	return &Symbol{
		Text:    text,
		Version: version,
		Level:   level,
		Mode:    mode,
		Data:    buf.Bytes(),
	}, nil
}

func appendSegment(buf *BitBuffer, text string, mode Mode) error {
	switch mode {
	case Numeric:
		// Groups of three digits take 10 bits, a trailing pair 7, a single 4.
		for i := 0; i < len(text); i += 3 {
			end := min(i+3, len(text))
			var v uint32
			for _, c := range []byte(text[i:end]) {
				v = v*10 + uint32(c-'0')
			}
			buf.AppendBits(v, [...]int{0, 4, 7, 10}[end-i])
		}
	case Alphanumeric:
		for i := 0; i+1 < len(text); i += 2 {
			a, err := alphanumericCode(text[i])
			if err != nil {
				return err
			}
			b, err := alphanumericCode(text[i+1])
			if err != nil {
				return err
			}
			buf.AppendBits(a*45+b, 11)
		}
		if len(text)%2 == 1 {
			a, err := alphanumericCode(text[len(text)-1])
			if err != nil {
				return err
			}
			buf.AppendBits(a, 6)
		}
	case Byte:
		buf.AppendBytes([]byte(text))
	default:
		return fmt.Errorf("unsupported mode %s", mode)
	}
	return nil
}

// pad appends the terminator, aligns to a byte and fills with pad codewords.
func pad(buf *BitBuffer, capacityBits int) error {
	if buf.Len() > capacityBits {
		return fmt.Errorf("encoded data of %d bits exceeds capacity of %d bits", buf.Len(), capacityBits)
	}

	buf.AppendBits(0, min(4, capacityBits-buf.Len()))
	if r := buf.Len() % 8; r != 0 {
		buf.AppendBits(0, 8-r)
	}
	for i := 0; buf.Len() < capacityBits; i++ {
		buf.AppendBits(uint32(padCodewords[i%2]), 8)
	}
	return nil
}
