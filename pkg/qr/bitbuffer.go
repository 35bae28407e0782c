package qr

import (
	"fmt"
	"strings"
)

// BitBuffer is an append-only, MSB-first bit stream.
type BitBuffer struct {
	data []byte
	n    int
}

// AppendBits appends the low nbits of v, most significant first.
func (b *BitBuffer) AppendBits(v uint32, nbits int) {
	if nbits < 0 || nbits > 32 {
		panic(fmt.Sprintf("qr: cannot append %d bits", nbits))
	}
	for i := nbits - 1; i >= 0; i-- {
		if b.n%8 == 0 {
			b.data = append(b.data, 0)
		}
		if v>>uint(i)&1 == 1 {
			b.data[b.n/8] |= 0x80 >> uint(b.n%8)
		}
		b.n++
	}
}

// AppendBytes appends whole bytes.
func (b *BitBuffer) AppendBytes(p []byte) {
	for _, c := range p {
		b.AppendBits(uint32(c), 8)
	}
}

// Len returns the number of bits written.
func (b *BitBuffer) Len() int {
	return b.n
}

// Bytes returns the stream, with a partial final byte zero-padded.
func (b *BitBuffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// String renders the stream as '0' and '1' characters.
func (b *BitBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.data[i/8]&(0x80>>uint(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
