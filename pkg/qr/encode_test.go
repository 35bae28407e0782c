package qr

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"", Numeric},
		{"01234567", Numeric},
		{"HELLO WORLD", Alphanumeric},
		{"AC-42", Alphanumeric},
		{"$%*+-./:", Alphanumeric},
		{"Hello, World!", Byte},
		{"hello", Byte},
		{"HELLO\tWORLD", Byte},
		{"héllo", Byte},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMode(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"L", "m", " Q ", "h"} {
		l, err := ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(strings.TrimSpace(s)), l.String())
	}

	_, err := ParseLevel("X")
	assert.Error(t, err)
}

func TestSelectVersion(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		mode    Mode
		level   Level
		want    int
		wantErr bool
	}{
		{"fits version 1", 11, Alphanumeric, LevelM, 1, false},
		{"exactly version 1", 20, Alphanumeric, LevelM, 1, false},
		{"one over version 1", 21, Alphanumeric, LevelM, 2, false},
		{"numeric 1-L", 41, Numeric, LevelL, 1, false},
		{"byte at version 40", 2953, Byte, LevelL, 40, false},
		{"too long", 2954, Byte, LevelL, 0, true},
		{"too long at H", 1274, Byte, LevelH, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := SelectVersion(tt.length, tt.mode, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestEncodeData(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		level   Level
		version int
		mode    Mode
		want    []byte
	}{
		{
			name:    "numeric 01234567",
			text:    "01234567",
			level:   LevelM,
			version: 1,
			mode:    Numeric,
			want: []byte{
				0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11,
				0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
			},
		},
		{
			name:    "alphanumeric HELLO WORLD",
			text:    "HELLO WORLD",
			level:   LevelM,
			version: 1,
			mode:    Alphanumeric,
			want:    []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17},
		},
		{
			name:    "byte hello",
			text:    "hello",
			level:   LevelL,
			version: 1,
			mode:    Byte,
			want: []byte{
				0x40, 0x56, 0x86, 0x56, 0xC6, 0xC6, 0xF0, 0xEC, 0x11, 0xEC,
				0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
			},
		},
		{
			name:    "single digit",
			text:    "8",
			level:   LevelL,
			version: 1,
			mode:    Numeric,
			want: []byte{
				0x10, 0x06, 0x00, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC,
				0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, err := EncodeData(tt.text, tt.level)
			require.NoError(t, err)

			assert.Equal(t, tt.version, sym.Version)
			assert.Equal(t, tt.mode, sym.Mode)
			assert.Equal(t, tt.level, sym.Level)
			assert.Equal(t, tt.want, sym.Data)
		})
	}
}

func TestEncodeData_FillsCapacity(t *testing.T) {
	for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
		for _, text := range []string{"1", "31415926535897932384626", "QR CODE", "mixed Case text!"} {
			sym, err := EncodeData(text, level)
			require.NoError(t, err)

			info, err := BlockInfo(sym.Version, level)
			require.NoError(t, err)
			assert.Len(t, sym.Data, info.TotalDataCodewords(), "%q at %s", text, level)
		}
	}
}

func TestEncodeData_MaximumCapacity(t *testing.T) {
	// The capacity tables and the bit budget must agree at every version.
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, mode := range []Mode{Numeric, Alphanumeric, Byte} {
			c, err := Capacity(v, mode, LevelQ)
			require.NoError(t, err)

			text := strings.Repeat([]string{"7", "A", "a"}[mode], c)
			sym, err := EncodeDataVersion(text, LevelQ, v)
			require.NoError(t, err, "version %d %s", v, mode)
			assert.Equal(t, v, sym.Version)
		}
	}
}

func TestEncodeDataVersion_TooLong(t *testing.T) {
	_, err := EncodeDataVersion("HELLO WORLD", LevelH, 1)
	assert.Error(t, err)

	_, err = EncodeDataVersion("HELLO", LevelH, 41)
	assert.Error(t, err)

	_, err = EncodeData(strings.Repeat("x", 3000), LevelL)
	assert.Error(t, err)
}

func TestSymbolJSON(t *testing.T) {
	sym, err := EncodeData("HELLO WORLD", LevelQ)
	require.NoError(t, err)

	data, err := json.Marshal(sym)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"Q"`)
	assert.Contains(t, string(data), `"mode":"alphanumeric"`)

	var decoded struct {
		Level Level `json:"level"`
		Mode  Mode  `json:"mode"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, LevelQ, decoded.Level)
	assert.Equal(t, Alphanumeric, decoded.Mode)

	var m Mode
	assert.Error(t, m.UnmarshalText([]byte("kanji")))
}

func TestBitBuffer(t *testing.T) {
	var b BitBuffer
	b.AppendBits(0b0010, 4)
	b.AppendBits(11, 9)
	assert.Equal(t, 13, b.Len())
	assert.Equal(t, "0010000001011", b.String())
	assert.Equal(t, []byte{0x20, 0x58}, b.Bytes())

	b.AppendBytes([]byte{0xFF})
	assert.Equal(t, 21, b.Len())
	assert.Equal(t, []byte{0x20, 0x5F, 0xF8}, b.Bytes())

	assert.Panics(t, func() { b.AppendBits(0, 33) })
}
