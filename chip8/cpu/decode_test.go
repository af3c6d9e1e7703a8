package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		desc string
		raw  uint16
		want Opcode
	}{
		{
			desc: "draw instruction",
			raw:  0xD235,
			want: Opcode{Raw: 0xD235, NNN: 0x235, X: 0x2, Y: 0x3, KK: 0x35, N: 0x5},
		},
		{
			desc: "jump",
			raw:  0x1ABC,
			want: Opcode{Raw: 0x1ABC, NNN: 0xABC, X: 0xA, Y: 0xB, KK: 0xBC, N: 0xC},
		},
		{
			desc: "clear screen",
			raw:  0x00E0,
			want: Opcode{Raw: 0x00E0, NNN: 0x0E0, X: 0x0, Y: 0xE, KK: 0xE0, N: 0x0},
		},
		{
			desc: "all bits set",
			raw:  0xFFFF,
			want: Opcode{Raw: 0xFFFF, NNN: 0xFFF, X: 0xF, Y: 0xF, KK: 0xFF, N: 0xF},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, Decode(tC.raw))
		})
	}
}
