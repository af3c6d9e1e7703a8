package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, uint16(0xA2F0), Combine(0xA2, 0xF0))
	assert.Equal(t, uint16(0x00E0), Combine(0x00, 0xE0))
}

func TestHighLow(t *testing.T) {
	assert.Equal(t, uint8(0xD0), High(0xD015))
	assert.Equal(t, uint8(0x15), Low(0xD015))
}

func TestCheckedAdd(t *testing.T) {
	testCases := []struct {
		desc     string
		a, b     uint8
		want     uint8
		overflow bool
	}{
		{desc: "no overflow", a: 0x10, b: 0x20, want: 0x30},
		{desc: "overflow wraps", a: 0xFF, b: 0x01, want: 0x00, overflow: true},
		{desc: "overflow keeps low bits", a: 0xF0, b: 0x20, want: 0x10, overflow: true},
		{desc: "max without overflow", a: 0xFE, b: 0x01, want: 0xFF},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, overflow := CheckedAdd(tC.a, tC.b)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.overflow, overflow)
		})
	}
}

func TestCheckedSub(t *testing.T) {
	testCases := []struct {
		desc   string
		a, b   uint8
		want   uint8
		borrow bool
	}{
		{desc: "no borrow", a: 0x30, b: 0x20, want: 0x10},
		{desc: "borrow wraps", a: 0x00, b: 0x01, want: 0xFF, borrow: true},
		{desc: "equal values", a: 0x42, b: 0x42, want: 0x00},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, borrow := CheckedSub(tC.a, tC.b)
			assert.Equal(t, tC.want, got)
			assert.Equal(t, tC.borrow, borrow)
		})
	}
}

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0, 0b0000_0001))
	assert.True(t, IsSet(7, 0b1000_0000))
	assert.False(t, IsSet(3, 0b1111_0111))
}
