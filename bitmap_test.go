package evdev

import (
	"reflect"
	"testing"
)

func Test_bitsToArray(t *testing.T) {
	tests := []struct {
		name string
		bits []byte
		want []int
	}{
		{
			name: "1",
			bits: []byte{0x01, 0xff},
			want: []int{0, 8, 9, 10, 11, 12, 13, 14, 15},
		},
		{
			name: "2",
			bits: []byte{},
			want: []int{},
		},
		{
			name: "all zero",
			bits: []byte{0x00, 0x00, 0x00},
			want: []int{},
		},
		{
			name: "3",
			bits: []byte{0x00, 0x00, 0x00, 0x00, 0x01},
			want: []int{32},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := newBitmap(tt.bits)
			if got := bm.setBits(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("setBits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_bitmap_bitIsSet(t *testing.T) {
	tests := []struct {
		name string
		bits []byte
		bit  int
		want bool
	}{
		{
			name: "1",
			bits: []byte{0x00, 0x00, 0x00, 0x00, 0x01},
			bit:  32,
			want: true,
		},
		{
			name: "2",
			bits: []byte{0x00, 0x00, 0x00, 0x00, 0x01},
			bit:  31,
			want: false,
		},
		{
			name: "out of range",
			bits: []byte{0xff},
			bit:  8,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := &bitmap{
				bits: tt.bits,
			}
			if got := bm.bitIsSet(tt.bit); got != tt.want {
				t.Errorf("bitmap.bitIsSet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_bitmap_setBit(t *testing.T) {
	tests := []struct {
		name string
		bit  int
		want []byte
	}{
		{
			name: "first",
			bit:  0,
			want: []byte{0x01, 0x00},
		},
		{
			name: "second byte",
			bit:  9,
			want: []byte{0x00, 0x02},
		},
		{
			name: "out of range",
			bit:  16,
			want: []byte{0x00, 0x00},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := newBitmap(make([]byte, 2))
			bm.setBit(tt.bit)
			if !reflect.DeepEqual(bm.bits, tt.want) {
				t.Errorf("setBit(%d) = %v, want %v", tt.bit, bm.bits, tt.want)
			}
		})
	}
}
