package writers

// Byte-level writers for savedata.bin.
// Mirror images of the functions in readers; everything is big-endian.

import (
	"io"
)

func Write_u8(out io.Writer, b uint8) (int, error) {
	return out.Write([]byte{b})
}

func Write_u16_be(out io.Writer, v uint16) (int, error) {
	return out.Write([]byte{uint8(v >> 8), uint8(v)})
}

func Write_u32_be(out io.Writer, v uint32) (int, error) {
	return out.Write([]byte{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)})
}

func Write_u64_be(out io.Writer, v uint64) (int, error) {
	return out.Write([]byte{
		uint8(v >> 56), uint8(v >> 48), uint8(v >> 40), uint8(v >> 32),
		uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v),
	})
}
