package readers

import (
	"fmt"
	"io"
)

func read_fixed(r io.Reader, size int) ([]byte, error) {
	into := make([]byte, size)
	n, err := io.ReadFull(r, into)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v bytes (got only %v)", size, n)
	}

	return into, nil
}

// Advance advances a reader forwards.
// It's a forward-only seek for something that doesn't seek.
func Advance(r io.Reader, size int) error {
	_, err := read_fixed(r, size)
	return err
}

func Read_u8(r io.Reader) (uint8, error) {
	bytes, err := read_fixed(r, 1)
	if err != nil {
		return 0, err
	}
	return bytes[0], nil
}

// Read_fixed_u8 reads a byte that is only allowed to have one value.
// (savedata records end with a mystery byte which is always 0)
func Read_fixed_u8(r io.Reader, expected uint8) error {
	b, err := Read_u8(r)
	if err != nil {
		return err
	}
	if b != expected {
		return fmt.Errorf("expected byte %v, got %v", expected, b)
	}
	return nil
}

// Everything multi-byte in savedata.bin is big-endian.

func Read_u16_be(r io.Reader) (uint16, error) {
	bytes, err := read_fixed(r, 2)
	if err != nil {
		return 0, err
	}
	out := uint16(0)
	for cur := 0; cur < 2; cur++ {
		out = out<<8 + uint16(bytes[cur])
	}

	return out, nil
}

func Read_u32_be(r io.Reader) (uint32, error) {
	bytes, err := read_fixed(r, 4)
	if err != nil {
		return 0, err
	}
	out := uint32(0)
	for cur := 0; cur < 4; cur++ {
		out = out<<8 + uint32(bytes[cur])
	}

	return out, nil
}

func Read_u64_be(r io.Reader) (uint64, error) {
	bytes, err := read_fixed(r, 8)
	if err != nil {
		return 0, err
	}
	out := uint64(0)
	for cur := 0; cur < 8; cur++ {
		out = out<<8 + uint64(bytes[cur])
	}

	return out, nil
}
