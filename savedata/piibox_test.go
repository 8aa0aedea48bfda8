package savedata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"piidump/types"
)

func Test_PackUnpack(t *testing.T) {
	for mons := uint16(0); mons < 512; mons += 1 {
		for form := uint16(0); form < 32; form += 1 {
			for sex := uint16(0); sex < 8; sex += 1 {
				packed := Pack_pii(mons, form, sex)
				m, f, s := Unpack_pii(packed)

				if m != mons || s != sex {
					t.Fatalf("pack(%v,%v,%v) -> unpack gave mons=%v sex=%v", mons, form, sex, m, s)
				}
				// Bit 2 is shared between form and sex, and sex owns it on
				// the way in.  So the form that comes back has its low bit
				// replaced by sex's bit 2.
				want_form := form&^1 | sex>>2&1
				if f != want_form {
					t.Fatalf("pack(%v,%v,%v) -> unpack gave form=%v, want %v", mons, form, sex, f, want_form)
				}
			}
		}
	}
}

func Test_PackedWordSurvivesRoundTrip(t *testing.T) {
	// The inverse direction must be exact for every possible word, shared
	// bit included - otherwise load-save would corrupt records.
	for raw := 0; raw <= 0xFFFF; raw += 1 {
		m, f, s := Unpack_pii(uint16(raw))
		repacked := Pack_pii(m, f, s)
		if repacked != uint16(raw) {
			t.Fatalf("word %04x repacked as %04x", raw, repacked)
		}
	}
}

func Test_SplitJoin(t *testing.T) {
	high, low := Split_u32(0xaaaabbbb)
	require.Equal(t, uint16(0xaaaa), high)
	require.Equal(t, uint16(0xbbbb), low)
	require.Equal(t, uint32(0xaaaabbbb), Join_u32(0xaaaa, 0xbbbb))

	for _, v := range []uint32{0, 1, 0xFFFF, 0x10000, 0xDEADBEEF, 0xFFFFFFFF} {
		h, l := Split_u32(v)
		require.Equal(t, v, Join_u32(h, l))
	}
}

// test_pii builds a record whose fields are consistent with the packed
// layout (shared bit agrees between form and sex), so it survives a
// write-extract round trip field for field.
func test_pii(n int) types.Pii {
	mons, form, sex := Unpack_pii(uint16(n * 0o1147))
	return types.Pii{
		Mons_no:       mons,
		Form_no:       form,
		Sex:           sex,
		Move1_id:      uint16(n * 7),
		Move2_id:      uint16(n * 13),
		Level:         uint16(n + 1),
		Bonus_max_hp:  uint32(n) * 0x10003,
		Bonus_attack:  uint32(n) * 0x20005,
		Bonus_defence: uint32(n) * 0x30007,
		Bonus_speed:   uint32(n) * 0x4000B,
		Trait:         uint16(n % 25),
		Flags:         uint16(n * 0x111),
		Pii_id:        uint32(n) * 0x01010101,
		Time:          uint64(n) * 60_750_000,
		Trainer_id:    uint32(n) * 3,
	}
}

func Test_PiiboxRoundTrip(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)

	box := []types.Pii{}
	for n := 0; n < 7; n += 1 {
		box = append(box, test_pii(n))
	}

	require.NoError(t, Write_piibox(buf, box))
	got, err := Extract_piibox(buf)
	require.NoError(t, err)
	require.Equal(t, box, got)
}

func Test_EmptyPiibox(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)
	require.NoError(t, Write_piibox(buf, nil))

	got, err := Extract_piibox(buf)
	require.NoError(t, err)
	require.Empty(t, got)
}

func Test_WriteLeavesTrailingBytesAlone(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)
	require.NoError(t, Write_piibox(buf, []types.Pii{test_pii(1), test_pii(2)}))
	two_records := append([]byte{}, buf...)

	// Shrink the box to one record; the second record's old bytes stay put.
	require.NoError(t, Write_piibox(buf, []types.Pii{test_pii(1)}))
	require.Equal(t, two_records[PIIBOX_OFFSET+2+SIZEOF_PII:], buf[PIIBOX_OFFSET+2+SIZEOF_PII:])
}

func Test_SplitStorageIsNotContiguous(t *testing.T) {
	// The u32 stats must land as (low ... high), not as one big-endian u32.
	buf := make([]byte, SAVEDATA_SIZE)
	pii := test_pii(0)
	pii.Bonus_max_hp = 0x11223344
	require.NoError(t, Write_piibox(buf, []types.Pii{pii}))

	record := buf[PIIBOX_OFFSET+2:]
	require.Equal(t, []byte{0x33, 0x44}, record[8:10], "low half, early in the record")
	require.Equal(t, []byte{0x11, 0x22}, record[24:26], "high half, late in the record")
}

func Test_BadTrailingByte(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)
	require.NoError(t, Write_piibox(buf, []types.Pii{test_pii(3)}))

	buf[PIIBOX_OFFSET+2+SIZEOF_PII-1] = 7

	_, err := Extract_piibox(buf)
	require.Error(t, err)
	require.IsType(t, FormatError{}, err)
}

func Test_CountRunsPastBuffer(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)
	buf[PIIBOX_OFFSET] = 0xFF
	buf[PIIBOX_OFFSET+1] = 0xFF

	_, err := Extract_piibox(buf)
	require.Error(t, err)
	require.IsType(t, FormatError{}, err)
}

func Test_WriteBoxTooBigForBuffer(t *testing.T) {
	buf := make([]byte, SAVEDATA_SIZE)
	box := make([]types.Pii, 5000) // needs more bytes than sit after the offset

	err := Write_piibox(buf, box)
	require.Error(t, err)
	require.IsType(t, FormatError{}, err)
}

func Test_PiiboxSizeChecks(t *testing.T) {
	short := make([]byte, 100)

	_, err := Extract_piibox(short)
	require.IsType(t, SizeError{}, err)

	err = Write_piibox(short, nil)
	require.IsType(t, SizeError{}, err)
}
