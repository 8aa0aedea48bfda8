package savedata

// The pii box: a length-prefixed list of fixed-size pii records sitting at a
// known offset inside the decrypted buffer.
//
// The on-disk record layout is a trap for the unwary.  The species/form/sex
// triple is packed into one u16 (with a shared bit, see Pack_pii), and each
// u32 bonus stat is stored as two u16 halves at NON-adjacent offsets - low
// halves near the start of the record, high halves near the end.  None of
// this may be "simplified"; the game reads it back.

import (
	"bytes"
	"errors"
	"io"

	"piidump/readers"
	"piidump/types"
	"piidump/writers"
)

// PIIBOX_OFFSET is where the save slot's pii box lives inside savedata.bin.
const PIIBOX_OFFSET = 0x1360

// SIZEOF_PII is the on-disk size of one pii record.
const SIZEOF_PII = 0x2D

// Pack_pii packs the species/form/sex triple into the record's first word.
//
// Bit ranges (from the game's own bitfield):
//	species: bits 15-7
//	form:    bits  6-2
//	sex:     bits  2-0
// Bit 2 is claimed by both form and sex.  The game's constructor sets the
// fields in that order, so sex wins the shared bit; we do the same.
func Pack_pii(mons_no uint16, form_no uint16, sex uint16) uint16 {
	packed := (mons_no & 0x1FF) << 7
	packed |= (form_no & 0x1F) << 2
	packed = packed&^0x7 | sex&0x7

	return packed
}

// Unpack_pii is the inverse of Pack_pii.  The shared bit 2 comes back in
// both the form and sex fields; re-packing what this returns reproduces the
// input word bit-for-bit.
func Unpack_pii(packed uint16) (mons_no uint16, form_no uint16, sex uint16) {
	return packed >> 7 & 0x1FF, packed >> 2 & 0x1F, packed & 0x7
}

// Split_u32 splits a bonus stat into the (high, low) halves the file wants.
func Split_u32(v uint32) (high uint16, low uint16) {
	return uint16(v >> 16), uint16(v)
}

// Join_u32 reassembles a bonus stat from its two halves.
func Join_u32(high uint16, low uint16) uint32 {
	return uint32(high)<<16 | uint32(low)
}

func read_pii(r io.Reader) (types.Pii, error) {
	out := types.Pii{}

	// Field order is fixed.  Note the low stat halves here...
	packed, err := readers.Read_u16_be(r)
	if err != nil {
		return out, err
	}
	out.Mons_no, out.Form_no, out.Sex = Unpack_pii(packed)

	u16_fields := []*uint16{&out.Move1_id, &out.Move2_id, &out.Level}
	for _, f := range u16_fields {
		*f, err = readers.Read_u16_be(r)
		if err != nil {
			return out, err
		}
	}

	lows := [4]uint16{}
	for i := range lows {
		lows[i], err = readers.Read_u16_be(r)
		if err != nil {
			return out, err
		}
	}

	out.Trait, err = readers.Read_u16_be(r)
	if err != nil {
		return out, err
	}
	out.Flags, err = readers.Read_u16_be(r)
	if err != nil {
		return out, err
	}
	out.Pii_id, err = readers.Read_u32_be(r)
	if err != nil {
		return out, err
	}

	// ...and the high halves all the way over here.
	highs := [4]uint16{}
	for i := range highs {
		highs[i], err = readers.Read_u16_be(r)
		if err != nil {
			return out, err
		}
	}
	out.Bonus_max_hp = Join_u32(highs[0], lows[0])
	out.Bonus_attack = Join_u32(highs[1], lows[1])
	out.Bonus_defence = Join_u32(highs[2], lows[2])
	out.Bonus_speed = Join_u32(highs[3], lows[3])

	out.Time, err = readers.Read_u64_be(r)
	if err != nil {
		return out, err
	}
	out.Trainer_id, err = readers.Read_u32_be(r)
	if err != nil {
		return out, err
	}

	// Nobody knows what this byte is.  It is always 0.
	err = readers.Read_fixed_u8(r, 0)
	if err != nil {
		return out, err
	}

	return out, nil
}

func write_pii(w io.Writer, pii *types.Pii) error {
	hi_hp, lo_hp := Split_u32(pii.Bonus_max_hp)
	hi_atk, lo_atk := Split_u32(pii.Bonus_attack)
	hi_def, lo_def := Split_u32(pii.Bonus_defence)
	hi_spd, lo_spd := Split_u32(pii.Bonus_speed)

	u16_fields := []uint16{
		Pack_pii(pii.Mons_no, pii.Form_no, pii.Sex),
		pii.Move1_id, pii.Move2_id, pii.Level,
		lo_hp, lo_atk, lo_def, lo_spd,
		pii.Trait, pii.Flags,
	}
	for _, f := range u16_fields {
		if _, err := writers.Write_u16_be(w, f); err != nil {
			return err
		}
	}

	if _, err := writers.Write_u32_be(w, pii.Pii_id); err != nil {
		return err
	}

	for _, f := range []uint16{hi_hp, hi_atk, hi_def, hi_spd} {
		if _, err := writers.Write_u16_be(w, f); err != nil {
			return err
		}
	}

	if _, err := writers.Write_u64_be(w, pii.Time); err != nil {
		return err
	}
	if _, err := writers.Write_u32_be(w, pii.Trainer_id); err != nil {
		return err
	}
	_, err := writers.Write_u8(w, 0)
	return err
}

// Extract_piibox reads the pii box out of a decrypted savedata buffer.
// The buffer is not modified.
func Extract_piibox(savedata []byte) ([]types.Pii, error) {
	if len(savedata) != SAVEDATA_SIZE {
		return nil, SizeError{len(savedata)}
	}

	r := bytes.NewReader(savedata[PIIBOX_OFFSET:])
	count, err := readers.Read_u16_be(r)
	if err != nil {
		return nil, FormatError{-1, "savedata too short for a pii count"}
	}

	out := make([]types.Pii, 0, count)
	for i := 0; i < int(count); i += 1 {
		pii, err := read_pii(r)
		if err != nil {
			// Either the count points past the end of the buffer, or a
			// record's fixed byte was wrong.  Both are FormatErrors.
			return nil, FormatError{i, err.Error()}
		}
		out = append(out, pii)
	}

	return out, nil
}

// Write_piibox serializes a pii box back into a decrypted savedata buffer,
// in place.  The buffer is never resized; if the new box is shorter than the
// old one, whatever trailed it is left alone (the game relies on the count,
// not on the region being scrubbed).
//
// Remember to Encrypt afterwards - this writes plaintext.
func Write_piibox(savedata []byte, piibox []types.Pii) error {
	if len(savedata) != SAVEDATA_SIZE {
		return SizeError{len(savedata)}
	}
	if len(piibox) > 0xFFFF {
		return FormatError{-1, "pii box has more records than a u16 count can hold"}
	}
	if PIIBOX_OFFSET+2+len(piibox)*SIZEOF_PII > SAVEDATA_SIZE {
		return FormatError{-1, "pii box would run past the end of savedata"}
	}

	// Serialize to a scratch buffer first; no partial writes on error.
	scratch := &bytes.Buffer{}
	if _, err := writers.Write_u16_be(scratch, uint16(len(piibox))); err != nil {
		return err
	}
	for i := range piibox {
		if err := write_pii(scratch, &piibox[i]); err != nil {
			return err
		}
	}

	copied := copy(savedata[PIIBOX_OFFSET:], scratch.Bytes())
	if copied != scratch.Len() {
		// Can't happen - the bounds check above already covers this.
		return errors.New("internal error: pii box truncated during write")
	}

	return nil
}
