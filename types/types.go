package types

import (
	"fmt"
	"time"
)

// Sex codes, as stored in the low bits of the packed header word.
// Anything else is invalid (but the codec passes it through untouched).
const (
	SEX_MALE    = 0
	SEX_FEMALE  = 1
	SEX_UNKNOWN = 2
)

// The Wii's clock ticks at a quarter of the 243MHz bus speed.
// Tick zero is midnight on Jan 1st 2000, which is 946684800 in unix time.
const (
	OS_TICK_RATE      = 243_000_000 / 4
	UNIX_EPOCH_OFFSET = 946_684_800
)

// Pii is one roster entry - a single pokémon as stored in savedata.bin.
// The game's executable calls this SD_PiiPersonalData, so the field names
// below mostly follow the RTTI rather than anything sensible.
type Pii struct {
	// National dex number.  1-based; 0 or past the end of the dex is invalid.
	Mons_no uint16
	// Selects among alternate forms (Unown letters, Rotom appliances, ...)
	Form_no uint16
	Sex     uint16
	// 0 = no move
	Move1_id uint16
	Move2_id uint16
	Level    uint16
	// The bonus stats are u32s on our side, but each one is stored in the
	// file as two u16 halves at non-adjacent offsets.  See savedata.
	Bonus_max_hp  uint32
	Bonus_attack  uint32
	Bonus_defence uint32
	Bonus_speed   uint32
	// Called "prefix" in the game's code.  0 = none, else 1-based trait index.
	Trait uint16
	// Undocumented bitflags.  Preserved but not interpreted.
	Flags uint16
	// Random per-pii value.  Used (with Trainer_id) for shininess.
	Pii_id uint32
	// Device clock ticks at catch time.  NOT unix time.
	Time uint64
	// Called "oya_id" in the game's code.
	Trainer_id uint32
}

// Is_shiny derives the rare-variant flag.
// XOR together the high and low u16 halves of the trainer id and the pii id;
// shiny iff the result is below 8.
func (p *Pii) Is_shiny() bool {
	trainer_high := p.Trainer_id >> 16
	trainer_low := p.Trainer_id & 0xFFFF

	pii_high := p.Pii_id >> 16
	pii_low := p.Pii_id & 0xFFFF

	return trainer_high^trainer_low^pii_high^pii_low < 8
}

// Unix_time converts the tick-counter catch time to wall-clock time.
// Display formatting (and any locale nonsense) is the caller's problem.
func (p *Pii) Unix_time() time.Time {
	return time.Unix(int64(p.Time/OS_TICK_RATE)+UNIX_EPOCH_OFFSET, 0).UTC()
}

func (p *Pii) Sex_string() string {
	switch p.Sex {
	case SEX_MALE:
		return "Male"
	case SEX_FEMALE:
		return "Female"
	case SEX_UNKNOWN:
		return "Unknown"
	}
	return fmt.Sprintf("Invalid (%v)", p.Sex)
}

// Sex_symbol is what actually gets printed next to a name.
// Invalid codes produce an empty string rather than an error - a dumper that
// dies on a weird sex byte would be a pretty useless dumper.
func (p *Pii) Sex_symbol() string {
	switch p.Sex {
	case SEX_MALE:
		return "♂"
	case SEX_FEMALE:
		return "♀"
	}
	return ""
}
