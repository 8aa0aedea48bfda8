package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_IsShiny(t *testing.T) {
	// XOR of all four u16 halves must come out below 8.
	p := Pii{Trainer_id: 0, Pii_id: 0}
	require.True(t, p.Is_shiny(), "all-zero halves XOR to 0")

	p = Pii{Trainer_id: 1, Pii_id: 0}
	require.True(t, p.Is_shiny(), "XOR is 1, still below 8")

	p = Pii{Trainer_id: 8, Pii_id: 0}
	require.False(t, p.Is_shiny(), "XOR is exactly 8")

	p = Pii{Trainer_id: 0x12345678, Pii_id: 0x5678_1234}
	require.True(t, p.Is_shiny(), "matching halves cancel out")

	p = Pii{Trainer_id: 0x12345678, Pii_id: 0}
	require.False(t, p.Is_shiny())
}

func Test_UnixTime(t *testing.T) {
	p := Pii{Time: 0}
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), p.Unix_time())

	p = Pii{Time: OS_TICK_RATE}
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 1, 0, time.UTC), p.Unix_time())

	// one day of ticks
	p = Pii{Time: OS_TICK_RATE * 86400}
	require.Equal(t, time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), p.Unix_time())
}

func Test_SexStrings(t *testing.T) {
	require.Equal(t, "Male", (&Pii{Sex: SEX_MALE}).Sex_string())
	require.Equal(t, "Female", (&Pii{Sex: SEX_FEMALE}).Sex_string())
	require.Equal(t, "Unknown", (&Pii{Sex: SEX_UNKNOWN}).Sex_string())
	require.Equal(t, "Invalid (5)", (&Pii{Sex: 5}).Sex_string())

	require.Equal(t, "♂", (&Pii{Sex: SEX_MALE}).Sex_symbol())
	require.Equal(t, "♀", (&Pii{Sex: SEX_FEMALE}).Sex_symbol())
	require.Equal(t, "", (&Pii{Sex: SEX_UNKNOWN}).Sex_symbol())
}
