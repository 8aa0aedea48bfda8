package tables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DexIsComplete(t *testing.T) {
	require.Len(t, Pokemon_names, 493)

	// Spot-check the anchors the form tables hang off.
	require.Equal(t, "Unown", Pokemon_names[MONS_UNOWN-1])
	require.Equal(t, "Castform", Pokemon_names[MONS_CASTFORM-1])
	require.Equal(t, "Deoxys", Pokemon_names[MONS_DEOXYS-1])
	require.Equal(t, "Burmy", Pokemon_names[MONS_BURMY-1])
	require.Equal(t, "Wormadam", Pokemon_names[MONS_WORMADAM-1])
	require.Equal(t, "Cherrim", Pokemon_names[MONS_CHERRIM-1])
	require.Equal(t, "Shellos", Pokemon_names[MONS_SHELLOS-1])
	require.Equal(t, "Gastrodon", Pokemon_names[MONS_GASTRODON-1])
	require.Equal(t, "Rotom", Pokemon_names[MONS_ROTOM-1])
	require.Equal(t, "Giratina", Pokemon_names[MONS_GIRATINA-1])
	require.Equal(t, "Shaymin", Pokemon_names[MONS_SHAYMIN-1])
	require.Equal(t, "Arceus", Pokemon_names[MONS_ARCEUS-1])
}

func Test_PiiName(t *testing.T) {
	name, err := Pii_name(25, 0)
	require.NoError(t, err)
	require.Equal(t, "Pikachu", name)

	name, err = Pii_name(MONS_ROTOM, 2)
	require.NoError(t, err)
	require.Equal(t, "Rotom (Wash)", name)

	// Unown has all 28 letters
	require.Len(t, Forms[MONS_UNOWN], 28)
	name, err = Pii_name(MONS_UNOWN, 27)
	require.NoError(t, err)
	require.Equal(t, "Unown (?)", name)

	// Out-of-range form on a form species: fall back to the base name.
	name, err = Pii_name(MONS_CASTFORM, 30)
	require.NoError(t, err)
	require.Equal(t, "Castform", name)
}

func Test_UnknownSpecies(t *testing.T) {
	_, err := Pii_name(0, 0)
	require.IsType(t, UnknownSpeciesError{}, err)

	_, err = Pii_name(9999, 0)
	require.IsType(t, UnknownSpeciesError{}, err)

	_, err = Sprite_id(494, 0)
	require.IsType(t, UnknownSpeciesError{}, err)
}

func Test_SpriteSrc(t *testing.T) {
	src, err := Sprite_src(25, 0, false)
	require.NoError(t, err)
	require.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/home/25.png", src)

	src, err = Sprite_src(25, 0, true)
	require.NoError(t, err)
	require.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/home/shiny/25.png", src)

	src, err = Sprite_src(MONS_GIRATINA, 1, false)
	require.NoError(t, err)
	require.Contains(t, src, "/10007.png")
}

func Test_MoveName(t *testing.T) {
	_, known := Move_name(0)
	require.False(t, known, "move 0 is the empty slot")

	name, known := Move_name(85)
	require.True(t, known)
	require.Equal(t, "Thunderbolt", name)

	name, known = Move_name(467)
	require.True(t, known)
	require.Equal(t, "Unknown move (467)", name)
}

func Test_TraitOf(t *testing.T) {
	require.Nil(t, Trait_of(0))
	require.Nil(t, Trait_of(uint16(len(Traits)+1)))

	tr := Trait_of(1)
	require.NotNil(t, tr)
	require.Equal(t, Traits[0].Name, tr.Name)
}
