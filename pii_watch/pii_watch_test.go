package pii_watch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"piidump/savedata"
	"piidump/types"
)

func nop_watcher(dir string) *dir_watcher {
	return &dir_watcher{dir: dir, sugar: zap.NewNop().Sugar()}
}

func Test_StateRoundTrip(t *testing.T) {
	dir := t.TempDir()

	dw := nop_watcher(dir)
	dw.state = state_type{
		Caught:  map[string]map[uint16]bool{"7": {25: true, 133: true}},
		Shinies: map[string]map[uint32]bool{"7": {0xDEADBEEF: true}},
		Traits:  map[string]map[uint16]bool{"7": {3: true}},
	}
	dw.save_state()

	got := GetState(dir)
	require.Equal(t, dw.state, *got)
	require.Equal(t, []string{"7"}, got.Trainers())
	require.True(t, got.Caught_species("7")[25])
}

func Test_NotificationsFireOnce(t *testing.T) {
	dw := nop_watcher(t.TempDir())
	out := make(chan *Notification, 16)

	// Trainer 1, pii id 0: the u16 halves XOR to 1, so this one is shiny.
	pii := types.Pii{Mons_no: 25, Level: 5, Trainer_id: 1, Pii_id: 0, Trait: 1}
	dw.check_pii(&pii, out)

	categories := map[string]bool{}
	for len(out) > 0 {
		n := <-out
		categories[n.Category] = true
	}
	require.True(t, categories["Caught"])
	require.True(t, categories["Shiny"])
	require.True(t, categories["Trait"])

	// Same pii again: everything has been seen, nothing fires.
	dw.check_pii(&pii, out)
	require.Empty(t, out)

	// Same species but a different shiny individual still fires.
	pii2 := types.Pii{Mons_no: 25, Level: 9, Trainer_id: 1, Pii_id: 4}
	dw.check_pii(&pii2, out)
	require.Len(t, out, 1)
	require.Equal(t, "Shiny", (<-out).Category)
}

func Test_HandleFile(t *testing.T) {
	dir := t.TempDir()

	buf := make([]byte, savedata.SAVEDATA_SIZE)
	box := []types.Pii{{Mons_no: 151, Level: 30, Trainer_id: 0x12345678, Pii_id: 0x99}}
	require.NoError(t, savedata.Write_piibox(buf, box))
	require.NoError(t, savedata.Encrypt(buf))

	save_path := filepath.Join(dir, SAVE_FILE)
	require.NoError(t, os.WriteFile(save_path, buf, 0644))

	old_settle := settle_time
	settle_time = 0
	defer func() { settle_time = old_settle }()

	dw := nop_watcher(dir)
	out := make(chan *Notification, 16)
	dw.handle_file(save_path, out)

	require.NotEmpty(t, out)
	n := <-out
	require.Equal(t, "Caught", n.Category)
	require.Contains(t, n.Name, "Mew")

	// State was persisted next to the save.
	require.True(t, GetState(dir).Caught_species("305419896")[151])
}
