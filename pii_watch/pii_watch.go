package pii_watch

// Directory watcher for savedata.bin.
// Every time the game (or an emulator) writes the save file, we decrypt it,
// pull the pii box out, diff it against what we've seen before for that
// trainer, and push notifications for anything new.  Seen-state is kept in a
// JSON file next to the saves so notifications survive restarts.

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"piidump/savedata"
	"piidump/tables"
	"piidump/types"
)

// SAVE_FILE is the one file name this game uses.  Other slots/titles are
// someone else's problem.
const SAVE_FILE = "savedata.bin"

const state_file_name = "piiwatch.json"

// How long to wait after a write event before reading.  The game writes the
// file in more than one burst and fsnotify fires on the first one.
var settle_time = 2 * time.Second

// Notification is one thing worth telling the user about.
type Notification struct {
	Name     string
	Desc     string
	Category string
	// Sprite identifier for the UI.  Empty if unresolvable.
	Sprite string
}

// Dex-count milestones worth a notification of their own.
var milestones = []int{10, 50, 100, 151, 251, 386, 493}

type state_type struct {
	Caught  map[string]map[uint16]bool // species seen, per trainer
	Shinies map[string]map[uint32]bool // shiny pii ids seen, per trainer
	Traits  map[string]map[uint16]bool // trait ids seen, per trainer
}

type Pii_watch interface {
	Start_watching(notifications chan<- *Notification) error
	Stop_watching()
}

func New_watcher(dir string, logger *zap.Logger) Pii_watch {
	return &dir_watcher{dir: dir, sugar: logger.Sugar()}
}

type dir_watcher struct {
	dir          string
	last_trainer string
	watcher      *fsnotify.Watcher
	state        state_type
	sugar        *zap.SugaredLogger
}

func (dw *dir_watcher) Start_watching(notifications chan<- *Notification) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dw.watcher = watcher
	dw.load_state()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) && strings.EqualFold(filepath.Base(event.Name), SAVE_FILE) {
					dw.handle_file(event.Name, notifications)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				dw.sugar.Errorw("watcher error", "err", err)
			}
		}
	}()

	err = dw.watcher.Add(dw.dir)
	if err != nil {
		dw.watcher.Close()
	}

	return err
}

func (dw *dir_watcher) Stop_watching() {
	dw.watcher.Close()
}

func (dw *dir_watcher) save_state() {
	state_file := filepath.Join(dw.dir, state_file_name)
	b, _ := json.Marshal(dw.state)
	err := os.WriteFile(state_file, b, 0644)
	if err != nil {
		dw.sugar.Errorw("failed to save watch state", "file", state_file, "err", err)
	}
}

func (dw *dir_watcher) load_state() {
	state_file := filepath.Join(dw.dir, state_file_name)
	bytes, _ := os.ReadFile(state_file)
	json.Unmarshal(bytes, &dw.state)
}

// GetState reads the watch state without starting a watcher.
// Used by the list/show subcommands.
func GetState(dir string) *state_type {
	state := state_type{}
	bytes, _ := os.ReadFile(filepath.Join(dir, state_file_name))
	json.Unmarshal(bytes, &state)
	return &state
}

// Trainers lists every trainer id the state file knows about.
func (s *state_type) Trainers() []string {
	out := []string{}
	for t := range s.Caught {
		out = append(out, t)
	}
	return out
}

// Caught_species returns the species a trainer has been seen with.
func (s *state_type) Caught_species(trainer string) map[uint16]bool {
	return s.Caught[trainer]
}

func (dw *dir_watcher) handle_file(filename string, out chan<- *Notification) {
	// Let the game finish writing first.
	time.Sleep(settle_time)

	// A panic in here (bad table data, whatever) shouldn't take down a
	// watcher that may have been running for days.
	defer func() {
		if recover() != nil {
			dw.sugar.Errorw("panic while handling save file", "file", filename)
			debug.PrintStack()
		}
	}()

	buf, err := os.ReadFile(filename)
	if err != nil {
		dw.sugar.Errorw("failed to read save file", "file", filename, "err", err)
		return
	}

	err = savedata.Decrypt(buf)
	if err != nil {
		switch err.(type) {
		case savedata.IntegrityError:
			// Stale checksum, probably caught mid-write.  The decrypted
			// contents are still there, so carry on with them.
			dw.sugar.Warnw("checksum mismatch, using best-effort contents", "file", filename)
		default:
			dw.sugar.Errorw("failed to decrypt save file", "file", filename, "err", err)
			return
		}
	}

	piibox, err := savedata.Extract_piibox(buf)
	if err != nil {
		dw.sugar.Errorw("failed to extract pii box", "file", filename, "err", err)
		return
	}
	dw.sugar.Infow("save file processed", "file", filename, "piis", len(piibox))

	for i := range piibox {
		dw.check_pii(&piibox[i], out)
	}
	dw.save_state()
}

func (dw *dir_watcher) check_pii(pii *types.Pii, out chan<- *Notification) {
	trainer := strconv.FormatUint(uint64(pii.Trainer_id), 10)
	if dw.last_trainer != trainer {
		dw.sugar.Infow("trainer", "id", trainer)
		dw.last_trainer = trainer
	}

	if dw.state.Caught == nil {
		dw.state = state_type{
			Caught:  map[string]map[uint16]bool{},
			Shinies: map[string]map[uint32]bool{},
			Traits:  map[string]map[uint16]bool{},
		}
	}
	if dw.state.Caught[trainer] == nil {
		dw.state.Caught[trainer] = map[uint16]bool{}
		dw.state.Shinies[trainer] = map[uint32]bool{}
		dw.state.Traits[trainer] = map[uint16]bool{}
	}

	name, err := tables.Pii_name(pii.Mons_no, pii.Form_no)
	if err != nil {
		// Parsing never fails on a weird species, and neither do we.
		name = "Unknown (" + strconv.Itoa(int(pii.Mons_no)) + ")"
	}
	sprite, _ := tables.Sprite_id(pii.Mons_no, pii.Form_no)

	if !dw.state.Caught[trainer][pii.Mons_no] {
		dw.state.Caught[trainer][pii.Mons_no] = true
		out <- &Notification{
			Name:     "New species: " + name,
			Desc:     "Lv. " + strconv.Itoa(int(pii.Level)) + " " + pii.Sex_symbol(),
			Category: "Caught",
			Sprite:   sprite,
		}

		count := len(dw.state.Caught[trainer])
		for _, m := range milestones {
			if count == m {
				out <- &Notification{
					Name:     "Dex milestone: " + strconv.Itoa(m) + " species",
					Desc:     "Trainer " + trainer,
					Category: "Milestone",
				}
			}
		}
	}

	if pii.Is_shiny() && !dw.state.Shinies[trainer][pii.Pii_id] {
		dw.state.Shinies[trainer][pii.Pii_id] = true
		out <- &Notification{
			Name:     "Shiny " + name + "!",
			Desc:     "Caught " + pii.Unix_time().Format("2006-01-02 15:04"),
			Category: "Shiny",
			Sprite:   sprite,
		}
	}

	if tr := tables.Trait_of(pii.Trait); tr != nil && !dw.state.Traits[trainer][pii.Trait] {
		dw.state.Traits[trainer][pii.Trait] = true
		out <- &Notification{
			Name:     tr.Name + " " + name,
			Desc:     tr.Desc,
			Category: "Trait",
			Sprite:   sprite,
		}
	}
}
