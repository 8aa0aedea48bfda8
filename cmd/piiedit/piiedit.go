package main

// savefile reader/editor for Pokémon Rumble
//
// example usage:
//
// piiedit load savedata.bin
// piiedit set 1 species Pikachu
// piiedit set 1 level 100
// piiedit set 1 move1 "Thunderbolt"
// piiedit set 1 trait Brave
// piiedit set 3 species rotom
// piiedit set 3 form Wash
// piiedit save

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"piidump/savedata"
	"piidump/tables"
	"piidump/types"
	"piidump/utils"
)

// Evil global variables
var g_stash_filename = "piiedit.tmp"

// smash smashes "funny characters" (which includes anything that's remotely tricky to type into a command line) in a string into the '_' character
func smash(in string) string {
	out := ""
	for _, c := range in {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			out += string(c)
		} else {
			out += "_"
		}
	}
	return out
}

// string matching functions, in strictly increasing order of desperation
var fuzzy = []func(input string, candidate string) bool{
	func(i string, c string) bool { return i == c },
	func(i string, c string) bool { return strings.ToUpper(i) == strings.ToUpper(c) },
	func(i string, c string) bool { return smash(strings.ToUpper(i)) == smash(strings.ToUpper(c)) },
	func(i string, c string) bool {
		return strings.HasPrefix(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
	func(i string, c string) bool {
		return strings.Contains(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
}

// Every settable field on a pii is either a named value (looked up through a
// translation map) or a bare number.
type ettable struct {
	get func(p *types.Pii) int
	put func(p *types.Pii, v int)
	max int

	// trans maps field values to names.  nil means the field is just a number.
	// The map can depend on the pii (forms vary by species).
	trans func(p *types.Pii) map[int]string
}

var ettables = map[string]*ettable{
	"species": &ettable{
		get:   func(p *types.Pii) int { return int(p.Mons_no) },
		put:   func(p *types.Pii, v int) { p.Mons_no = uint16(v) },
		max:   0x1FF,
		trans: make_species_map,
	},
	"form": &ettable{
		get:   func(p *types.Pii) int { return int(p.Form_no) },
		put:   func(p *types.Pii, v int) { p.Form_no = uint16(v) },
		max:   0x1F,
		trans: make_form_map,
	},
	"sex": &ettable{
		get:   func(p *types.Pii) int { return int(p.Sex) },
		put:   func(p *types.Pii, v int) { p.Sex = uint16(v) },
		max:   7,
		trans: make_sex_map,
	},
	"level": &ettable{
		get: func(p *types.Pii) int { return int(p.Level) },
		put: func(p *types.Pii, v int) { p.Level = uint16(v) },
		max: 0xFFFF,
	},
	"move1": &ettable{
		get:   func(p *types.Pii) int { return int(p.Move1_id) },
		put:   func(p *types.Pii, v int) { p.Move1_id = uint16(v) },
		max:   0xFFFF,
		trans: make_move_map,
	},
	"move2": &ettable{
		get:   func(p *types.Pii) int { return int(p.Move2_id) },
		put:   func(p *types.Pii, v int) { p.Move2_id = uint16(v) },
		max:   0xFFFF,
		trans: make_move_map,
	},
	"trait": &ettable{
		get:   func(p *types.Pii) int { return int(p.Trait) },
		put:   func(p *types.Pii, v int) { p.Trait = uint16(v) },
		max:   0xFFFF,
		trans: make_trait_map,
	},
	"hp": &ettable{
		get: func(p *types.Pii) int { return int(p.Bonus_max_hp) },
		put: func(p *types.Pii, v int) { p.Bonus_max_hp = uint32(v) },
		max: 0xFFFFFFFF,
	},
	"attack": &ettable{
		get: func(p *types.Pii) int { return int(p.Bonus_attack) },
		put: func(p *types.Pii, v int) { p.Bonus_attack = uint32(v) },
		max: 0xFFFFFFFF,
	},
	"defence": &ettable{
		get: func(p *types.Pii) int { return int(p.Bonus_defence) },
		put: func(p *types.Pii, v int) { p.Bonus_defence = uint32(v) },
		max: 0xFFFFFFFF,
	},
	"speed": &ettable{
		get: func(p *types.Pii) int { return int(p.Bonus_speed) },
		put: func(p *types.Pii, v int) { p.Bonus_speed = uint32(v) },
		max: 0xFFFFFFFF,
	},
}

func list_ettables() string {
	ret := ""
	for k := range ettables {
		ret = ret + k + "\n"
	}
	return ret
}

func make_species_map(pii *types.Pii) map[int]string {
	ret := map[int]string{}
	for i, name := range tables.Pokemon_names {
		ret[i+1] = name
	}
	return ret
}

func make_form_map(pii *types.Pii) map[int]string {
	ret := map[int]string{}
	forms, ok := tables.Forms[pii.Mons_no]
	if !ok {
		return ret
	}
	for i, info := range forms {
		ret[i] = info.Name
	}
	return ret
}

func make_sex_map(pii *types.Pii) map[int]string {
	return map[int]string{
		types.SEX_MALE:    "Male",
		types.SEX_FEMALE:  "Female",
		types.SEX_UNKNOWN: "Unknown",
	}
}

func make_move_map(pii *types.Pii) map[int]string {
	ret := map[int]string{}
	for id, name := range tables.Moves {
		ret[int(id)] = name
	}
	return ret
}

func make_trait_map(pii *types.Pii) map[int]string {
	ret := map[int]string{}
	for i, info := range tables.Traits {
		ret[i+1] = info.Name
	}
	return ret
}

func main() {
	err := main2()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {

	arg := "help"
	if len(os.Args) < 2 {
		fmt.Println("No args detected - falling back to \"help\", since you clearly need it...")
	} else {
		arg = os.Args[1]
	}

	switch arg {
	case "help":
		help_text := []string{
			"Pokémon Rumble Save File Editor",
			"",
			"Commands:",
			"help: display this text",
			"load (filename): load a file from the default location",
			"dump : list the whole pii box",
			"get (slot) (what): display current status of something",
			"set (slot) (what) (to): set status of something",
			"save: save a file",
			"",
			"Things that can be set-ted or get-ted are:",
		}
		for k := range ettables {
			help_text = append(help_text, "   "+k)
		}
		help_text = append(help_text, []string{
			"",
			"Notes:",
			"   Slots are numbered from 1, in the order piidump lists them.",
			"   It is usually not necessary to type the full name of something",
			"e.g. \"pika\" will be recognized as \"Pikachu\".",
		}...)

		for _, ht := range help_text {
			fmt.Println(ht)
		}

	case "load":
		if len(os.Args) < 3 {
			return errors.New("Load what?  Filename expected.")
		}

		full_filename := filepath.Join(utils.Get_savefile_dir(), os.Args[2])
		buf, box, err := load(full_filename)
		if err != nil {
			return err
		}
		fmt.Println("Loaded", full_filename, "-", len(box), "piis")

		return stash(full_filename, buf, box)

	case "save":
		filename, buf, box, err := retrieve()
		if err != nil {
			return err
		}

		err = savedata.Write_piibox(buf, box)
		if err != nil {
			return err
		}
		err = savedata.Encrypt(buf)
		if err != nil {
			return err
		}

		// Back up the old file
		// Since this is a "powerful" (i.e. capable of completely trashing savefiles) tool,
		// that's probably a good idea
		newname := filename[:len(filename)-3] + "old"
		err = os.Rename(filename, newname)
		if err != nil {
			return err
		}
		fmt.Println(filename, "renamed to", newname)

		err = os.WriteFile(filename, buf, 0666)
		if err != nil {
			return err
		}
		fmt.Println("New file written to", filename)

		err = os.Remove(g_stash_filename)
		if err != nil {
			return err
		}
		fmt.Println("Temporary data cleaned up")

	case "get":
		if len(os.Args) < 4 {
			return errors.New("Get what?  Expected slot and field.  Gettables are:\n" + list_ettables())
		}

		_, _, box, err := retrieve()
		if err != nil {
			return err
		}

		pii, err := pick_slot(os.Args[2], box)
		if err != nil {
			return err
		}

		str, err := get(os.Args[3], pii)
		if err != nil {
			return err
		}
		fmt.Println(str)

	case "set":
		if len(os.Args) < 4 {
			return errors.New("Set what?  Expected slot and field.  Settables are:\n" + list_ettables())
		}
		what := os.Args[3]

		g, ok := ettables[what]
		if !ok {
			return errors.New(what + " is not settable.  Settables are:\n" + list_ettables()) // UGH! (duplicated in set())
		}

		filename, buf, box, err := retrieve()
		if err != nil {
			return err
		}

		pii, err := pick_slot(os.Args[2], box)
		if err != nil {
			return err
		}

		if len(os.Args) < 5 {
			str := "Set " + what + " to what?"
			if g.trans != nil {
				str += "  Options are:"
				for _, v := range g.trans(pii) {
					str += ("\n" + v)
				}
			}
			return errors.New(str)
		}
		to := os.Args[4]

		to_matched, err := set(what, to, pii)
		if err != nil {
			return err
		}

		fmt.Println(what, "set to", to_matched)
		return stash(filename, buf, box)

	case "dump":
		_, _, box, err := retrieve()
		if err != nil {
			return err
		}

		for i := range box {
			name, err := tables.Pii_name(box[i].Mons_no, box[i].Form_no)
			if err != nil {
				name = fmt.Sprintf("Unknown (%v)", box[i].Mons_no)
			}
			fmt.Printf("%3v: %v%v, level %v\n", i+1, name, box[i].Sex_symbol(), box[i].Level)
		}
	}

	return nil
}

func pick_slot(arg string, box []types.Pii) (*types.Pii, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return nil, errors.New("Slot number expected, got " + arg)
	}
	if slot < 1 || slot > len(box) {
		return nil, errors.New(fmt.Sprint("Slot out of range - the box has ", len(box), " piis"))
	}
	return &box[slot-1], nil
}

func load(full_filename string) ([]byte, []types.Pii, error) {
	buf, err := os.ReadFile(full_filename)
	if err != nil {
		return nil, nil, err
	}

	err = savedata.Decrypt(buf)
	if err != nil {
		switch err.(type) {
		case savedata.IntegrityError:
			// Loading anyway - the user might be here precisely to fix a bad file
			fmt.Println("WARNING:", err)
		default:
			return nil, nil, err
		}
	}

	box, err := savedata.Extract_piibox(buf)
	if err != nil {
		return nil, nil, err
	}
	return buf, box, nil
}

type stash_type struct {
	Filename string
	Buffer   []byte
	Box      []types.Pii
}

func stash(filename string, buf []byte, box []types.Pii) error {
	f, err := os.Create(g_stash_filename)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := gob.NewEncoder(f)
	err = encoder.Encode(stash_type{filename, buf, box})
	if err != nil {
		return err
	}
	f.Sync()

	return nil
}

func retrieve() (string, []byte, []types.Pii, error) {
	f, err := os.Open(g_stash_filename)
	if err != nil {
		return "", nil, nil, errors.New("No loaded file found - use \"load\" first (" + err.Error() + ")")
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	st := stash_type{}
	err = decoder.Decode(&st)
	if err != nil {
		return "", nil, nil, err
	}

	return st.Filename, st.Buffer, st.Box, nil
}

// fuzzy_reverse_lookup looks up "backwards" in a translation map
//
// trans: map to be looked up in
// to: map value
// what: type of thing to be looked up, as a human-readable string.  Used only in exception construction and probably a mistake
//
// Returns: K: lookup result key, string: lookup result value (not necessarily equal to "to" due to fuzzy matching)
func fuzzy_reverse_lookup[K comparable](trans map[K]string, to string, what string) (K, string, error) {
	var K0 K

	for _, match := range fuzzy {
		matches := []K{}
		names := []string{}
		for k, v := range trans {
			if match(to, v) {
				matches = append(matches, k)
				names = append(names, v)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			return K0, "", errors.New(fmt.Sprint("Ambiguous argument:", to, " could be anything from {", strings.Join(names, ", "), "}"))
		}

		return matches[0], names[0], nil
	}

	return K0, "", errors.New(to + " could not be matched to a valid value for " + what)
}

// get gets a field and returns it as a human-readable string
func get(what string, pii *types.Pii) (string, error) {
	g, ok := ettables[what]
	if !ok {
		return "", errors.New(what + " is not gettable.  Gettables are:\n" + list_ettables())
	}

	n := g.get(pii)
	if g.trans != nil {
		if trans := g.trans(pii); len(trans) > 0 {
			return fmt.Sprint(n, ": ", utils.Safe_lookup(trans, n)), nil
		}
	}
	return fmt.Sprint(n), nil
}

// set sets a field
// Exactly how to set a field is encoded in the "ettables" data
func set(what string, to string, pii *types.Pii) (string, error) {
	g, ok := ettables[what]
	if !ok {
		return "", errors.New(what + " is not settable.  Settables are:\n" + list_ettables())
	}

	matched := to
	value := 0

	trans := map[int]string{}
	if g.trans != nil {
		trans = g.trans(pii)
	}

	if len(trans) > 0 {
		// map is "backwards" from the setting PoV
		v, m, err := fuzzy_reverse_lookup(trans, to, what)
		if err != nil {
			// A number is still acceptable - the translation maps aren't complete
			v2, err2 := strconv.Atoi(to)
			if err2 != nil {
				return "", err
			}
			v, m = v2, to
		}
		value = v
		matched = m
	} else {
		// No lookup available - the expected argument is just a number to be used directly.
		err := error(nil)
		value, err = strconv.Atoi(to)
		if err != nil {
			return "", err
		}
	}

	if value < 0 || value > g.max {
		return "", errors.New(fmt.Sprint("Value for ", what, " must be between 0 and ", g.max))
	}

	g.put(pii, value)

	// Species changes can leave a stale form behind
	if what == "species" {
		if _, ok := tables.Forms[pii.Mons_no]; !ok && pii.Form_no != 0 {
			fmt.Println("Resetting form to 0 -", matched, "has no alternate forms")
			pii.Form_no = 0
		}
	}

	return matched, nil
}
