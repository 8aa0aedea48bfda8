package main

// Pokémon Rumble savedata dumper
// usage: piidump [--dir savedir] [savedata.bin]
//
// The save directory can also be set in piidump.ini

import (
	"fmt"
	"os"
	"path/filepath"

	"piidump/savedata"
	"piidump/tables"
	"piidump/types"
	"piidump/utils"
)

func dump_pii(n int, pii *types.Pii) []string {
	out := []string{}

	name, err := tables.Pii_name(pii.Mons_no, pii.Form_no)
	if err != nil {
		// Parsing doesn't care about unknown species, so neither do we -
		// dump the number and move on.
		name = fmt.Sprintf("Unknown (%v)", pii.Mons_no)
	}

	title := name + pii.Sex_symbol()
	if trait := tables.Trait_of(pii.Trait); trait != nil {
		title = trait.Name + " " + title
	}
	if pii.Is_shiny() {
		title += " ★"
	}

	out = append(out, fmt.Sprintf("%3v: %v", n+1, title))
	out = append(out, fmt.Sprintf("     Level %v, caught %v", pii.Level, pii.Unix_time().Format("2006-01-02 15:04:05")))

	for _, move := range []uint16{pii.Move1_id, pii.Move2_id} {
		if move_name, known := tables.Move_name(move); known {
			out = append(out, "     Knows "+move_name)
		}
	}

	out = append(out, fmt.Sprintf("     Bonus HP/Atk/Def/Spd: %v/%v/%v/%v",
		pii.Bonus_max_hp, pii.Bonus_attack, pii.Bonus_defence, pii.Bonus_speed))
	out = append(out, fmt.Sprintf("     Trainer: %v, pii id: %08x, flags: %04x",
		pii.Trainer_id, pii.Pii_id, pii.Flags))

	return out
}

func main() {
	args := utils.Strip_dir_args(os.Args[1:])

	filename := "savedata.bin"
	if len(args) > 0 {
		filename = args[0]
	}
	full_filename := filepath.Join(utils.Get_savefile_dir(), filename)

	buf, err := os.ReadFile(full_filename)
	if err != nil {
		fmt.Println("Failed to load file", full_filename, "-", err)
		os.Exit(1)
	}

	err = savedata.Decrypt(buf)
	if err != nil {
		switch err.(type) {
		case savedata.IntegrityError:
			// Not fatal: the contents are decrypted, just not vouched for.
			fmt.Println("WARNING:", err)
			fmt.Println("Dumping the file anyway.")
			fmt.Println()
		default:
			fmt.Println("Failed to decrypt", full_filename, "-", err)
			os.Exit(1)
		}
	}

	piibox, err := savedata.Extract_piibox(buf)
	if err != nil {
		fmt.Println("Failed to read pii box from", full_filename, "-", err)
		os.Exit(1)
	}

	fmt.Println(full_filename, "-", len(piibox), "piis")
	fmt.Println()
	for i := range piibox {
		for _, line := range dump_pii(i, &piibox[i]) {
			fmt.Println(line)
		}
		fmt.Println()
	}
}
