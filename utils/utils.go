package utils

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// The shared ini file.  All the tools read it so that a save directory only
// has to be configured once.
const INI_FILE = "piidump.ini"

// Get_savefile_dir decides where savedata.bin lives.
// Priority: "--dir" on the command line, then the ini file, then cwd.
func Get_savefile_dir() string {
	// dir from command line
	if len(os.Args) > 2 && os.Args[1] == "--dir" {
		return os.Args[2]
	}

	// dir from ini file
	cfg, err := ini.Load(INI_FILE)
	if err == nil {
		// Classic read of values, default section can be represented as empty string
		dir := cfg.Section("").Key("dir").String()
		if dir != "" {
			return dir
		}
	}

	wd, _ := os.Getwd()
	return wd
}

// Strip_dir_args removes a leading "--dir <dir>" pair from an argument list,
// so the tools can parse the rest positionally.
func Strip_dir_args(args []string) []string {
	if len(args) > 1 && args[0] == "--dir" {
		return args[2:]
	}
	return args
}

// Safe_lookup translates through a map, with an "Unknown (v)" fallback for
// values the tables don't know about.  Used all over the display tools.
func Safe_lookup[K comparable](from map[K]string, with K) string {
	out, ok := from[with]
	if !ok {
		out = fmt.Sprintf("Unknown (%v)", with)
	}
	return out
}
