package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"piidump/pii_watch"
	"piidump/tables"
	"piidump/utils"
)

func main() {
	// Deal with args

	arg_info := []struct {
		arg     string
		subargs int
		desc    string
	}{
		{"help", 0, "Display this possibly helpful info"},
		{"check", 0, "Sanity check"},
		{"list", 0, "List known trainers"},
		{"show", 1, "Show caught species for a trainer"},
		{"run", 0, "Run and monitor the save directory.  Also the default."},
	}

	main_arg := ""
	subargs := []string{}
	subargs_needed := 0
	for _, arg := range utils.Strip_dir_args(os.Args[1:]) {
		if main_arg == "" {
			for _, info := range arg_info {
				if info.arg == arg {
					main_arg = arg
					subargs_needed = info.subargs
					break
				}
			}
			if main_arg == "" {
				fmt.Println("Unexpected extra argument:", arg)
				os.Exit(1)
			}
		} else if len(subargs) < subargs_needed {
			subargs = append(subargs, arg)
		} else {
			fmt.Println("Unexpected extra argument:", arg)
			os.Exit(1)
		}
	}
	if main_arg == "" {
		main_arg = "run"
	}

	if len(subargs) != subargs_needed {
		fmt.Println(fmt.Sprintf("Expected %v extra arguments; got %v:", subargs_needed, len(subargs)))
		os.Exit(1)
	}

	dir := utils.Get_savefile_dir()

	switch main_arg {
	case "help":
		for _, info := range arg_info {
			fmt.Println(info.arg, "-", info.desc)
		}

	case "check":
		fmt.Println("Target dir is: " + dir)

	case "list":
		state := pii_watch.GetState(dir)
		trainers := state.Trainers()
		if len(trainers) == 0 {
			fmt.Println("(no trainers detected)")
			os.Exit(0)
		}

		for _, t := range trainers {
			fmt.Println(t)
		}

	case "show":
		fmt.Println("Showing caught species for", subargs[0])
		fmt.Println()

		state := pii_watch.GetState(dir)
		caught := state.Caught_species(subargs[0])
		for mons := range caught {
			name, err := tables.Pii_name(mons, 0)
			if err != nil {
				name = fmt.Sprintf("Unknown (%v)", mons)
			}
			fmt.Println("   " + name)
		}
		fmt.Println()
		fmt.Println(fmt.Sprintf("Overall: %v/%v", len(caught), len(tables.Pokemon_names)))

	case "run":
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Println(err)
			return
		}
		defer logger.Sync()

		notifications := make(chan *pii_watch.Notification)
		watcher := pii_watch.New_watcher(dir, logger)
		go func() {
			for {
				select {
				case n := <-notifications:
					fmt.Println(n.Name)
					fmt.Println(n.Desc)
					fmt.Println("Category:", n.Category)
					fmt.Println()
				}
			}
		}()

		err = watcher.Start_watching(notifications)
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Println("Watching...", dir)
		fmt.Println()
		fmt.Println()

		// Wait forever!
		// TODO: some clean way to detect a quit key and call watcher.Stop_watching()
		<-make(chan bool)
	}

	os.Exit(0)
}
