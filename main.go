package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var filenameFlag string
	flag.StringVar(&filenameFlag, "filename", "", "file to open")
	flag.Parse()

	filename := filenameFlag
	if filename == "" && flag.NArg() > 0 {
		filename = flag.Arg(0)
	}

	term := NewTerminal(os.Stdin)
	if err := term.EnterRaw(); err != nil {
		die(term, err)
	}
	defer term.LeaveRaw()

	rows, cols, err := term.WindowSize()
	if err != nil {
		die(term, fmt.Errorf("getting window size: %w", err))
	}

	editor := NewEditor(term, rows, cols)

	if filename != "" {
		if err := editor.Document().Load(filename); err != nil {
			die(term, fmt.Errorf("opening file %s: %w", filename, err))
		}
	}

	editor.status.Info("HELP: Ctrl-s = save | Ctrl-f = find | Ctrl-q = quit")

	for {
		editor.refreshScroll()
		if err := editor.Render(); err != nil {
			die(term, fmt.Errorf("refreshing screen: %w", err))
		}

		if err := editor.ProcessKeypress(); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}
			die(term, err)
		}
	}
}

// die implements spec.md §7, fault kind 1: restore the terminal (this
// is a fatal exit path, so the normal deferred restore in main never
// runs), clear the screen, home the cursor so the error remains
// visible, print the diagnostic, and exit 1.
func die(term *Terminal, err error) {
	term.LeaveRaw()
	os.Stdout.Write([]byte("\x1b[2J"))
	os.Stdout.Write([]byte("\x1b[H"))
	log.Print(err)
	os.Exit(1)
}
