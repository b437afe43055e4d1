package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/megalamo/iconsync/internal/cli"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(iconsync.ExitPanic)
		}
	}()

	if os.Getenv("ICONSYNC_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(iconsync.ExitCodeForError(err))
	}
}
