package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wtrock/loupe/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("c", "", "override config file path (optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: loupe [logfile] [-c configfile]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "With no logfile, the log is read from standard input.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, LogPath: flag.Arg(0)}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "loupe: %v\n", err)
		return 1
	}
	return 0
}
