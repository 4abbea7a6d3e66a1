package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/ballot"
	"github.com/danielhkuo/ballot-client/cliparse"
	"github.com/danielhkuo/ballot-client/console"
	"github.com/danielhkuo/ballot-client/directory"
	"github.com/danielhkuo/ballot-client/journal"
	"github.com/danielhkuo/ballot-client/models"
	"github.com/danielhkuo/ballot-client/notify"
	"github.com/danielhkuo/ballot-client/tally"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exit
func run(args []string) int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 1
	}

	// Logs go to stderr so they stay out of the session
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		cancel()
	}()

	noColor := cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
	var notifier notify.Notifier = notify.NewConsole(os.Stdout, noColor)
	if cfg.SlogLevel() <= slog.LevelDebug {
		notifier = notify.Multi{notifier, notify.NewLog(nil)}
	}

	client := tally.NewClient(cfg)
	loader := directory.NewLoader(client)
	if _, err := loader.Load(ctx); err != nil {
		slog.Error("candidate list unavailable", "error", err)
		notifier.Emit(models.Notification{
			Severity: models.SeverityWarning,
			Message:  "Could not load the candidate list. You can review your ballot but not submit it.",
		})
	}

	fingerprints := auth.NewFingerprinter(cfg.FingerprintSalt)
	ctrlOpts := []ballot.Option{
		ballot.WithFingerprinter(fingerprints),
		ballot.WithCommentRedaction(cfg.RedactComments),
	}
	sessionOpts := []console.Option{console.WithNoColor(noColor)}

	if cfg.JournalEnabled() {
		j, err := journal.Open(ctx, cfg.JournalType, cfg.JournalURL)
		if err != nil {
			slog.Error("journal unavailable", "error", err)
			return 1
		}
		defer j.Close()

		ctrlOpts = append(ctrlOpts, ballot.WithJournal(j))
		sessionOpts = append(sessionOpts, console.WithHistory(j, fingerprints))
	}

	ctrl := ballot.NewController(client, loader, notifier, ctrlOpts...)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		slog.Info("reading commands from non-interactive input")
	}

	session := console.NewSession(ctrl, os.Stdin, os.Stdout, sessionOpts...)
	err = session.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout, "Interrupted.")
	case err != nil:
		slog.Error("Session ended", "error", err)
		return 1
	}
	return 0
}
