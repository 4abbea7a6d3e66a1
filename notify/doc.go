// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers voter-facing notifications.

# Sinks

  - Console: one colored line per notification (success green, info cyan,
    warning yellow, error red)
  - Queue: in-memory; used by tests and by observers that poll
  - Log: slog at a level matching the severity
  - Multi: fan-out to several sinks
  - Func: adapt a plain function

Typical wiring:

	sink := notify.Multi{
		notify.NewConsole(os.Stdout, cfg.NoColor),
		notify.NewLog(nil),
	}
*/
package notify
