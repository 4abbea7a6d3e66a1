// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console runs the interactive voter session in a terminal.

# Session

A Session wraps a ballot.Controller with a numbered menu:

	session := console.NewSession(ctrl, os.Stdin, os.Stdout,
		console.WithNoColor(noColor),
		console.WithHistory(j, fingerprints),
	)
	err := session.Run(ctx)

Commands:

	1 - Enter National ID
	2 - Enter ballot number
	3 - Choose candidate (table of loaded candidates)
	4 - Enter comments
	5 - Review ballot (masked National ID, validation and comment warnings)
	6 - Submit ballot
	7 - Submission history (requires a journal)
	8 - Clear ballot
	0 - Exit

The session holds no ballot state of its own. Outcomes of a submission are
printed by the controller's notifier; the session only announces the move
to Submitting.

# Termination

Run returns nil when the voter exits or input ends, and ctx.Err() when ctx
is cancelled while waiting for input.
*/
package console
