// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/danielhkuo/ballot-client/auth"
	"github.com/danielhkuo/ballot-client/ballot"
	"github.com/danielhkuo/ballot-client/models"
	"github.com/danielhkuo/ballot-client/screening"
)

const (
	historyLimit = 10
	maxLineLen   = 64 << 10
)

var errQuit = errors.New("quit")

// History is the read side of the submission journal
type History interface {
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
	CountByOutcome(ctx context.Context) (map[string]int, error)
	AttemptsForBallot(ctx context.Context, fingerprint string) (int, error)
}

type Option func(*Session)

// WithHistory enables the history command. fp must be the fingerprinter
// the controller records with.
func WithHistory(h History, fp *auth.Fingerprinter) Option {
	return func(s *Session) {
		s.history = h
		s.fingerprints = fp
	}
}

func WithNoColor(noColor bool) Option {
	return func(s *Session) { s.noColor = noColor }
}

type command struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// Session is an interactive menu over a ballot controller
type Session struct {
	ctrl         *ballot.Controller
	in           io.Reader
	out          io.Writer
	history      History
	fingerprints *auth.Fingerprinter
	noColor      bool

	title    *color.Color
	warn     *color.Color
	commands []command
	lines    <-chan inputLine
}

func NewSession(ctrl *ballot.Controller, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ctrl:  ctrl,
		in:    in,
		out:   out,
		title: color.New(color.FgCyan, color.Bold),
		warn:  color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, c := range []*color.Color{s.title, s.warn} {
		if s.noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	s.commands = []command{
		{"1", "Enter National ID", s.enterVoterID},
		{"2", "Enter ballot number", s.enterBallotNumber},
		{"3", "Choose candidate", s.chooseCandidate},
		{"4", "Enter comments", s.enterComments},
		{"5", "Review ballot", s.review},
		{"6", "Submit ballot", s.submit},
		{"7", "Submission history", s.showHistory},
		{"8", "Clear ballot", s.clear},
		{"0", "Exit", s.exit},
	}

	ctrl.OnTransition(s.onTransition)
	return s
}

// Run reads commands until the voter exits, input ends or ctx is cancelled.
// Only cancellation is reported as an error.
func (s *Session) Run(ctx context.Context) error {
	lines := make(chan inputLine)
	done := make(chan struct{})
	defer close(done)

	go readLines(s.in, lines, done)
	s.lines = lines

	for {
		s.printMenu()
		choice, err := s.readLine(ctx, "\nEnter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		cmd, ok := s.lookup(strings.TrimSpace(choice))
		if !ok {
			s.warn.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}
		if err := cmd.run(ctx); err != nil {
			return s.finish(err)
		}
	}
}

type inputLine struct {
	text    string
	tooLong bool
}

// readLines sends one inputLine per line of r. Lines over maxLineLen are
// discarded up to their newline and sent as tooLong.
func readLines(r io.Reader, lines chan<- inputLine, done <-chan struct{}) {
	defer close(lines)
	br := bufio.NewReader(r)
	for {
		var line inputLine
		var buf []byte
		for {
			chunk, isPrefix, err := br.ReadLine()
			if err != nil {
				if err != io.EOF {
					slog.Warn("console input failed", "error", err)
				}
				return
			}
			if !line.tooLong {
				if len(buf)+len(chunk) > maxLineLen {
					line.tooLong = true
					buf = nil
				} else {
					buf = append(buf, chunk...)
				}
			}
			if !isPrefix {
				break
			}
		}
		line.text = string(buf)

		select {
		case lines <- line:
		case <-done:
			return
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "Goodbye.")
		return nil
	}
	return err
}

func (s *Session) lookup(key string) (command, bool) {
	for _, c := range s.commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

func (s *Session) printMenu() {
	s.title.Fprintln(s.out, "\n=== Cast Your Ballot ===")
	for _, c := range s.commands {
		fmt.Fprintf(s.out, "%s. %s\n", c.key, c.label)
	}
}

// readLine prompts and waits for one line of input. It returns io.EOF once
// input is exhausted. Overlong lines are refused and the prompt repeated.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	for {
		fmt.Fprint(s.out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return "", ctx.Err()
		case line, ok := <-s.lines:
			if !ok {
				fmt.Fprintln(s.out)
				return "", io.EOF
			}
			if line.tooLong {
				s.warn.Fprintf(s.out, "That line is too long (limit %s). Please try again.\n", humanize.IBytes(maxLineLen))
				continue
			}
			return line.text, nil
		}
	}
}

func (s *Session) onTransition(from, to ballot.State) {
	if to == ballot.Submitting {
		fmt.Fprintln(s.out, "Submitting ballot...")
	}
}

func (s *Session) enterVoterID(ctx context.Context) error {
	v, err := s.readLine(ctx, "National ID: ")
	if err != nil {
		return err
	}
	s.report(s.ctrl.UpdateVoterIdentityToken(strings.TrimSpace(v)))
	return nil
}

func (s *Session) enterBallotNumber(ctx context.Context) error {
	v, err := s.readLine(ctx, "Ballot number: ")
	if err != nil {
		return err
	}
	s.report(s.ctrl.UpdateBallotNumber(strings.TrimSpace(v)))
	return nil
}

func (s *Session) enterComments(ctx context.Context) error {
	v, err := s.readLine(ctx, "Comments (optional): ")
	if err != nil {
		return err
	}
	s.report(s.ctrl.UpdateComments(v))
	return nil
}

func (s *Session) chooseCandidate(ctx context.Context) error {
	candidates := s.ctrl.Candidates()
	if len(candidates) == 0 {
		s.warn.Fprintln(s.out, "No candidates are available.")
		return nil
	}

	selected, _ := s.ctrl.Draft().Selected()
	s.title.Fprintln(s.out, "\nCandidates")
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Candidate ID", "Name", "Selected"})
	for _, c := range candidates {
		mark := ""
		if c.CandidateID == selected {
			mark = "*"
		}
		table.Append([]string{c.CandidateID, c.Name, mark})
	}
	table.Render()

	id, err := s.readLine(ctx, "Enter candidate ID (blank to clear): ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		s.report(s.ctrl.ClearSelection())
		return nil
	}

	err = s.ctrl.SelectCandidate(id)
	if errors.Is(err, ballot.ErrUnknownCandidate) {
		s.warn.Fprintf(s.out, "No candidate with ID %q.\n", id)
		return nil
	}
	if err != nil {
		s.report(err)
		return nil
	}
	fmt.Fprintf(s.out, "Selected %s.\n", s.candidateName(id))
	return nil
}

func (s *Session) review(ctx context.Context) error {
	d := s.ctrl.Draft()

	s.title.Fprintln(s.out, "\nYour ballot")
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.Append([]string{"National ID", orDash(mask(d.VoterIdentityToken))})
	table.Append([]string{"Ballot number", orDash(d.BallotNumber)})
	candidate := ""
	if id, ok := d.Selected(); ok {
		candidate = s.candidateName(id)
	}
	table.Append([]string{"Candidate", orDash(candidate)})
	table.Append([]string{"Comments", orDash(d.Comments)})
	table.Render()

	var verr *ballot.ValidationError
	if err := s.ctrl.Validate(); errors.As(err, &verr) {
		s.warn.Fprintln(s.out, verr.Message)
	} else {
		fmt.Fprintln(s.out, "Ready to submit.")
	}

	own := screening.Literal{Kind: screening.KindNationalID, Value: d.VoterIdentityToken}
	if kinds := screening.Kinds(screening.Scan(d.Comments, own)); len(kinds) > 0 {
		s.warn.Fprintln(s.out, fmt.Sprintf(models.MsgCommentPII, strings.Join(kinds, ", ")))
	}

	if s.history != nil && d.BallotNumber != "" {
		n, err := s.history.AttemptsForBallot(ctx, s.fingerprints.Of(d.BallotNumber))
		if err != nil {
			slog.Error("failed to count previous attempts", "error", err)
		} else if n > 0 {
			s.warn.Fprintf(s.out, "This ballot number was submitted %s before.\n", times(n))
		}
	}
	return nil
}

func (s *Session) submit(ctx context.Context) error {
	// Outcomes reach the voter through the controller's notifier
	if err := s.ctrl.Submit(ctx); errors.Is(err, ballot.ErrSubmissionInFlight) {
		s.warn.Fprintln(s.out, "A submission is already in progress.")
	}
	return nil
}

func (s *Session) showHistory(ctx context.Context) error {
	if s.history == nil {
		fmt.Fprintln(s.out, "Submission history is disabled. Start the client with -j to keep a local journal.")
		return nil
	}

	entries, err := s.history.Recent(ctx, historyLimit)
	if err != nil {
		slog.Error("failed to read submission history", "error", err)
		s.warn.Fprintln(s.out, "Could not read submission history.")
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No submissions recorded yet.")
		return nil
	}

	s.title.Fprintln(s.out, "\nRecent submissions")
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"When", "Ballot", "Candidate", "Outcome", "Message"})
	for _, e := range entries {
		table.Append([]string{
			humanize.Time(e.AttemptedAt),
			e.BallotFingerprint,
			s.candidateName(e.CandidateID),
			e.Outcome,
			e.Message,
		})
	}
	table.Render()

	counts, err := s.history.CountByOutcome(ctx)
	if err != nil {
		slog.Error("failed to count submission outcomes", "error", err)
		return nil
	}
	fmt.Fprintf(s.out, "Counted: %s  Rejected: %s  Errors: %s\n",
		humanize.Comma(int64(counts[models.OutcomeCounted])),
		humanize.Comma(int64(counts[models.OutcomeRejected])),
		humanize.Comma(int64(counts[models.OutcomeError])),
	)
	return nil
}

func (s *Session) clear(ctx context.Context) error {
	answer, err := s.readLine(ctx, "Clear the ballot? (y/N): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		s.report(s.ctrl.Reset())
		fmt.Fprintln(s.out, "Ballot cleared.")
	}
	return nil
}

func (s *Session) exit(ctx context.Context) error {
	return errQuit
}

func (s *Session) report(err error) {
	if err != nil {
		s.warn.Fprintln(s.out, err.Error())
	}
}

func (s *Session) candidateName(id string) string {
	for _, c := range s.ctrl.Candidates() {
		if c.CandidateID == id {
			return c.Name
		}
	}
	return id
}

// mask hides all but the last four characters
func mask(v string) string {
	r := []rune(v)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func times(n int) string {
	if n == 1 {
		return "once"
	}
	return humanize.Comma(int64(n)) + " times"
}
