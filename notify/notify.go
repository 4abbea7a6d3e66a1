// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"

	"github.com/danielhkuo/ballot-client/models"
)

// Notifier shows a notification to the voter
type Notifier interface {
	Emit(n models.Notification)
}

// Func adapts a function to Notifier
type Func func(models.Notification)

func (f Func) Emit(n models.Notification) {
	f(n)
}

// Console prints notifications to a terminal, one per line
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[models.Severity]*color.Color
	labels map[models.Severity]string
}

func NewConsole(w io.Writer, noColor bool) *Console {
	styles := map[models.Severity]*color.Color{
		models.SeverityInfo:    color.New(color.FgCyan),
		models.SeveritySuccess: color.New(color.FgGreen, color.Bold),
		models.SeverityWarning: color.New(color.FgYellow),
		models.SeverityError:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range styles {
		if noColor {
			c.DisableColor()
		} else {
			// w may not be os.Stdout; the caller already decided
			c.EnableColor()
		}
	}
	return &Console{
		w:      w,
		styles: styles,
		labels: map[models.Severity]string{
			models.SeverityInfo:    "",
			models.SeveritySuccess: "SUCCESS: ",
			models.SeverityWarning: "WARNING: ",
			models.SeverityError:   "ERROR: ",
		},
	}
}

func (c *Console) Emit(n models.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	style, ok := c.styles[n.Severity]
	if !ok {
		style = c.styles[models.SeverityInfo]
	}
	style.Fprintln(c.w, c.labels[n.Severity]+n.Message)
}

// Queue keeps notifications in memory until drained
type Queue struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Emit(n models.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// All returns every queued notification without removing them
func (q *Queue) All() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.Notification(nil), q.items...)
}

// Drain returns and removes every queued notification
func (q *Queue) Drain() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Last returns the most recent notification
func (q *Queue) Last() (models.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return models.Notification{}, false
	}
	return q.items[len(q.items)-1], true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Log writes notifications to a slog.Logger
type Log struct {
	logger *slog.Logger
}

// NewLog returns a Log sink; a nil logger means slog.Default()
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Emit(n models.Notification) {
	l.logger.Log(context.Background(), levelFor(n.Severity), "notification",
		"severity", string(n.Severity),
		"message", n.Message,
	)
}

func levelFor(s models.Severity) slog.Level {
	switch s {
	case models.SeverityWarning:
		return slog.LevelWarn
	case models.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Multi fans a notification out to several sinks
type Multi []Notifier

func (m Multi) Emit(n models.Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Emit(n)
		}
	}
}
