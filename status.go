package main

import (
	"fmt"
	"time"
)

// statusMessageTTL is how long a message bar line stays visible
// (spec.md §3, "Message bar").
const statusMessageTTL = 5 * time.Second

// statusBar is the typed formatter the Design Notes (§9, "Variadic
// status formatting") ask for in place of the teacher's raw
// editorSetStatusMessage(cfg, format, args...) footgun: callers set the
// line through Info/Infof instead of handing a user-influenced
// string straight to Sprintf-style formatting.
type statusBar struct {
	text string
	at   time.Time
}

// Info sets the status line to a literal string, cut to 80 bytes.
func (s *statusBar) Info(text string) {
	if len(text) > 80 {
		text = text[:80]
	}
	s.text = text
	s.at = time.Now()
}

// Infof sets the status line to a formatted string. format is always a
// literal from this codebase; user-typed text (a prompt buffer) only
// ever arrives as one of the args, keeping the Sprintf call safe.
func (s *statusBar) Infof(format string, args ...any) {
	s.Info(fmt.Sprintf(format, args...))
}

// Fresh reports whether the message is still within its TTL.
func (s *statusBar) Fresh(now time.Time) bool {
	return s.text != "" && now.Sub(s.at) < statusMessageTTL
}

// Text returns the current message text (regardless of freshness; the
// renderer checks Fresh separately).
func (s *statusBar) Text() string { return s.text }
