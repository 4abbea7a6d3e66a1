// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screening

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind string

const (
	KindEmail      Kind = "email address"
	KindPhone      Kind = "phone number"
	KindNationalID Kind = "national id"
	KindName       Kind = "name"
)

var markers = map[Kind]string{
	KindEmail:      "[REDACTED EMAIL]",
	KindPhone:      "[REDACTED PHONE NUMBER]",
	KindNationalID: "[REDACTED NATIONAL ID]",
	KindName:       "[REDACTED NAME]",
}

// Applied in this order: a phone number would otherwise be half-eaten by
// the national id pattern.
var patterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindEmail, regexp.MustCompile(`\b[^\s@]+@[^\s@]+\.[^\s@]+\b`)},
	{KindPhone, regexp.MustCompile(`\(?\d{3}\)?-? ?\d{3}-?\d{4}`)},
	{KindNationalID, regexp.MustCompile(`\d{3}[- ]?\d{2}[- ]?\d{4}`)},
}

// Literal is a known sensitive string, such as the voter's own national id
type Literal struct {
	Kind  Kind
	Value string
}

// Literals shorter than this match too much ordinary text
const minLiteralLen = 3

func (l Literal) usable() bool {
	return utf8.RuneCountInString(strings.TrimSpace(l.Value)) >= minLiteralLen
}

// Names wraps plain names as literals
func Names(names ...string) []Literal {
	out := make([]Literal, 0, len(names))
	for _, n := range names {
		out = append(out, Literal{Kind: KindName, Value: n})
	}
	return out
}

type Finding struct {
	Kind Kind
	Text string
}

// Scan reports every piece of personal information found in text.
// Findings are in detection order: patterns first, then literals.
func Scan(text string, literals ...Literal) []Finding {
	var findings []Finding
	remaining := text
	for _, p := range patterns {
		for _, m := range p.re.FindAllString(remaining, -1) {
			findings = append(findings, Finding{Kind: p.kind, Text: m})
		}
		remaining = p.re.ReplaceAllLiteralString(remaining, markers[p.kind])
	}
	for _, lit := range literals {
		if !lit.usable() {
			continue
		}
		var found bool
		remaining, found = replaceToken(remaining, strings.TrimSpace(lit.Value), markerFor(lit.Kind))
		if found {
			findings = append(findings, Finding{Kind: lit.Kind, Text: strings.TrimSpace(lit.Value)})
		}
	}
	return findings
}

// Redact replaces every piece of personal information in text with a marker
func Redact(text string, literals ...Literal) string {
	redacted := text
	for _, p := range patterns {
		redacted = p.re.ReplaceAllLiteralString(redacted, markers[p.kind])
	}
	for _, lit := range literals {
		if lit.usable() {
			redacted, _ = replaceToken(redacted, strings.TrimSpace(lit.Value), markerFor(lit.Kind))
		}
	}
	return redacted
}

// Kinds returns the distinct kinds in findings, sorted
func Kinds(findings []Finding) []string {
	seen := make(map[Kind]bool)
	var kinds []string
	for _, f := range findings {
		if !seen[f.Kind] {
			seen[f.Kind] = true
			kinds = append(kinds, string(f.Kind))
		}
	}
	sort.Strings(kinds)
	return kinds
}

func markerFor(kind Kind) string {
	if m, ok := markers[kind]; ok {
		return m
	}
	return "[REDACTED]"
}

// replaceToken replaces value wherever it stands as a whole token, that is
// not directly preceded or followed by a letter, digit or underscore.
func replaceToken(text, value, marker string) (string, bool) {
	var b strings.Builder
	found := false
	last, start := 0, 0
	for start <= len(text)-len(value) {
		i := strings.Index(text[start:], value)
		if i < 0 {
			break
		}
		i += start
		end := i + len(value)
		if !tokenBoundary(text, i, end) {
			_, size := utf8.DecodeRuneInString(text[i:])
			start = i + size
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(marker)
		last, start = end, end
		found = true
	}
	if !found {
		return text, false
	}
	b.WriteString(text[last:])
	return b.String(), true
}

func tokenBoundary(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
