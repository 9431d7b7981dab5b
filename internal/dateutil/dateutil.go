// Package dateutil resolves the year shown in the site copyright line.
//
// A year value is one of:
//
//	""  or "auto"     the clock's year, e.g. "2026"
//	"auto:FORMAT"     the clock's date in FORMAT, e.g. "auto:MMM YYYY"
//	"since:YYYY"      a range ending at the clock's year, e.g. "2023-2026"
//	anything else     printed as written
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidYear is returned for a malformed year value.
var ErrInvalidYear = errors.New("invalid year value")

// YearPlaceholder marks where Expand inserts the resolved year.
const YearPlaceholder = "{year}"

// MaxFormatLength caps the FORMAT part of "auto:FORMAT".
const MaxFormatLength = 50

const (
	autoPrefix  = "auto:"
	sincePrefix = "since:"
)

// layoutTokens are tried longest first.
var layoutTokens = [...][2]string{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
}

// Layout turns a token format such as "MMM YYYY" into a time layout.
// Text inside brackets is copied literally: "[Rev] YYYY".
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: empty format", ErrInvalidYear)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format longer than %d characters", ErrInvalidYear, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidYear, format)
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		token, layout := matchToken(rest)
		if token == "" {
			b.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		b.WriteString(layout)
		rest = rest[len(token):]
	}
	return b.String(), nil
}

func matchToken(s string) (token, layout string) {
	for _, t := range layoutTokens {
		if strings.HasPrefix(s, t[0]) {
			return t[0], t[1]
		}
	}
	return "", ""
}

// Resolve returns the text for a year value at time now.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case lower == "" || lower == "auto":
		return strconv.Itoa(now.Year()), nil
	case strings.HasPrefix(lower, autoPrefix):
		layout, err := Layout(strings.TrimSpace(value)[len(autoPrefix):])
		if err != nil {
			return "", err
		}
		return now.Format(layout), nil
	case strings.HasPrefix(lower, sincePrefix):
		return since(lower[len(sincePrefix):], now)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidYear, value)
	}
	return value, nil
}

func since(start string, now time.Time) (string, error) {
	first, err := strconv.Atoi(start)
	if err != nil || len(start) != 4 {
		return "", fmt.Errorf("%w: since needs a four digit year, got %q", ErrInvalidYear, start)
	}
	current := now.Year()
	switch {
	case first > current:
		return "", fmt.Errorf("%w: since:%d is after %d", ErrInvalidYear, first, current)
	case first == current:
		return start, nil
	}
	return fmt.Sprintf("%d-%d", first, current), nil
}

// Validate reports whether value resolves.
func Validate(value string) error {
	_, err := Resolve(value, time.Now())
	return err
}

// Expand replaces every YearPlaceholder in text with the resolved value.
// Text without a placeholder is returned unchanged and value is not parsed.
func Expand(text, value string, now time.Time) (string, error) {
	if !strings.Contains(text, YearPlaceholder) {
		return text, nil
	}
	year, err := Resolve(value, now)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(text, YearPlaceholder, year), nil
}
