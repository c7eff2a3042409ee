// Package timeres turns free-text time expressions and best-effort NLU hints
// into a validated, strictly-future UTC instant.
//
// The fallback order is a fixed contract: structured hint first, then text
// heuristics, then a hard default of now+5m. The first stage that yields a
// valid future instant wins.
package timeres

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultOffset is the hard fallback applied when nothing else resolves.
const DefaultOffset = 5 * time.Minute

// tomorrowHour is the local clock hour used for a bare "tomorrow".
const tomorrowHour = 9

var (
	minutesRe  = regexp.MustCompile(`(?i)\b(\d+)\s*m(?:in(?:ute)?s?|enit)?\b`)
	hoursRe    = regexp.MustCompile(`(?i)\b(\d+)\s*(?:h(?:ou)?rs?|jam)\b`)
	tomorrowRe = regexp.MustCompile(`(?i)\b(?:tomorrow|besok)\b`)
)

// hint layouts accepted from the NLU collaborator, tried in order.
var hintLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02 15:04",
}

// Resolver converts time expressions interpreted in a single source zone.
type Resolver struct {
	loc *time.Location
}

// New creates a resolver for the given source timezone.
func New(loc *time.Location) *Resolver {
	return &Resolver{loc: loc}
}

// Resolve returns a strictly-future UTC instant for the given raw text and
// optional structured hint. It never fails: when neither the hint nor the
// text heuristics produce a valid future instant, it falls back to
// now+DefaultOffset.
func (r *Resolver) Resolve(raw, hint string, now time.Time) time.Time {
	local := now.In(r.loc)

	if t, ok := r.parseHint(hint, now); ok {
		return t.UTC()
	}

	if t, ok := r.parseText(raw, local); ok && t.After(now) {
		return t.UTC()
	}

	return now.Add(DefaultOffset).UTC()
}

// ParseAbsolute parses an explicit datetime in one of the accepted layouts,
// interpreted in the source zone when the layout has no offset. The future
// check is the caller's concern; API validation rejects past instants
// instead of silently moving them.
func (r *Resolver) ParseAbsolute(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}

	for _, layout := range hintLayouts[1:] {
		if t, err := time.ParseInLocation(layout, value, r.loc); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func (r *Resolver) parseHint(hint string, now time.Time) (time.Time, bool) {
	t, ok := r.ParseAbsolute(hint)
	if !ok || !t.After(now) {
		// Malformed or past hints are discarded, not errors.
		return time.Time{}, false
	}
	return t, true
}

func (r *Resolver) parseText(raw string, local time.Time) (time.Time, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return time.Time{}, false
	}

	if m := minutesRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return local.Add(time.Duration(n) * time.Minute), true
		}
	}

	if m := hoursRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return local.Add(time.Duration(n) * time.Hour), true
		}
	}

	if tomorrowRe.MatchString(text) {
		next := local.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), tomorrowHour, 0, 0, 0, r.loc), true
	}

	return time.Time{}, false
}
