// Package timewindow resolves user-supplied clip bounds into a concrete
// second-offset window against an optional total-duration signal.
package timewindow

import (
	"fmt"
	"regexp"
	"strconv"

	apperrors "clip2txt/internal/app/errors"
)

var markerRe = regexp.MustCompile(`^(\d\d):([0-5]\d):([0-5]\d)$`)

// DurationHint is an optional total source length in seconds. Known is false
// when no usable duration signal exists.
type DurationHint struct {
	Seconds int
	Known   bool
}

// HintOf folds a probe result into a DurationHint. A zero or negative duration
// carries no information and counts as unknown.
func HintOf(seconds int, err error) DurationHint {
	if err != nil || seconds <= 0 {
		return DurationHint{}
	}
	return DurationHint{Seconds: seconds, Known: true}
}

// Window is an ordered pair of second offsets selecting the clip to process.
type Window struct {
	Start int
	End   int
}

func (w Window) StartTimestamp() string { return ToTimestamp(w.Start) }
func (w Window) EndTimestamp() string   { return ToTimestamp(w.End) }

// RangeExpr renders the window as a single "*start-end" section expression.
func (w Window) RangeExpr() string {
	return "*" + w.StartTimestamp() + "-" + w.EndTimestamp()
}

// ToSeconds parses a strict HH:MM:SS marker into a second offset.
func ToSeconds(ts string) (int, error) {
	m := markerRe.FindStringSubmatch(ts)
	if m == nil {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidWindow, "bad timestamp %q, use HH:MM:SS", ts)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	return h*3600 + mi*60 + s, nil
}

// ToTimestamp renders a second offset back to HH:MM:SS. It is the inverse of
// ToSeconds over [0, 24h).
func ToTimestamp(sec int) string {
	h := sec / 3600
	rem := sec % 3600
	return fmt.Sprintf("%02d:%02d:%02d", h, rem/60, rem%60)
}

// Resolve derives the clip window from optional start/end markers (empty string
// means absent) and a duration hint.
//
// With a known duration D the window is clamped to D, and a degenerate request
// (start >= end) falls back to the entire source rather than failing. Without a
// duration signal both markers are required and are returned as-is; ordering
// cannot be validated and is left to downstream acquisition.
func Resolve(startTS, endTS string, hint DurationHint) (Window, error) {
	if hint.Known {
		d := hint.Seconds
		s, e := 0, d
		var err error
		if startTS != "" {
			if s, err = ToSeconds(startTS); err != nil {
				return Window{}, err
			}
		}
		if endTS != "" {
			if e, err = ToSeconds(endTS); err != nil {
				return Window{}, err
			}
		}
		if e > d {
			e = d
		}
		if s >= e {
			s, e = 0, d
		}
		return Window{Start: s, End: e}, nil
	}

	if startTS == "" || endTS == "" {
		return Window{}, apperrors.Wrap(apperrors.ErrInvalidWindow,
			"unknown media length - specify both start and end")
	}
	s, err := ToSeconds(startTS)
	if err != nil {
		return Window{}, err
	}
	e, err := ToSeconds(endTS)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}
