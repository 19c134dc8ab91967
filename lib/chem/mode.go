package chem

import (
	"errors"
	"fmt"

	"modchem-backend/lib/textutil"
)

var ErrUnknownMode = errors.New("unknown compound mode")

// Mode is the compound structure a formula is built for, it decides the
// order elements are written in.
type Mode string

const (
	Organic   Mode = "organic"
	Ionic     Mode = "ionic"
	Oxide     Mode = "oxide"
	Hydroxide Mode = "hydroxide"
)

// Modes lists every mode in the order the buttons are shown.
var Modes = []Mode{Organic, Ionic, Oxide, Hydroxide}

var modeLabels = map[Mode]string{
	Organic:   "Organic Compound",
	Ionic:     "Ionic Compound",
	Oxide:     "Oxide Compound",
	Hydroxide: "Hydroxide Compound",
}

// Label is the heading shown under the mode buttons.
func (m Mode) Label() string {
	return modeLabels[m]
}

// ParseMode accepts a mode name ignoring case, spaces and dashes. "hydro" is accepted as an
// alias of hydroxide, a few older links still use it.
func ParseMode(s string) (Mode, error) {
	switch textutil.NormalizeName(s) {
	case "organic":
		return Organic, nil
	case "ionic":
		return Ionic, nil
	case "oxide", "oxides":
		return Oxide, nil
	case "hydroxide", "hydroxides", "hydro":
		return Hydroxide, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeSelector remembers when each mode button was last pressed. The mode
// pressed most recently is the current one.
//
// A ModeSelector is not safe for concurrent use.
type ModeSelector struct {
	pressed map[Mode]int64
}

// NewModeSelector starts out with organic selected: organic is stamped 1 and
// every other mode 0.
func NewModeSelector() *ModeSelector {
	s := &ModeSelector{pressed: make(map[Mode]int64, len(Modes))}
	for _, m := range Modes {
		s.pressed[m] = 0
	}
	s.pressed[Organic] = 1
	return s
}

// Press records a press of the mode button at timestamp ts (any monotonic
// unit, the selector only compares them).
func (s *ModeSelector) Press(m Mode, ts int64) error {
	if _, ok := modeLabels[m]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	s.pressed[m] = ts
	return nil
}

// Current is the mode with the strictly greatest timestamp, when the greatest
// timestamp is shared it falls back to organic.
func (s *ModeSelector) Current() Mode {
	var (
		best    Mode
		bestTs  int64
		tied    bool
		started bool
	)
	for _, m := range Modes {
		ts := s.pressed[m]
		switch {
		case !started || ts > bestTs:
			best, bestTs, tied, started = m, ts, false, true
		case ts == bestTs:
			tied = true
		}
	}
	if tied {
		return Organic
	}
	return best
}

// Timestamps returns a copy of the last press time of every mode.
func (s *ModeSelector) Timestamps() map[Mode]int64 {
	out := make(map[Mode]int64, len(s.pressed))
	for m, ts := range s.pressed {
		out[m] = ts
	}
	return out
}

