package query

import (
	"fmt"
	"strings"
)

// TieBreak decides the order of entries with equal counts in the skill and
// office rankings.
type TieBreak int

const (
	// FirstSeen keeps tied entries in the order their key first appears when
	// scanning employees in dataset order.
	FirstSeen TieBreak = iota
	// Alphabetical orders tied entries by key, byte-wise ascending.
	Alphabetical
)

func (t TieBreak) String() string {
	switch t {
	case FirstSeen:
		return "first-seen"
	case Alphabetical:
		return "alphabetical"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// ParseTieBreak parses "first-seen" or "alphabetical".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-seen", "firstseen", "":
		return FirstSeen, nil
	case "alphabetical", "alpha":
		return Alphabetical, nil
	}
	return FirstSeen, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
}

// keyLess returns the tie ordering for string keys, nil meaning "keep order".
func (t TieBreak) keyLess() func(a, b string) bool {
	if t == Alphabetical {
		return func(a, b string) bool { return a < b }
	}
	return nil
}
