package binding

import (
	"fmt"

	"propbind/internal/match"
)

//go:generate go tool stringer -type=Mode,ChangeDetection -output=mode_string.go

// Mode selects the synchronisation policy of a binding. Invalid is also the
// terminal state of a binding that failed or finished.
type Mode int

const (
	Invalid Mode = iota
	OneWayToTarget
	OneWayToSource
	TwoWay
	OneTime
)

// Active reports whether m is a mode a binding can run in.
func (m Mode) Active() bool {
	return m > Invalid && m <= OneTime
}

var modeNames = map[string]Mode{
	"onewaytotarget": OneWayToTarget,
	"oneway":         OneWayToTarget,
	"onewaytosource": OneWayToSource,
	"twoway":         TwoWay,
	"onetime":        OneTime,
}

// ParseMode parses a mode name in any casing or separator style:
// "TwoWay", "two_way" and "two-way" are the same mode. "one_way" is
// OneWayToTarget.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[match.NormalizeIdent(s)]; ok {
		return m, nil
	}

	return Invalid, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Active() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// ChangeDetection decides when an update propagates.
type ChangeDetection int

const (
	// DetectLegacy propagates toward the target when the fresh source
	// reading equals the tick snapshot, and toward the source when the
	// fresh target reading differs from it.
	DetectLegacy ChangeDetection = iota
	// DetectChanges propagates when a reading differs from the value seen
	// on the previous tick. The first tick always propagates toward the
	// target.
	DetectChanges
)
