// Package scheme defines the color scheme systems an item can support.
package scheme

import (
	"fmt"
	"slices"
	"strings"
)

// System is a color scheme specification style.
type System string

const (
	Base16  System = "base16"
	Base24  System = "base24"
	Tinted8 System = "tinted8"
)

// Default is the system assumed when an item does not list any.
const Default = Base16

// Systems lists every valid system in display order.
var Systems = []System{Base16, Base24, Tinted8}

// ParseSystem converts s to a System.
// Matching is exact; "Base16" is not a valid system.
func ParseSystem(s string) (System, error) {
	sys := System(s)
	if !slices.Contains(Systems, sys) {
		return "", fmt.Errorf("invalid scheme system %q: must be %s", s, formatOptions())
	}
	return sys, nil
}

func (s System) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so decoders reject
// unknown systems.
func (s *System) UnmarshalText(text []byte) error {
	sys, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = sys
	return nil
}

// formatOptions formats Systems for error messages.
// E.g. `"base16", "base24", or "tinted8"`
func formatOptions() string {
	quoted := make([]string, len(Systems))
	for i, s := range Systems {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
