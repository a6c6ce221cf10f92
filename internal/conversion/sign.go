package conversion

import (
	"fmt"
	"strings"
)

// Sign is the direction of a UTC offset, and the sign carried by DMS/HMS values.
// The zero value behaves as Positive.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

// Factor returns -1 for Negative and 1 otherwise.
func (s Sign) Factor() float64 {
	if s == Negative {
		return -1
	}
	return 1
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Direction returns the longitude hemisphere matching s.
func (s Sign) Direction() Direction {
	if s == Negative {
		return West
	}
	return East
}

func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sign) UnmarshalText(b []byte) error {
	v, err := ParseSign(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Direction is the longitude hemisphere: East is positive, West negative.
type Direction int8

const (
	East Direction = iota
	West
)

func (d Direction) String() string {
	if d == West {
		return "W"
	}
	return "E"
}

// Sign returns the sign of longitudes in hemisphere d.
func (d Direction) Sign() Sign {
	if d == West {
		return Negative
	}
	return Positive
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	*d = ParseDirection(string(b))
	return nil
}

// ParseDirection reads a free-form hemisphere such as "W", "west" or "E (+)".
// Anything whose trimmed form starts with W (any case) is West; everything else,
// including the empty string, is East.
func ParseDirection(s string) Direction {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s)), "W") {
		return West
	}
	return East
}

// ParseSign accepts exactly "+" or "-" after trimming whitespace.
func ParseSign(s string) (Sign, error) {
	switch strings.TrimSpace(s) {
	case "+":
		return Positive, nil
	case "-":
		return Negative, nil
	}
	return Positive, &InvalidComponentError{Field: "sign", Reason: fmt.Sprintf("%q is not one of \"+\" or \"-\"", s)}
}
