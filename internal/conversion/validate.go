package conversion

import "fmt"

// InvalidComponentError reports a DMS/HMS component outside its domain range,
// or an unparseable sign.
type InvalidComponentError struct {
	Field  string
	Reason string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks degrees in [0,180], minutes in [0,59] and seconds in [0,60).
// The conversion functions never call it; callers opt in.
func (d DMS) Validate() error {
	if d.Degrees < 0 || d.Degrees > 180 {
		return outOfRange("degrees", float64(d.Degrees), "[0, 180]")
	}
	if err := validateMinutesSeconds(d.Minutes, d.Seconds); err != nil {
		return err
	}
	if d.Degrees == 180 && (d.Minutes > 0 || d.Seconds > 0) {
		return &InvalidComponentError{Field: "degrees", Reason: "longitude exceeds 180°"}
	}
	return nil
}

// Validate checks hours in [0,12], minutes in [0,59] and seconds in [0,60).
func (h HMS) Validate() error {
	if h.Hours < 0 || h.Hours > 12 {
		return outOfRange("hours", float64(h.Hours), "[0, 12]")
	}
	return validateMinutesSeconds(h.Minutes, h.Seconds)
}

func validateMinutesSeconds(minutes int, seconds float64) error {
	if minutes < 0 || minutes > 59 {
		return outOfRange("minutes", float64(minutes), "[0, 59]")
	}
	if !(seconds >= 0 && seconds < 60) {
		return outOfRange("seconds", seconds, "[0, 60)")
	}
	return nil
}

func outOfRange(field string, v float64, bounds string) *InvalidComponentError {
	return &InvalidComponentError{Field: field, Reason: fmt.Sprintf("%g is outside %s", v, bounds)}
}
