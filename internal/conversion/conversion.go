// Package conversion converts between decimal degrees, degrees/minutes/seconds,
// decimal hours and hours/minutes/seconds. Longitude and UTC offset are tied by
// the Earth's rotation: 360° in 24h, i.e. 15° per hour.
package conversion

import "math"

// DegreesPerHour is the fixed ratio between longitude and UTC offset.
const DegreesPerHour = 15.0

const (
	LongitudeMin  = -180.0
	LongitudeMax  = 180.0
	LatitudeMin   = -90.0
	LatitudeMax   = 90.0
	OffsetHourMin = -12.0
	OffsetHourMax = 12.0
)

// DMS is a longitude split into unsigned sexagesimal components plus a sign.
type DMS struct {
	Sign    Sign    `json:"sign"`
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// HMS is a UTC offset split into unsigned sexagesimal components plus a sign.
type HMS struct {
	Sign    Sign    `json:"sign"`
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// DMSToDecimal returns sign*(degrees + minutes/60 + seconds/3600). Components are
// taken as magnitudes, so a negative minutes value never flips the result.
func DMSToDecimal(degrees, minutes int, seconds float64, sign Sign) float64 {
	return sexagesimalToDecimal(degrees, minutes, seconds, sign)
}

// DecimalToDMS decomposes value into degrees, minutes and seconds.
func DecimalToDMS(value float64) DMS {
	sign, whole, minutes, seconds := decimalToSexagesimal(value)
	return DMS{Sign: sign, Degrees: whole, Minutes: minutes, Seconds: seconds}
}

// HMSToDecimalHours returns sign*(hours + minutes/60 + seconds/3600).
func HMSToDecimalHours(hours, minutes int, seconds float64, sign Sign) float64 {
	return sexagesimalToDecimal(hours, minutes, seconds, sign)
}

// DecimalHoursToHMS decomposes value into hours, minutes and seconds.
func DecimalHoursToHMS(value float64) HMS {
	sign, whole, minutes, seconds := decimalToSexagesimal(value)
	return HMS{Sign: sign, Hours: whole, Minutes: minutes, Seconds: seconds}
}

// LongitudeFromTimezoneHours converts a UTC offset in hours to degrees of longitude.
// No clamping is applied.
func LongitudeFromTimezoneHours(hours float64) float64 {
	return hours * DegreesPerHour
}

// DecimalLongitudeToDecimalHours converts degrees of longitude to a UTC offset in hours.
func DecimalLongitudeToDecimalHours(longitude float64) float64 {
	return longitude / DegreesPerHour
}

// Decimal returns the signed decimal degrees represented by d.
func (d DMS) Decimal() float64 {
	return DMSToDecimal(d.Degrees, d.Minutes, d.Seconds, d.Sign)
}

// Decimal returns the signed decimal hours represented by h.
func (h HMS) Decimal() float64 {
	return HMSToDecimalHours(h.Hours, h.Minutes, h.Seconds, h.Sign)
}

// Round rounds the seconds to places decimals and carries any resulting 60.
func (d DMS) Round(places int) DMS {
	d.Degrees, d.Minutes, d.Seconds = carry(d.Degrees, d.Minutes, roundTo(d.Seconds, places))
	return d
}

// Round rounds the seconds to places decimals and carries any resulting 60.
func (h HMS) Round(places int) HMS {
	h.Hours, h.Minutes, h.Seconds = carry(h.Hours, h.Minutes, roundTo(h.Seconds, places))
	return h
}

func sexagesimalToDecimal(whole, minutes int, seconds float64, sign Sign) float64 {
	total := math.Abs(float64(whole)) + math.Abs(float64(minutes))/60 + math.Abs(seconds)/3600
	return sign.Factor() * total
}

// decimalToSexagesimal is the greedy base-60 split followed by a carry pass.
// Floating point can leave the seconds at (or a hair above) 60; those are
// folded into the next unit so minutes and seconds stay within [0,60).
func decimalToSexagesimal(value float64) (Sign, int, int, float64) {
	sign := Positive
	if value < 0 {
		sign = Negative
	}
	a := math.Abs(value)
	whole := math.Floor(a)
	remMinutes := (a - whole) * 60
	minutes := math.Floor(remMinutes)
	seconds := (remMinutes - minutes) * 60

	w, m, s := carry(int(whole), int(minutes), seconds)
	return sign, w, m, s
}

func carry(whole, minutes int, seconds float64) (int, int, float64) {
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		whole++
	}
	return whole, minutes, seconds
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// ClampLongitude limits v to [-180, 180].
func ClampLongitude(v float64) float64 {
	return clamp(v, LongitudeMin, LongitudeMax)
}

// ClampLatitude limits v to [-90, 90].
func ClampLatitude(v float64) float64 {
	return clamp(v, LatitudeMin, LatitudeMax)
}

// ClampOffsetHours limits v to the conventional UTC offset range [-12, 12].
func ClampOffsetHours(v float64) float64 {
	return clamp(v, OffsetHourMin, OffsetHourMax)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
