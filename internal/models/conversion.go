package models

import (
	"time"

	"tzlon-api/internal/conversion"
)

// LongitudeInput is a longitude entered as direction, degrees, minutes and seconds.
type LongitudeInput struct {
	Direction conversion.Direction `json:"direction"`
	Degrees   int                  `json:"degrees"`
	Minutes   int                  `json:"minutes"`
	Seconds   float64              `json:"seconds"`
}

// TimezoneInput is a UTC offset entered as sign, hours, minutes and seconds.
type TimezoneInput struct {
	Sign    conversion.Sign `json:"sign"`
	Hours   int             `json:"hours"`
	Minutes int             `json:"minutes"`
	Seconds float64         `json:"seconds"`
}

// Conversion is the result of converting in either direction. Both sides are
// always populated so a client can render whichever view it needs.
type Conversion struct {
	Longitude          float64        `json:"longitude"`
	LongitudeDMS       conversion.DMS `json:"longitude_dms"`
	LongitudeFormatted string         `json:"longitude_formatted"`
	OffsetHours        float64        `json:"offset_hours"`
	OffsetHMS          conversion.HMS `json:"offset_hms"`
	OffsetFormatted    string         `json:"offset_formatted"`
	Steps              []string       `json:"steps"`
}

// Meridian is a reference line drawn every 15° of longitude.
type Meridian struct {
	Longitude   float64 `json:"longitude"`
	OffsetHours float64 `json:"offset_hours"`
	Label       string  `json:"label"`
}

// Conversion kinds, as stored in the history and reported in batch output.
const (
	KindLongitudeToTimezone = "lon->tz"
	KindTimezoneToLongitude = "tz->lon"
)

// HistoryEntry is one recorded single conversion.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Input       string    `json:"input"`
	Longitude   float64   `json:"longitude"`
	OffsetHours float64   `json:"offset_hours"`
	CreatedAt   time.Time `json:"created_at"`
}
