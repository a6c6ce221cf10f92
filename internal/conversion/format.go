package conversion

import "fmt"

// SecondsPlaces is the number of decimals shown for seconds.
const SecondsPlaces = 3

// FormatLongitude renders d as `E 30° 15' 30.000"`.
func FormatLongitude(d DMS) string {
	r := d.Round(SecondsPlaces)
	return fmt.Sprintf("%s %d° %d' %.3f\"", r.Sign.Direction(), r.Degrees, r.Minutes, r.Seconds)
}

// FormatOffset renders h as `+02:01:02.000`.
func FormatOffset(h HMS) string {
	r := h.Round(SecondsPlaces)
	return fmt.Sprintf("%s%02d:%02d:%06.3f", r.Sign, r.Hours, r.Minutes, r.Seconds)
}
