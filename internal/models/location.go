package models

// Location is a point picked on the map. Only its longitude drives conversions;
// the latitude is kept so the marker can be redrawn where it was dropped.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
