// Package selection holds the currently selected longitude shared by the map,
// slider and form views. Views never write each other's fields: every update
// goes through a Selection, and every view re-derives itself from the View it
// is handed.
package selection

import (
	"sync"

	"tzlon-api/internal/conversion"
	"tzlon-api/internal/models"
)

// View is everything a client needs to render the current selection.
type View struct {
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	LongitudeDMS       conversion.DMS `json:"longitude_dms"`
	LongitudeFormatted string         `json:"longitude_formatted"`
	OffsetHours        float64        `json:"offset_hours"`
	OffsetHMS          conversion.HMS `json:"offset_hms"`
	OffsetFormatted    string         `json:"offset_formatted"`
}

// Selection is the single authoritative selected location. It is safe for
// concurrent use.
type Selection struct {
	mu          sync.Mutex
	location    models.Location
	nextID      int
	subscribers map[int]func(View)
	done        chan struct{}
	closed      bool
}

// New returns a selection at 0°, 0°.
func New() *Selection {
	return &Selection{
		subscribers: make(map[int]func(View)),
		done:        make(chan struct{}),
	}
}

// View returns the current state.
func (s *Selection) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return derive(s.location)
}

// SetFromDegrees selects a decimal longitude, clamped to ±180°.
func (s *Selection) SetFromDegrees(lon float64) View {
	return s.update(func(l *models.Location) {
		l.Longitude = conversion.ClampLongitude(lon)
	})
}

// SetFromHours selects the longitude of a UTC offset, capped to ±12h.
func (s *Selection) SetFromHours(hours float64) View {
	return s.SetFromDegrees(conversion.LongitudeFromTimezoneHours(conversion.ClampOffsetHours(hours)))
}

// SetFromDMS selects a longitude given in degrees, minutes and seconds.
func (s *Selection) SetFromDMS(d conversion.DMS) View {
	return s.SetFromDegrees(d.Decimal())
}

// SetFromHMS selects the longitude of a UTC offset given in hours, minutes and seconds.
func (s *Selection) SetFromHMS(h conversion.HMS) View {
	return s.SetFromHours(h.Decimal())
}

// SetFromMapClick moves both the marker and the selected longitude.
func (s *Selection) SetFromMapClick(lat, lon float64) View {
	return s.update(func(l *models.Location) {
		l.Latitude = conversion.ClampLatitude(lat)
		l.Longitude = conversion.ClampLongitude(lon)
	})
}

// Subscribe registers fn to receive every View produced by an update, in update
// order. fn runs with the selection locked, so it must not block or call back
// into the selection. The returned func removes the subscription.
func (s *Selection) Subscribe(fn func(View)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Done is closed once the selection is closed.
func (s *Selection) Done() <-chan struct{} {
	return s.done
}

// Close drops all subscribers and closes Done. Further updates still apply but
// notify nobody.
func (s *Selection) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.subscribers = make(map[int]func(View))
	close(s.done)
}

func (s *Selection) update(apply func(*models.Location)) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.location)
	v := derive(s.location)
	for _, fn := range s.subscribers {
		fn(v)
	}
	return v
}

func derive(l models.Location) View {
	dms := conversion.DecimalToDMS(l.Longitude)
	hours := conversion.DecimalLongitudeToDecimalHours(l.Longitude)
	hms := conversion.DecimalHoursToHMS(hours)
	return View{
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		LongitudeDMS:       dms,
		LongitudeFormatted: conversion.FormatLongitude(dms),
		OffsetHours:        hours,
		OffsetHMS:          hms,
		OffsetFormatted:    conversion.FormatOffset(hms),
	}
}
