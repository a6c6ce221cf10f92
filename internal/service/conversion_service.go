package service

import (
	"context"
	"fmt"

	"tzlon-api/internal/conversion"
	"tzlon-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ConversionService contains the business logic for single conversions
type ConversionService struct {
	history HistoryRecorder
}

// HistoryRecorder interface for dependency injection. A nil recorder disables history.
type HistoryRecorder interface {
	RecordConversion(ctx context.Context, entry models.HistoryEntry) error
}

// NewConversionService creates a new conversion service
func NewConversionService(history HistoryRecorder) *ConversionService {
	return &ConversionService{history: history}
}

// LongitudeToTimezone converts a DMS longitude to its UTC offset
func (s *ConversionService) LongitudeToTimezone(ctx context.Context, in models.LongitudeInput) (*models.Conversion, error) {
	dms := conversion.DMS{Sign: in.Direction.Sign(), Degrees: in.Degrees, Minutes: in.Minutes, Seconds: in.Seconds}
	if err := dms.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	result := ConvertLongitude(dms)
	s.record(ctx, models.KindLongitudeToTimezone, conversion.FormatLongitude(dms), result)

	return result, nil
}

// TimezoneToLongitude converts an HMS UTC offset to its longitude. Offsets beyond
// ±12h are capped before conversion.
func (s *ConversionService) TimezoneToLongitude(ctx context.Context, in models.TimezoneInput) (*models.Conversion, error) {
	hms := conversion.HMS{Sign: in.Sign, Hours: in.Hours, Minutes: in.Minutes, Seconds: in.Seconds}
	if err := hms.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	result := ConvertTimezone(hms)
	s.record(ctx, models.KindTimezoneToLongitude, conversion.FormatOffset(hms), result)

	return result, nil
}

// Meridians returns the reference meridians every 15° from -180 to 180
func (s *ConversionService) Meridians() []models.Meridian {
	meridians := make([]models.Meridian, 0, 25)
	for lon := -180; lon <= 180; lon += 15 {
		hours := conversion.DecimalLongitudeToDecimalHours(float64(lon))
		meridians = append(meridians, models.Meridian{
			Longitude:   float64(lon),
			OffsetHours: hours,
			Label:       "UTC" + conversion.FormatOffset(conversion.DecimalHoursToHMS(hours))[:3],
		})
	}
	return meridians
}

func (s *ConversionService) record(ctx context.Context, kind, input string, result *models.Conversion) {
	if s.history == nil {
		return
	}

	entry := models.HistoryEntry{
		Kind:        kind,
		Input:       input,
		Longitude:   result.Longitude,
		OffsetHours: result.OffsetHours,
	}
	if err := s.history.RecordConversion(ctx, entry); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("failed to record conversion")
	}
}

// ConvertLongitude builds the full conversion of a DMS longitude. The decimal
// longitude is clamped to ±180°.
func ConvertLongitude(dms conversion.DMS) *models.Conversion {
	lon := conversion.ClampLongitude(dms.Decimal())
	hours := conversion.DecimalLongitudeToDecimalHours(lon)
	hms := conversion.DecimalHoursToHMS(hours)
	out := conversion.DecimalToDMS(lon)

	return &models.Conversion{
		Longitude:          lon,
		LongitudeDMS:       out,
		LongitudeFormatted: conversion.FormatLongitude(out),
		OffsetHours:        hours,
		OffsetHMS:          hms,
		OffsetFormatted:    conversion.FormatOffset(hms),
		Steps: []string{
			fmt.Sprintf("DMS → decimal degrees: %d + %d/60 + %.3f/3600 = %.6f°", dms.Degrees, dms.Minutes, dms.Seconds, lon),
			fmt.Sprintf("Decimal degrees → decimal hours: %.6f ÷ 15 = %.6f h", lon, hours),
			fmt.Sprintf("Decimal hours → H:M:S: %s", conversion.FormatOffset(hms)),
		},
	}
}

// ConvertTimezone builds the full conversion of an HMS offset, capping it to ±12h.
func ConvertTimezone(hms conversion.HMS) *models.Conversion {
	raw := hms.Decimal()
	hours := conversion.ClampOffsetHours(raw)
	lon := conversion.LongitudeFromTimezoneHours(hours)
	dms := conversion.DecimalToDMS(lon)

	steps := []string{
		fmt.Sprintf("H:M:S → decimal hours: %d + %d/60 + %.3f/3600 = %.6f h", hms.Hours, hms.Minutes, hms.Seconds, raw),
	}
	if hours != raw {
		steps = append(steps, fmt.Sprintf("Capped to UTC offset range: %.6f h", hours))
	}
	steps = append(steps,
		fmt.Sprintf("Decimal hours → longitude: %.6f × 15 = %.6f°", hours, lon),
		fmt.Sprintf("Decimal degrees → D:M:S: %s", conversion.FormatLongitude(dms)),
	)

	offset := conversion.DecimalHoursToHMS(hours)
	return &models.Conversion{
		Longitude:          lon,
		LongitudeDMS:       dms,
		LongitudeFormatted: conversion.FormatLongitude(dms),
		OffsetHours:        hours,
		OffsetHMS:          offset,
		OffsetFormatted:    conversion.FormatOffset(offset),
		Steps:              steps,
	}
}
