package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"tzlon-api/internal/batch"
	"tzlon-api/internal/conversion"
	"tzlon-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Columns appended to every converted table, in this order.
var ResultColumns = []string{"input_type", "longitude_decimal", "utc_offset_hours", "longitude", "utc_offset", "error"}

const errUnrecognizedRow = "unrecognized row format"

var (
	longitudeColumns = [4][]string{
		{"direction", "dir", "lon_dir"},
		{"degrees", "deg", "lon_deg"},
		{"minutes", "min", "lon_min"},
		{"seconds", "sec", "lon_sec"},
	}
	timezoneColumns = [4][]string{
		{"sign", "tz_sign"},
		{"hours", "h", "tz_h"},
		{"minutes", "m", "tz_m"},
		{"seconds", "s", "tz_s"},
	}
)

// BatchService converts every row of an uploaded table
type BatchService struct {
	workers int
}

// NewBatchService creates a batch service converting up to workers rows at once
func NewBatchService(workers int) *BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchService{workers: workers}
}

// schema holds the column positions of one input layout; -1 marks a missing column.
type schema [4]int

func resolve(t *batch.Table, names [4][]string) schema {
	var s schema
	for i, aliases := range names {
		s[i] = t.Index(aliases...)
	}
	return s
}

// cells returns the four cells of row, or false when a column is missing or empty.
func (s schema) cells(row []string) ([4]string, bool) {
	var out [4]string
	for i, idx := range s {
		if idx < 0 || strings.TrimSpace(row[idx]) == "" {
			return out, false
		}
		out[i] = strings.TrimSpace(row[idx])
	}
	return out, true
}

// Convert returns the input table augmented with ResultColumns. A row that
// cannot be converted carries its reason in the error column; only context
// cancellation fails the whole batch.
func (s *BatchService) Convert(ctx context.Context, in *batch.Table) (*batch.Table, error) {
	lon := resolve(in, longitudeColumns)
	tz := resolve(in, timezoneColumns)

	results := make([][]string, len(in.Rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, row := range in.Rows {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = convertRow(row, lon, tz)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service: batch conversion aborted: %w", err)
	}

	columns := append(append([]string{}, in.Columns...), ResultColumns...)
	rows := make([][]string, len(in.Rows))
	failed := 0
	for i, row := range in.Rows {
		rows[i] = append(append([]string{}, row...), results[i]...)
		if results[i][len(ResultColumns)-1] != "" {
			failed++
		}
	}

	log.Debug().Int("rows", len(rows)).Int("failed", failed).Msg("batch converted")

	return batch.NewTable(columns, rows), nil
}

func convertRow(row []string, lon, tz schema) []string {
	if cells, ok := lon.cells(row); ok {
		dms, err := parseLongitude(cells)
		if err != nil {
			return errorRow(models.KindLongitudeToTimezone, err)
		}
		return resultRow(models.KindLongitudeToTimezone, ConvertLongitude(dms))
	}
	if cells, ok := tz.cells(row); ok {
		hms, err := parseTimezone(cells)
		if err != nil {
			return errorRow(models.KindTimezoneToLongitude, err)
		}
		return resultRow(models.KindTimezoneToLongitude, ConvertTimezone(hms))
	}
	return errorRow("", errors.New(errUnrecognizedRow))
}

func parseLongitude(cells [4]string) (conversion.DMS, error) {
	dms := conversion.DMS{Sign: conversion.ParseDirection(cells[0]).Sign()}
	var err error
	if dms.Degrees, err = parseWhole("degrees", cells[1]); err != nil {
		return dms, err
	}
	if dms.Minutes, err = parseWhole("minutes", cells[2]); err != nil {
		return dms, err
	}
	if dms.Seconds, err = parseNumber("seconds", cells[3]); err != nil {
		return dms, err
	}
	return dms, dms.Validate()
}

func parseTimezone(cells [4]string) (conversion.HMS, error) {
	sign, err := conversion.ParseSign(cells[0])
	if err != nil {
		return conversion.HMS{}, err
	}
	hms := conversion.HMS{Sign: sign}
	if hms.Hours, err = parseWhole("hours", cells[1]); err != nil {
		return hms, err
	}
	if hms.Minutes, err = parseWhole("minutes", cells[2]); err != nil {
		return hms, err
	}
	if hms.Seconds, err = parseNumber("seconds", cells[3]); err != nil {
		return hms, err
	}
	return hms, hms.Validate()
}

func parseNumber(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &conversion.InvalidComponentError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}

// parseWhole accepts integral values written either as "30" or "30.0".
func parseWhole(field, s string) (int, error) {
	v, err := parseNumber(field, s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, &conversion.InvalidComponentError{Field: field, Reason: fmt.Sprintf("%q is not a whole number", s)}
	}
	return int(v), nil
}

func resultRow(kind string, c *models.Conversion) []string {
	return []string{
		kind,
		formatDecimal(c.Longitude),
		formatDecimal(c.OffsetHours),
		c.LongitudeFormatted,
		c.OffsetFormatted,
		"",
	}
}

func errorRow(kind string, err error) []string {
	return []string{kind, "", "", "", "", err.Error()}
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
