package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tzlon-api/internal/batch"
	"tzlon-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	in := flag.String("in", "", "Path to the CSV or XLSX file to convert")
	out := flag.String("out", "", "Path of the converted file; .xlsx writes a workbook, anything else CSV (default stdout as CSV)")
	workers := flag.Int("workers", 4, "Rows converted concurrently")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *in == "" {
		log.Fatal().Msg("--in flag is required")
	}

	log.Info().Str("file", *in).Msg("starting conversion")

	table, err := readTable(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}

	log.Info().Int("rows", len(table.Rows)).Msg("parsed input")

	result, err := service.NewBatchService(*workers).Convert(context.Background(), table)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot convert rows")
	}

	if err := writeTable(*out, result); err != nil {
		log.Fatal().Err(err).Msg("cannot write output")
	}

	failed := 0
	for _, row := range result.Rows {
		if row[len(row)-1] != "" {
			failed++
		}
	}
	log.Info().Int("rows", len(result.Rows)).Int("failed", failed).Msg("conversion finished")
}

func readTable(path string) (*batch.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return batch.Decode(filepath.Base(path), file)
}

func writeTable(path string, t *batch.Table) error {
	if path == "" {
		return batch.WriteCSV(os.Stdout, t)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	write := batch.WriteCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		write = batch.WriteXLSX
	}
	if err := write(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
