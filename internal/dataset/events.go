package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadEventImpacts reads the event-impact matrix CSV. The first column
// names the event; every other column is an indicator code whose cells
// hold the additive effect of that event on that indicator, in the
// indicator's own unit. Zero effects are dropped.
//
// The result maps indicator code -> event name -> effect.
func LoadEventImpacts(path string) (map[string]map[string]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event impacts %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read event impacts header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("event impacts %q must have an event column plus at least one indicator column", path)
	}

	impacts := make(map[string]map[string]float64)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read event impacts row %d: %w", line, err)
		}

		event := strings.TrimSpace(row[0])
		if event == "" {
			continue
		}

		for i := 1; i < len(header) && i < len(row); i++ {
			indicator := strings.ToLower(strings.TrimSpace(header[i]))
			cellStr := strings.TrimSpace(row[i])
			if indicator == "" || cellStr == "" {
				continue
			}
			effect, err := strconv.ParseFloat(cellStr, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid effect %q for event %q on row %d: %w", cellStr, event, line, err)
			}
			if effect == 0 {
				continue
			}
			if impacts[indicator] == nil {
				impacts[indicator] = make(map[string]float64)
			}
			impacts[indicator][event] = effect
		}
	}

	return impacts, nil
}

// LoadEventSchedule reads the (event, year) schedule CSV mapping each
// event to the years in which it takes effect.
func LoadEventSchedule(path string) (map[string][]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event schedule %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read event schedule header: %w", err)
	}

	cols := indexColumns(header)
	for _, required := range []string{"event", "year"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("event schedule %q is missing required column %q", path, required)
		}
	}

	schedule := make(map[string][]int)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read event schedule row %d: %w", line, err)
		}

		event := cell(row, cols, "event")
		yearStr := cell(row, cols, "year")
		if event == "" || yearStr == "" {
			continue
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q for event %q on row %d: %w", yearStr, event, line, err)
		}
		schedule[event] = append(schedule[event], year)
	}

	return schedule, nil
}

// ImpactsFor selects the event effects targeting one indicator, matching
// by indicator code case-insensitively. A nil matrix yields nil.
func ImpactsFor(impacts map[string]map[string]float64, indicator string) map[string]float64 {
	if impacts == nil {
		return nil
	}
	return impacts[strings.ToLower(strings.TrimSpace(indicator))]
}
