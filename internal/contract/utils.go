package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Coverage label constants.
const (
	HighValue     = "High"     // High coverage
	ModerateValue = "Moderate" // Moderate coverage
	LowValue      = "Low"      // Low coverage
	SparseValue   = "Sparse"   // Sparse coverage
)

// Color variables for console output.
var (
	HighColor     = color.New(color.FgGreen, color.Bold) // highColor represents a well-observed series.
	ModerateColor = color.New(color.FgCyan)              // moderateColor represents acceptable coverage.
	LowColor      = color.New(color.FgYellow)            // lowColor represents thin coverage, interpret with care.
	SparseColor   = color.New(color.FgRed, color.Bold)   // sparseColor represents too few points to trust.
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// GetPlainCoverageLabel returns a plain text label for the observation
// count backing a series. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainCoverageLabel(points int) string {
	switch {
	case points >= 8:
		return HighValue
	case points >= 5:
		return ModerateValue
	case points >= 3:
		return LowValue
	default:
		return SparseValue
	}
}

// GetColorCoverageLabel returns a colored text label for console output (table).
// It uses GetPlainCoverageLabel to determine the string, and then applies the
// appropriate color.
func GetColorCoverageLabel(points int) string {
	text := GetPlainCoverageLabel(points)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case LowValue:
		return LowColor.Sprint(text)
	default: // "Sparse"
		return SparseColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fipulse_runs.db"
	}
	return filepath.Join(homeDir, ".fipulse_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseYearList parses a forecast year expression into an ordered year slice.
// Accepts comma-separated years ("2025,2026,2030") and inclusive ranges
// ("2025-2027"), which may be mixed. Order is preserved as written.
func ParseYearList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("year list cannot be empty")
	}

	var years []int
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := parseYear(from)
			if err != nil {
				return nil, err
			}
			end, err := parseYear(to)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, fmt.Errorf("invalid year range '%s': end before start", part)
			}
			for y := start; y <= end; y++ {
				years = append(years, y)
			}
			continue
		}

		y, err := parseYear(part)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}

	if len(years) == 0 {
		return nil, fmt.Errorf("year list cannot be empty")
	}
	return years, nil
}

// parseYear parses a single year token and bounds-checks it.
func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year '%s': %w", s, err)
	}
	if y < MinForecastYear || y > MaxForecastYear {
		return 0, fmt.Errorf("year %d out of range [%d, %d]", y, MinForecastYear, MaxForecastYear)
	}
	return y, nil
}

// TruncateLabel truncates a long label to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the ellipsis.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
