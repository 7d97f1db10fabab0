package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SortCategoryCounts orders counts descending, breaking ties by value
// so output is deterministic.
func SortCategoryCounts(counts []CategoryCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
}

// FormatYears renders a year list compactly, collapsing a contiguous
// ascending run into "first-last".
func FormatYears(years []int) string {
	if len(years) == 0 {
		return ""
	}
	contiguous := true
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(years) > 1 {
		return fmt.Sprintf("%d-%d", years[0], years[len(years)-1])
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, ",")
}

// IndicatorNames returns the sorted set of indicator names present in
// the records.
func IndicatorNames(records []DataRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.Indicator != "" {
			seen[rec.Indicator] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
