// Package detector derives metadata signals from a document's location.
package detector

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
)

// PathSignals holds what the relative path says about a document.
type PathSignals struct {
	Date  string // YYYY-MM-01, or "" without a year
	Year  *int
	Month *int
}

// AnalyzePath scans the segments of a relative path, the file name
// included as written. A four-digit segment sets the year, later
// ones win. A 01-12 segment sets the month, but only once a year has been
// seen. A year without a month dates the document to January.
func AnalyzePath(relPath string) PathSignals {
	var year, month *int

	for _, segment := range segments(relPath) {
		if yearPattern.MatchString(segment) {
			y, _ := strconv.Atoi(segment)
			year = &y
			continue
		}
		if year != nil && monthPattern.MatchString(segment) {
			m, _ := strconv.Atoi(segment)
			month = &m
		}
	}

	if year == nil {
		return PathSignals{}
	}
	if month == nil {
		m := 1
		month = &m
	}
	return PathSignals{
		Date:  fmt.Sprintf("%04d-%02d-01", *year, *month),
		Year:  year,
		Month: month,
	}
}

// PathDate is AnalyzePath flattened into its three fields.
func PathDate(relPath string) (string, *int, *int) {
	s := AnalyzePath(relPath)
	return s.Date, s.Year, s.Month
}

func segments(relPath string) []string {
	return strings.Split(filepath.ToSlash(filepath.Clean(relPath)), "/")
}
