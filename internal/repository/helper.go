package repository

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in "2006-01-02" or RFC3339 format.
func ParseDate(str string) (time.Time, error) {
	returnTime, err := time.Parse(dateLayout, str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// FormatDate renders a calendar date for the storage boundary.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseFloat(str, column string) (float64, error) {
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
