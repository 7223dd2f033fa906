// Package datetime provides month-granularity date utilities for deal files.
package datetime

import (
	"fmt"
	"time"

	"github.com/OverlordBaconPants/rei-analyzer/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for months in deal files.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthsBetween returns the number of whole months from firstDate to
// secondDate (negative when secondDate precedes firstDate). Deal timelines
// are month-indexed, so configured calendar months convert to deal-relative
// indexes through this function.
func MonthsBetween(firstDate, secondDate string) (int, error) {
	firstT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", firstDate, err)
	}
	secondT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", secondDate, err)
	}
	return (secondT.Year()-firstT.Year())*constants.MonthsPerYear +
		int(secondT.Month()) - int(firstT.Month()), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
