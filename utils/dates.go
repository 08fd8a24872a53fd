package utils

import (
	"errors"
	"math"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format")

const dateLayout = "2006-01-02"

// ParseDayWindow turns a YYYY-MM-DD string into the half-open UTC window
// [reportDate, nextDay) used by the night-audit queries.
func ParseDayWindow(date string) (reportDate, nextDay time.Time, err error) {
	reportDate, err = time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return reportDate, reportDate.AddDate(0, 0, 1), nil
}

// ParseStayRange normalizes an availability query: check-in snaps to
// 00:00:00.000 UTC of its calendar day, check-out to 23:59:59.999 UTC.
func ParseStayRange(checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.ParseInLocation(dateLayout, strings.TrimSpace(checkInDate), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	checkOut, err = time.ParseInLocation(dateLayout, strings.TrimSpace(checkOutDate), time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	checkOut = checkOut.Add(24*time.Hour - time.Millisecond)
	return checkIn, checkOut, nil
}

// RangesOverlap reports whether [aStart, aEnd) and [bStart, bEnd) intersect
// under the strict half-open rule: aStart < bEnd AND aEnd > bStart.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// SplitRoomNumbers splits a comma-separated room-number field ("101, 102")
// into trimmed tokens. Empty tokens are dropped.
func SplitRoomNumbers(roomNumber string) []string {
	if strings.TrimSpace(roomNumber) == "" {
		return nil
	}
	parts := strings.Split(roomNumber, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if token := strings.TrimSpace(p); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// ContainsRoomNumber reports whether the comma-separated list contains the
// room number as an exact token. "1101" never matches "101".
func ContainsRoomNumber(roomNumberList, roomNumber string) bool {
	want := strings.TrimSpace(roomNumber)
	if want == "" {
		return false
	}
	for _, token := range SplitRoomNumbers(roomNumberList) {
		if token == want {
			return true
		}
	}
	return false
}

// Round2 rounds to two decimals, matching the report's display precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
