package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

var romanMonths = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

func RomanMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return romanMonths[m-1]
}

// DocumentNumber builds a dispatch note reference, e.g. "00001/LOG.CRB/III/2024".
func DocumentNumber(requestNumber, unitCode string, date time.Time) string {
	return fmt.Sprintf("%s/%s/%s/%d", requestNumber, unitCode, RomanMonth(date.Month()), date.Year())
}

// FormatVolume groups thousands with dots (1200 -> "1.200").
func FormatVolume(n int) string {
	return humanize.FormatInteger("#.###,", n)
}

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
