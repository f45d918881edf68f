package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// looseDate matches dates with -, / or . separators and possibly unpadded
// month/day components, e.g. "2024/3/5" or "2024.03.5".
var looseDate = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})$`)

// Normalize canonicalizes a loosely formatted date string to YYYY-MM-DD.
// Month and day are zero-padded but not range-checked; the upstream API
// owns calendar validation (month 13 passes through as "13"). Input that
// does not look like a date at all is returned unchanged, trimmed, so the
// API gets to reject it. Never fails.
func Normalize(input string) string {
	s := strings.TrimSpace(input)
	m := looseDate.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%s-%02d-%02d", m[1], month, day)
}

// NormalizeOrToday is Normalize with today's local date as the default
// for blank input.
func NormalizeOrToday(input string) string {
	if strings.TrimSpace(input) == "" {
		return Today()
	}
	return Normalize(input)
}

// NormalizeOrEmpty is Normalize, except blank input stays empty.
func NormalizeOrEmpty(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return Normalize(input)
}

// Today returns the local wall-clock calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}
