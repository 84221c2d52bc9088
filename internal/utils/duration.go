package utils

import (
	"regexp"
	"strconv"
)

// intervalPattern matches duration encodings of the form "<D> days HH:MM:SS"
// or "HH:MM:SS" (days clause optional), with an optional leading minus. This
// is the wire format used by the upstream process tracker for elapsed-time
// fields; negative intervals show up when a status was corrected backwards.
var intervalPattern = regexp.MustCompile(`^(-)?(?:(\d+)\s+days?\s+)?(\d{1,3}):(\d{2}):(\d{2})(?:\.\d+)?$`)

// ParseIntervalHours converts an interval string to a total hour count.
// Unrecognized or empty input returns 0.0; upstream data legitimately omits
// durations, so this is a defined fallback rather than an error.
func ParseIntervalHours(s string) float64 {
	m := intervalPattern.FindStringSubmatch(s)
	if m == nil {
		return 0.0
	}

	days := 0
	if m[2] != "" {
		days, _ = strconv.Atoi(m[2])
	}
	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	seconds, _ := strconv.Atoi(m[5])

	total := float64(days)*24 + float64(hours) + float64(minutes)/60 + float64(seconds)/3600
	if m[1] == "-" {
		return -total
	}
	return total
}
