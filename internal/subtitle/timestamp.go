package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	strictTimestampRegex = regexp.MustCompile(
		`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`,
	)
	lenientTimestampRegex = regexp.MustCompile(
		`^(?:(?:(\d{1,2}):)?(\d{1,2}):)?(\d+)(?:,(\d{1,3}))?$`,
	)
)

// ParseTimestamp converts the on-disk HH:MM:SS,mmm form to a duration.
func ParseTimestamp(s string) (time.Duration, error) {
	matches := strictTimestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, &FormatError{Input: s, Reason: "expected HH:MM:SS,mmm"}
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	if minutes >= 60 {
		return 0, &FormatError{Input: s, Reason: "minutes out of range"}
	}
	if seconds >= 60 {
		return 0, &FormatError{Input: s, Reason: "seconds out of range"}
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// ParseLenientTimestamp accepts the relaxed [[HH:]MM:]SS[,mmm] form used
// on the command line. Examples: "1:23,450" (1m 23s 450ms), "100" (100
// seconds), "12,43" (12s 430ms). Milliseconds are right-padded, so ",4"
// means 400ms.
func ParseLenientTimestamp(s string) (time.Duration, error) {
	matches := lenientTimestampRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, &FormatError{Input: s, Reason: "expected [[HH:]MM:]SS[,mmm]"}
	}

	hours := atoiOrZero(matches[1])
	minutes := atoiOrZero(matches[2])
	seconds := atoiOrZero(matches[3])

	millisText := matches[4]
	for len(millisText) > 0 && len(millisText) < 3 {
		millisText += "0"
	}
	millis := atoiOrZero(millisText)

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

// FormatTimestamp renders a duration as zero-padded HH:MM:SS,mmm.
// Negative durations clamp to 00:00:00,000: a negative timestamp must
// never reach the output file, so callers that shift entries below zero
// clamp first and report it on the warning channel.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
