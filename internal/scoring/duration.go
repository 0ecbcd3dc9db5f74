package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Durations come in from two independent source formats: unit-suffixed text
// ("22分30秒", "22 minutes 30 seconds") and colon-delimited clock text.
// Colon text with two fields is MM:SS, with three HH:MM:SS.
var (
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:分|minutes?|min)`)
	secondsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:秒|seconds?|sec)`)
)

// ParseDuration converts duration text to fractional minutes
// (minutes + seconds/60). Empty or unparseable text yields 0; it never
// fails.
func ParseDuration(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ":") {
		return parseClock(s)
	}
	var mins, secs float64
	matched := false
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		mins, _ = strconv.ParseFloat(m[1], 64)
		matched = true
	}
	if m := secondsRe.FindStringSubmatch(s); m != nil {
		secs, _ = strconv.ParseFloat(m[1], 64)
		matched = true
	}
	if !matched {
		// bare number of minutes
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return mins + secs/60
}

func parseClock(s string) float64 {
	parts := strings.Split(s, ":")
	nums := make([]float64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || n < 0 {
			return 0
		}
		nums[i] = n
	}
	switch len(nums) {
	case 2: // MM:SS
		return nums[0] + nums[1]/60
	case 3: // HH:MM:SS
		return nums[0]*60 + nums[1] + nums[2]/60
	}
	return 0
}

// FormatDuration renders fractional minutes as "X minutes YY seconds".
// Non-positive durations render as zero.
func FormatDuration(minutes float64) string {
	if minutes <= 0 {
		return "0 minutes 00 seconds"
	}
	totalSecs := int(math.Round(minutes * 60))
	return fmt.Sprintf("%d minutes %02d seconds", totalSecs/60, totalSecs%60)
}
