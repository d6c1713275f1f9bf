package ttml

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reClockTime  = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2}(?:\.\d+)?)$`)
	reOffsetTime = regexp.MustCompile(`^(\d+(?:\.\d+)?)(h|m|s|ms)$`)
)

// ParseBegin converts a begin attribute to seconds. It accepts a bare
// number ("62.5"), an offset time ("62.5s", "1500ms", "2m") and a clock
// time ("00:01:02.5"). ok is false for anything else and for negative,
// NaN, infinite or out-of-range values.
func ParseBegin(value string) (seconds float64, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return validSeconds(v)
	}

	if m := reOffsetTime.FindStringSubmatch(value); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		switch m[2] {
		case "h":
			v *= 3600
		case "m":
			v *= 60
		case "ms":
			v /= 1000
		}
		return validSeconds(v)
	}

	if m := reClockTime.FindStringSubmatch(value); m != nil {
		h, errH := strconv.Atoi(m[1])
		mins, errM := strconv.Atoi(m[2])
		s, errS := strconv.ParseFloat(m[3], 64)
		if errH != nil || errM != nil || errS != nil {
			return 0, false
		}
		return validSeconds(float64(h)*3600 + float64(mins)*60 + s)
	}

	return 0, false
}

func validSeconds(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxInt64 {
		return 0, false
	}
	return v, true
}
