// Package isodur parses the time-designator subset of ISO-8601
// durations (PT[nH][nM][nS]) as delivered by voice-platform duration
// slots. Date components (years, months, days) are not supported.
package isodur

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	// ErrInvalid means the input does not match the PT[nH][nM][nS]
	// grammar or carries no component at all.
	ErrInvalid = errors.New("invalid duration format")
	// ErrTooLong means some component is at or above its modulus.
	ErrTooLong = errors.New("duration component out of range")
)

const (
	maxHours   = 24
	maxMinutes = 1440
	maxSeconds = 86400
)

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

type Components struct {
	Hours   int
	Minutes int
	Seconds int

	HasHours   bool
	HasMinutes bool
	HasSeconds bool
}

// Empty reports whether no component is present.
func (c Components) Empty() bool {
	return !c.HasHours && !c.HasMinutes && !c.HasSeconds
}

// Parse parses a PT-duration string. A bare "PT" with no components is
// rejected with ErrInvalid since it conveys no time at all. Bounds are
// checked per component: hours < 24, minutes < 1440, seconds < 86400.
func Parse(raw string) (Components, error) {
	m := durationPattern.FindStringSubmatch(raw)
	if m == nil {
		return Components{}, ErrInvalid
	}

	var result Components

	if m[1] != "" {
		result.Hours, result.HasHours = mustAtoi(m[1]), true
	}
	if m[2] != "" {
		result.Minutes, result.HasMinutes = mustAtoi(m[2]), true
	}
	if m[3] != "" {
		result.Seconds, result.HasSeconds = mustAtoi(m[3]), true
	}

	if result.Empty() {
		return Components{}, ErrInvalid
	}

	if result.Hours >= maxHours || result.Minutes >= maxMinutes || result.Seconds >= maxSeconds {
		return Components{}, ErrTooLong
	}

	return result, nil
}

func mustAtoi(digits string) int {
	// the pattern guarantees digits only
	v, _ := strconv.Atoi(digits)
	return v
}
