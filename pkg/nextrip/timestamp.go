package nextrip

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDepartureTime = errors.New("invalid departure time")

// Matches the feed's "/Date(1570000360000-0500)/" encoding. The offset is
// informational only, the millisecond value is already a Unix epoch.
var departureTimeRegex = regexp.MustCompile(`^/Date\((\d+)([+-]\d{4})?\)/$`)

// ParseDepartureTime extracts the epoch from a DepartureTime field, dropping
// the milliseconds.
func ParseDepartureTime(value string) (time.Time, error) {
	matches := departureTimeRegex.FindStringSubmatch(strings.TrimSpace(value))
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDepartureTime, value)
	}

	milliseconds, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDepartureTime, value, err)
	}

	return time.Unix(milliseconds/1000, 0), nil
}
