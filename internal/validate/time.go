package validate

import (
	"fmt"
	"strconv"
	"strings"

	"facultyload/internal/common"
)

// parseClock converts an "HH:MM" clock string to minutes since midnight.
// Anything that is not a well-formed clock time is rejected so the
// interval checks never compare garbage values.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidTimeFormat, s)
	}

	return hours*60 + minutes, nil
}

// overlapping reports whether two [start, end) minute intervals intersect.
func overlapping(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}
