package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a duration at a precision suited to its
// magnitude: whole microseconds below one millisecond, whole milliseconds
// below one second, and Go's default formatting beyond that.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: The formatted duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
