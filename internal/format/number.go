// Number formatting utilities shared by the presentation layers.

package format

import (
	"strconv"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal digit
// string. The input is assumed to contain only digits with an optional
// leading sign.
//
// Parameters:
//   - s: The digit string to format.
//
// Returns:
//   - string: The digit string with comma separators every three digits.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var builder strings.Builder
	builder.Grow(len(s) + len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		builder.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(s[i : i+3])
	}
	return sign + builder.String()
}

// TruncateMiddle shortens a long string by keeping edges characters at each
// end, separated by an ellipsis marker that names the omitted length.
// Strings at or below 2*edges characters are returned unchanged.
//
// Parameters:
//   - s: The string to shorten.
//   - edges: The number of characters to keep at each end.
//
// Returns:
//   - string: The shortened string.
func TruncateMiddle(s string, edges int) string {
	if edges <= 0 || len(s) <= 2*edges {
		return s
	}
	omitted := len(s) - 2*edges
	var builder strings.Builder
	builder.WriteString(s[:edges])
	builder.WriteString("...[")
	builder.WriteString(strconv.Itoa(omitted))
	builder.WriteString(" digits omitted]...")
	builder.WriteString(s[len(s)-edges:])
	return builder.String()
}
