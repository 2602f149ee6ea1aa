package format

import "fmt"

// FormatBytes renders a byte count in human-readable binary units.
//
// Parameters:
//   - n: The byte count.
//
// Returns:
//   - string: The count with a KiB/MiB/GiB suffix as appropriate.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
