// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/nttcalc/internal/format"
	"github.com/agbru/nttcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the result itself.
	Quiet bool
	// Verbose shows full untruncated values.
	Verbose bool
	// Hex renders values in hexadecimal instead of decimal.
	Hex bool
}

// FormatElement renders a single vector element or product for display,
// truncating very long values unless verbose output is requested.
//
// Parameters:
//   - v: The value to render.
//   - cfg: Output configuration controlling base and truncation.
//
// Returns:
//   - string: The rendered value.
func FormatElement(v *big.Int, cfg OutputConfig) string {
	var s string
	if cfg.Hex {
		s = "0x" + v.Text(16)
	} else {
		s = v.String()
	}
	if !cfg.Verbose && len(s) > TruncationLimit {
		s = format.TruncateMiddle(s, DisplayEdges)
	}
	return s
}

// FormatVector renders an output vector as a bracketed, comma-separated list.
//
// Parameters:
//   - vec: The vector to render.
//   - cfg: Output configuration controlling base and truncation.
//
// Returns:
//   - string: The rendered vector.
func FormatVector(vec []*big.Int, cfg OutputConfig) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = FormatElement(v, cfg)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DisplayVectorResult outputs a convolution result vector.
// In quiet mode only the vector is printed, suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - vec: The result vector.
//   - duration: The time the convolution took.
//   - cfg: Output configuration.
func DisplayVectorResult(out io.Writer, vec []*big.Int, duration time.Duration, cfg OutputConfig) {
	rendered := FormatVector(vec, cfg)
	if cfg.Quiet {
		fmt.Fprintln(out, rendered)
		return
	}

	style := ui.GetBannerStyle()
	fmt.Fprintln(out, style.Header.Render(fmt.Sprintf("Circular convolution (%d elements)", len(vec))))
	fmt.Fprintln(out, style.Result.Render(rendered))
	fmt.Fprintf(out, "Computed in %s%s%s.\n",
		ui.ColorWarning(), FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayProductResult outputs a multiplication result.
//
// Parameters:
//   - out: The output writer.
//   - product: The computed product.
//   - duration: The time the multiplication took.
//   - cfg: Output configuration.
func DisplayProductResult(out io.Writer, product *big.Int, duration time.Duration, cfg OutputConfig) {
	rendered := FormatElement(product, cfg)
	if cfg.Quiet {
		fmt.Fprintln(out, rendered)
		return
	}

	style := ui.GetBannerStyle()
	digits := len(product.String())
	fmt.Fprintln(out, style.Header.Render(fmt.Sprintf("Product (%s digits)", format.FormatNumberString(fmt.Sprint(digits)))))
	fmt.Fprintln(out, style.Result.Render(rendered))
	fmt.Fprintf(out, "Computed in %s%s%s.\n",
		ui.ColorWarning(), FormatExecutionDuration(duration), ui.ColorReset())
}

// WriteResultToFile writes a convolution or multiplication result to a file.
// The result vector is written one element per line, untruncated.
//
// Parameters:
//   - vec: The result vector (a product is written as a single element).
//   - duration: The run duration.
//   - algo: The name of the path that produced the result.
//   - cfg: Output configuration naming the target file.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(vec []*big.Int, duration time.Duration, algo string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Circular Convolution Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Path: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Elements: %d\n", len(vec))
	fmt.Fprintf(file, "\n")

	for i, v := range vec {
		if cfg.Hex {
			fmt.Fprintf(file, "%d: 0x%s\n", i, v.Text(16))
		} else {
			fmt.Fprintf(file, "%d: %s\n", i, v.String())
		}
	}

	return nil
}
