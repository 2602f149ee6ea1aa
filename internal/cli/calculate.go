package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/nttcalc/internal/config"
	"github.com/agbru/nttcalc/internal/ntt"
	"github.com/agbru/nttcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the input sizes, timeout, environment details, and the
// parallelism threshold.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Mode() {
	case config.ModeMultiply:
		fmt.Fprintf(out, "Multiplying a %s%d-bit%s integer by a %s%d-bit%s integer with a timeout of %s%s%s.\n",
			ui.ColorInfo(), cfg.X.BitLen(), ui.ColorReset(),
			ui.ColorInfo(), cfg.Y.BitLen(), ui.ColorReset(),
			ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Convolving two %s%d-element%s vectors with a timeout of %s%s%s.\n",
			ui.ColorInfo(), len(cfg.Vec0), ui.ColorReset(),
			ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(), ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Parallelism threshold: %s%d%s elements.\n",
		ui.ColorPrimary(), cfg.Threshold, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single path vs comparison).
//
// Parameters:
//   - convolvers: The slice of convolution paths that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(convolvers []ntt.Convolver, out io.Writer) {
	var modeDesc string
	if len(convolvers) > 1 {
		modeDesc = "Parallel comparison of all convolution paths"
	} else {
		modeDesc = fmt.Sprintf("Single run with the %s%s%s path",
			ui.ColorSuccess(), convolvers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
