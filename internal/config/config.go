// Package config handles command-line parsing, environment variable
// overrides, and validation of the application configuration.
//
// Priority order: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "NTTCALC_"

// DefaultTimeout is the default limit on a single run.
const DefaultTimeout = 5 * time.Minute

// AppConfig holds the complete, validated application configuration.
type AppConfig struct {
	// Vec0 and Vec1 are the input vectors for convolution and verify modes.
	Vec0 []*big.Int
	Vec1 []*big.Int

	// X and Y are the operands for multiply mode. Both nil outside that mode.
	X *big.Int
	Y *big.Int

	// Verify runs every available convolution path and compares results.
	Verify bool

	// Timeout bounds the total run duration.
	Timeout time.Duration

	// Threshold is the vector length above which forward transforms run
	// concurrently. Zero selects an adaptive value from the host hardware,
	// negative disables parallelism.
	Threshold int

	// ModulusCap bounds the modulus search iteration count. Zero means
	// unbounded.
	ModulusCap uint64

	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string

	// MetricsAddr is the listen address for the Prometheus endpoint.
	// Empty disables the metrics server.
	MetricsAddr string

	Verbose bool
	Quiet   bool
	Hex     bool
	NoColor bool
}

// Mode identifies which operation a configuration requests.
type Mode int

const (
	// ModeConvolve computes one circular convolution.
	ModeConvolve Mode = iota
	// ModeMultiply multiplies two integers via the convolution pipeline.
	ModeMultiply
	// ModeVerify runs all convolution paths and cross-checks them.
	ModeVerify
)

// Mode returns the operation this configuration requests.
func (c AppConfig) Mode() Mode {
	switch {
	case c.X != nil:
		return ModeMultiply
	case c.Verify:
		return ModeVerify
	default:
		return ModeConvolve
	}
}

// ParseConfig parses command-line arguments into a validated AppConfig.
// Environment variables override defaults for any flag not explicitly set.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp if --help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var (
		vec0Str     = fs.String("vec0", "", "first input vector as comma-separated non-negative integers")
		vec1Str     = fs.String("vec1", "", "second input vector as comma-separated non-negative integers")
		xStr        = fs.String("x", "", "first multiplication operand (multiply mode)")
		yStr        = fs.String("y", "", "second multiplication operand (multiply mode)")
		verify      = fs.Bool("verify", false, "run all convolution paths and compare results")
		timeout     = fs.Duration("timeout", DefaultTimeout, "maximum run duration")
		threshold   = fs.Int("threshold", 0, "vector length above which transforms run in parallel (0 = adaptive, negative = off)")
		modulusCap  = fs.Uint64("modulus-cap", 0, "maximum modulus search iterations (0 = unbounded)")
		outputFile  = fs.String("output", "", "file path to save the result")
		metricsAddr = fs.String("metrics-addr", "", "listen address for the Prometheus endpoint (empty = disabled)")
		hex         = fs.Bool("hex", false, "print results in hexadecimal")
		noColor     = fs.Bool("no-color", false, "disable colored output")
	)
	var verbose, quiet bool
	fs.BoolVar(&verbose, "verbose", false, "show full untruncated results")
	fs.BoolVar(&verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&quiet, "quiet", false, "print only the result, suitable for scripting")
	fs.BoolVar(&quiet, "q", false, "shorthand for --quiet")

	fs.Usage = func() {
		printUsage(fs, programName)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected positional arguments: %v", fs.Args())
	}

	cfg := AppConfig{
		Verify:      *verify,
		Timeout:     *timeout,
		Threshold:   *threshold,
		ModulusCap:  *modulusCap,
		OutputFile:  *outputFile,
		MetricsAddr: *metricsAddr,
		Verbose:     verbose,
		Quiet:       quiet,
		Hex:         *hex,
		NoColor:     *noColor,
	}

	applyEnvOverrides(&cfg, fs)

	raw := rawOperands{
		vec0: stringOr(isFlagSet(fs, "vec0"), *vec0Str, getEnvString("VEC0", *vec0Str)),
		vec1: stringOr(isFlagSet(fs, "vec1"), *vec1Str, getEnvString("VEC1", *vec1Str)),
		x:    *xStr,
		y:    *yStr,
	}
	if err := cfg.resolveOperands(raw); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// rawOperands carries the unparsed operand strings from flags and env.
type rawOperands struct {
	vec0, vec1 string
	x, y       string
}

// stringOr returns flagVal when the flag was set, envVal otherwise.
func stringOr(flagWasSet bool, flagVal, envVal string) string {
	if flagWasSet {
		return flagVal
	}
	return envVal
}

// resolveOperands parses the operand strings into big integers and stores
// them on the configuration.
func (c *AppConfig) resolveOperands(raw rawOperands) error {
	if raw.x != "" || raw.y != "" {
		if raw.x == "" || raw.y == "" {
			return apperrors.NewConfigError("multiply mode requires both -x and -y")
		}
		if raw.vec0 != "" || raw.vec1 != "" {
			return apperrors.NewConfigError("cannot combine -x/-y with --vec0/--vec1")
		}
		x, err := parseOperand("x", raw.x)
		if err != nil {
			return err
		}
		y, err := parseOperand("y", raw.y)
		if err != nil {
			return err
		}
		c.X, c.Y = x, y
		return nil
	}

	if raw.vec0 == "" || raw.vec1 == "" {
		return apperrors.NewConfigError("convolution requires both --vec0 and --vec1")
	}
	vec0, err := ParseVector("vec0", raw.vec0)
	if err != nil {
		return err
	}
	vec1, err := ParseVector("vec1", raw.vec1)
	if err != nil {
		return err
	}
	c.Vec0, c.Vec1 = vec0, vec1
	return nil
}

// Validate checks cross-field constraints after parsing.
//
// Returns:
//   - error: A ConfigError describing the first violated constraint, or nil.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Verbose && c.Quiet {
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	}
	if c.Mode() == ModeMultiply && c.Verify {
		return apperrors.NewConfigError("--verify applies to vector convolution, not -x/-y multiplication")
	}
	if c.Mode() != ModeMultiply && len(c.Vec0) != len(c.Vec1) {
		return apperrors.NewConfigError("vectors must have equal length, got %d and %d", len(c.Vec0), len(c.Vec1))
	}
	return nil
}

// ParseVector parses a comma-separated list of non-negative integers.
// Values accept decimal or 0x-prefixed hexadecimal notation.
//
// Parameters:
//   - field: The flag name, used in error messages.
//   - s: The comma-separated value list.
//
// Returns:
//   - []*big.Int: The parsed vector.
//   - error: A ConfigError on empty, malformed, or negative entries.
func ParseVector(field, s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	out := make([]*big.Int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, apperrors.NewConfigError("--%s contains an empty element", field)
		}
		v, ok := new(big.Int).SetString(part, 0)
		if !ok {
			return nil, apperrors.NewConfigError("--%s element %q is not a valid integer", field, part)
		}
		if v.Sign() < 0 {
			return nil, apperrors.NewConfigError("--%s element %q is negative", field, part)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseOperand parses a single non-negative big integer operand.
func parseOperand(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, apperrors.NewConfigError("-%s value %q is not a valid integer", field, s)
	}
	if v.Sign() < 0 {
		return nil, apperrors.NewConfigError("-%s value %q is negative", field, s)
	}
	return v, nil
}

// printUsage writes the full usage text including environment variables.
func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(out, "Exact integer circular convolution via the number-theoretic transform.\n\n")
	fmt.Fprintf(out, "Modes:\n")
	fmt.Fprintf(out, "  --vec0 A --vec1 B       convolve two equal-length vectors\n")
	fmt.Fprintf(out, "  --vec0 A --vec1 B --verify\n")
	fmt.Fprintf(out, "                          convolve with every path and cross-check\n")
	fmt.Fprintf(out, "  -x N -y M               multiply two integers via convolution\n\n")
	fmt.Fprintf(out, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment variables (overridden by flags, prefix %s):\n", EnvPrefix)
	fmt.Fprintf(out, "  VEC0, VEC1, TIMEOUT, THRESHOLD, MODULUS_CAP, METRICS_ADDR,\n")
	fmt.Fprintf(out, "  OUTPUT, VERBOSE, QUIET, HEX, NO_COLOR\n")
}
