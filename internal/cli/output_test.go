package cli

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/nttcalc/internal/orchestration"
	"github.com/agbru/nttcalc/internal/ui"
)

func TestMain(m *testing.M) {
	// Deterministic output regardless of the host terminal.
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}

func vector(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(vector(66, 68, 66, 60), OutputConfig{})
	if got != "[66, 68, 66, 60]" {
		t.Errorf("FormatVector = %q", got)
	}
}

func TestFormatElement_Hex(t *testing.T) {
	got := FormatElement(big.NewInt(255), OutputConfig{Hex: true})
	if got != "0xff" {
		t.Errorf("FormatElement hex = %q, want %q", got, "0xff")
	}
}

func TestFormatElement_Truncation(t *testing.T) {
	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(150), nil)

	truncated := FormatElement(huge, OutputConfig{})
	if !strings.Contains(truncated, "digits omitted") {
		t.Errorf("long value not truncated: %q", truncated)
	}

	full := FormatElement(huge, OutputConfig{Verbose: true})
	if len(full) != 151 {
		t.Errorf("verbose value truncated: %d chars", len(full))
	}
}

func TestDisplayVectorResult_Quiet(t *testing.T) {
	var out bytes.Buffer
	DisplayVectorResult(&out, vector(3, 4), time.Millisecond, OutputConfig{Quiet: true})
	if got := strings.TrimSpace(out.String()); got != "[3, 4]" {
		t.Errorf("quiet output = %q", got)
	}
}

func TestDisplayVectorResult_Standard(t *testing.T) {
	var out bytes.Buffer
	DisplayVectorResult(&out, vector(3, 4), time.Millisecond, OutputConfig{})
	s := out.String()
	if !strings.Contains(s, "[3, 4]") || !strings.Contains(s, "2 elements") {
		t.Errorf("standard output missing content:\n%s", s)
	}
	if !strings.Contains(s, "Computed in 1ms") {
		t.Errorf("standard output missing duration:\n%s", s)
	}
}

func TestDisplayProductResult(t *testing.T) {
	var out bytes.Buffer
	DisplayProductResult(&out, big.NewInt(98765), 3*time.Second, OutputConfig{})
	s := out.String()
	if !strings.Contains(s, "98765") || !strings.Contains(s, "5 digits") {
		t.Errorf("product output missing content:\n%s", s)
	}
}

func TestWriteResultToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "result.txt")
	cfg := OutputConfig{OutputFile: path}

	if err := WriteResultToFile(vector(66, 68), 5*time.Millisecond, "NTT", cfg); err != nil {
		t.Fatalf("WriteResultToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"# Path: NTT", "# Elements: 2", "0: 66", "1: 68"} {
		if !strings.Contains(content, want) {
			t.Errorf("result file missing %q:\n%s", want, content)
		}
	}
}

func TestWriteResultToFile_NoPathIsNoop(t *testing.T) {
	if err := WriteResultToFile(vector(1), time.Millisecond, "NTT", OutputConfig{}); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}

func TestPresentComparisonTable(t *testing.T) {
	var out bytes.Buffer
	results := []orchestration.ConvolutionResult{
		{Name: "NTT", Result: vector(1), Duration: 2 * time.Millisecond},
		{Name: "Reference", Err: os.ErrDeadlineExceeded, Duration: 0},
	}
	CLIResultPresenter{}.PresentComparisonTable(results, &out)
	s := out.String()
	for _, want := range []string{"Comparison Summary", "NTT", "Reference", "Success", "Failure", "< 1µs"} {
		if !strings.Contains(s, want) {
			t.Errorf("table missing %q:\n%s", want, s)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	if got := FormatExecutionDuration(750 * time.Microsecond); got != "750µs" {
		t.Errorf("FormatExecutionDuration = %q", got)
	}
}
