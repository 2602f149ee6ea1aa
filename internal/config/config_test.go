package config

import (
	"errors"
	"flag"
	"io"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/nttcalc/internal/errors"
)

func TestParseConfig_ConvolveMode(t *testing.T) {
	cfg, err := ParseConfig("nttcalc", []string{"--vec0", "1,2,3,4", "--vec1", "5,6,7,8"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Mode() != ModeConvolve {
		t.Errorf("Mode() = %v, want ModeConvolve", cfg.Mode())
	}
	if len(cfg.Vec0) != 4 || len(cfg.Vec1) != 4 {
		t.Fatalf("vector lengths = %d, %d, want 4, 4", len(cfg.Vec0), len(cfg.Vec1))
	}
	if cfg.Vec0[2].Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Vec0[2] = %v, want 3", cfg.Vec0[2])
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestParseConfig_MultiplyMode(t *testing.T) {
	cfg, err := ParseConfig("nttcalc", []string{"-x", "12345678901234567890", "-y", "0xff"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Mode() != ModeMultiply {
		t.Errorf("Mode() = %v, want ModeMultiply", cfg.Mode())
	}
	want, _ := new(big.Int).SetString("12345678901234567890", 10)
	if cfg.X.Cmp(want) != 0 {
		t.Errorf("X = %v, want %v", cfg.X, want)
	}
	if cfg.Y.Cmp(big.NewInt(255)) != 0 {
		t.Errorf("Y = %v, want 255 (hex input)", cfg.Y)
	}
}

func TestParseConfig_VerifyMode(t *testing.T) {
	cfg, err := ParseConfig("nttcalc", []string{"--vec0", "1,2", "--vec1", "3,4", "--verify"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Mode() != ModeVerify {
		t.Errorf("Mode() = %v, want ModeVerify", cfg.Mode())
	}
}

func TestParseConfig_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing vec1", []string{"--vec0", "1,2"}},
		{"mismatched lengths", []string{"--vec0", "1,2", "--vec1", "1,2,3"}},
		{"negative element", []string{"--vec0", "1,-2", "--vec1", "3,4"}},
		{"malformed element", []string{"--vec0", "1,abc", "--vec1", "3,4"}},
		{"empty element", []string{"--vec0", "1,,2", "--vec1", "3,4,5"}},
		{"multiply missing y", []string{"-x", "5"}},
		{"multiply mixed with vectors", []string{"-x", "5", "-y", "7", "--vec0", "1", "--vec1", "2"}},
		{"verify with multiply", []string{"-x", "5", "-y", "7", "--verify"}},
		{"negative operand", []string{"-x", "-5", "-y", "7"}},
		{"verbose and quiet", []string{"--vec0", "1", "--vec1", "2", "-v", "-q"}},
		{"zero timeout", []string{"--vec0", "1", "--vec1", "2", "--timeout", "0s"}},
		{"positional arguments", []string{"--vec0", "1", "--vec1", "2", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("nttcalc", tt.args, io.Discard)
			if err == nil {
				t.Fatalf("expected error for args %v, got nil", tt.args)
			}
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfig_HelpReturnsErrHelp(t *testing.T) {
	var usage strings.Builder
	_, err := ParseConfig("nttcalc", []string{"--help"}, &usage)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(usage.String(), "Environment variables") {
		t.Errorf("usage output missing environment variable section:\n%s", usage.String())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NTTCALC_TIMEOUT", "30s")
	t.Setenv("NTTCALC_THRESHOLD", "1024")
	t.Setenv("NTTCALC_MODULUS_CAP", "5000")
	t.Setenv("NTTCALC_QUIET", "yes")

	cfg, err := ParseConfig("nttcalc", []string{"--vec0", "1,2", "--vec1", "3,4"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s from env", cfg.Timeout)
	}
	if cfg.Threshold != 1024 {
		t.Errorf("Threshold = %d, want 1024 from env", cfg.Threshold)
	}
	if cfg.ModulusCap != 5000 {
		t.Errorf("ModulusCap = %d, want 5000 from env", cfg.ModulusCap)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true from env")
	}
}

func TestEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv("NTTCALC_TIMEOUT", "30s")
	t.Setenv("NTTCALC_VEC0", "9,9")

	cfg, err := ParseConfig("nttcalc", []string{"--vec0", "1,2", "--vec1", "3,4", "--timeout", "1m"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m (flag beats env)", cfg.Timeout)
	}
	if cfg.Vec0[0].Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Vec0[0] = %v, want 1 (flag beats env)", cfg.Vec0[0])
	}
}

func TestEnvOverrides_VectorsFromEnv(t *testing.T) {
	t.Setenv("NTTCALC_VEC0", "2,4")
	t.Setenv("NTTCALC_VEC1", "6,8")

	cfg, err := ParseConfig("nttcalc", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Vec0[1].Cmp(big.NewInt(4)) != 0 || cfg.Vec1[0].Cmp(big.NewInt(6)) != 0 {
		t.Errorf("vectors from env = %v, %v", cfg.Vec0, cfg.Vec1)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}

func TestApplyAdaptiveThresholds(t *testing.T) {
	adaptive := ApplyAdaptiveThresholds(AppConfig{Threshold: 0})
	if adaptive.Threshold == 0 {
		t.Error("adaptive threshold not applied for zero default")
	}

	explicit := ApplyAdaptiveThresholds(AppConfig{Threshold: 777})
	if explicit.Threshold != 777 {
		t.Errorf("explicit threshold overwritten: got %d", explicit.Threshold)
	}

	disabled := ApplyAdaptiveThresholds(AppConfig{Threshold: -1})
	if disabled.Threshold != -1 {
		t.Errorf("disabled threshold overwritten: got %d", disabled.Threshold)
	}
}

func TestToOptions(t *testing.T) {
	opts := AppConfig{Threshold: 256, ModulusCap: 42}.ToOptions()
	if opts.ParallelThreshold != 256 || opts.ModulusSearchCap != 42 {
		t.Errorf("ToOptions = %+v", opts)
	}

	off := AppConfig{Threshold: -1}.ToOptions()
	if off.ParallelThreshold != 0 {
		t.Errorf("negative threshold should map to 0, got %d", off.ParallelThreshold)
	}
}
