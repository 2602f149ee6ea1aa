package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	// Defaults to DarkTheme but can be changed via InitTheme.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty value disables colors (per no-color.org spec)
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

// ColorPrimary returns the active theme's primary accent escape code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active theme's secondary escape code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the active theme's success escape code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the active theme's warning escape code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the active theme's error escape code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorInfo returns the active theme's info escape code.
func ColorInfo() string { return GetCurrentTheme().Info }

// ColorBold returns the active theme's bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the active theme's underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the active theme's reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// BannerStyle defines lipgloss-compatible styles for headline output.
// The styles render borders and padding; colors come from the active theme.
type BannerStyle struct {
	Header lipgloss.Style
	Result lipgloss.Style
}

var (
	colorBanner = BannerStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C00")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(0, 1),
		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a")).
			Padding(0, 1),
	}

	// plainBanner keeps the layout but renders with the terminal's
	// default colors.
	plainBanner = BannerStyle{
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			Padding(0, 1),
		Result: lipgloss.NewStyle().Padding(0, 1),
	}
)

// GetBannerStyle returns the banner styles matching the active theme.
// When colors are disabled, borders remain but color attributes are dropped.
func GetBannerStyle() BannerStyle {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == "none" {
		return plainBanner
	}
	return colorBanner
}
