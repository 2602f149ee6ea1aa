// Package ui provides terminal themes and color support for nttcalc.
// It defines the ANSI color schemes and lipgloss banner styles shared by
// the CLI output layer, and honors the NO_COLOR convention.
package ui
