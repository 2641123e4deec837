package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for console output.
var (
	// Answer text is the only colorized model output.
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green

	// Notices and diagnostics.
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray

	// Help screen styles.
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))            // yellow
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))            // cyan
)
