package main

import "github.com/charmbracelet/lipgloss"

var (
	valueColor = lipgloss.Color("#3ECF8E")
	errorColor = lipgloss.Color("#EF4444")
	labelColor = lipgloss.Color("#6B7280")

	valueStyle = lipgloss.NewStyle().Foreground(valueColor).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(labelColor)
)
