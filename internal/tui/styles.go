package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	colorGreen  = lipgloss.Color("#9ece6a") // green
	colorYellow = lipgloss.Color("#e0af68") // yellow
	colorRed    = lipgloss.Color("#f38ba8") // red
	colorBlue   = lipgloss.Color("#7aa2f7") // blue
	colorGray   = lipgloss.Color("#565f89") // comment
	colorWhite  = lipgloss.Color("#c0caf5") // foreground
)

// Styles used for rendering the TUI.
var (
	// Title style for section headers.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			PaddingLeft(1)

	// Label style for stat names.
	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Value style for stat values.
	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	// Subtle style for secondary text.
	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	// Help style for the footer key hints.
	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			PaddingLeft(1).
			PaddingTop(1)

	// Error style for load failures.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	// Card style for dashboard stat boxes.
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 2)

	// Spinner style.
	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorBlue)
)

// Toast styles keyed by notice level.
var (
	toastSuccessStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGreen).
				Foreground(colorGreen).
				Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Foreground(colorRed).
			Padding(0, 1)

	toastWarningStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorYellow).
				Foreground(colorYellow).
				Padding(0, 1)

	toastInfoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Foreground(colorBlue).
			Padding(0, 1)
)

// Icons and symbols.
const (
	iconDot = "•" // Unicode bullet separator
)

// Banner ASCII art for the header.
const banner = `
 ╔╦╗╔═╗╔╦╗╦╔╦╗╦═╗╔═╗╔═╗╦╔═
 ║║║║╣  ║║║ ║ ╠╦╝╠═╣║  ╠╩╗
 ╩ ╩╚═╝═╩╝╩ ╩ ╩╚═╩ ╩╚═╝╩ ╩`

// bannerStyle styles the ASCII art banner.
var bannerStyle = lipgloss.NewStyle().
	Foreground(colorBlue).
	Bold(true).
	PaddingLeft(1).
	PaddingBottom(1)
