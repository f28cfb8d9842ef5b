package tui

// Color constants for the ethan-tracker TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1F14" // Dark pitch green
	ColorBorder         = "#3A5545" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EA" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#B1C7B8" // Secondary text - subtle green-tinted grey
	ColorDisabledText  = "#6D8376" // Disabled/muted text
	ColorPlaceholder   = "#B1C7B8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Pitch-green theme)
	ColorAccentMain   = "#16A34A" // Logo, accent elements, active borders
	ColorAccentBright = "#4ADE80" // Hover, highlights, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
