package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Roles for the hill scene.
const (
	ColorTerrain = ColorGreen
	ColorRidge   = ColorBrightGreen
	ColorRider   = ColorBrightYellow
	ColorHead    = ColorOrange
	ColorHUD     = ColorBrightWhite
	ColorWreck   = ColorBrightRed
	ColorCrash   = ColorRed
)
