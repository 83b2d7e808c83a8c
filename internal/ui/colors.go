package ui

import "github.com/fatih/color"

// ColorRed, ColorGreen, etc. return ANSI escape sequences for the named
// color, honoring the active theme: when NoColorTheme is active (NO_COLOR
// set or --no-color passed), every helper returns "". This lets cli and
// calibration build colorized strings with fmt.Sprintf without importing
// fatih/color directly, while still deriving their palette from it.
// sequenceFor renders the escape prefix fatih/color would emit for attr by
// wrapping a zero-width sentinel, avoiding a hand-maintained ANSI table.
func sequenceFor(attr color.Attribute) string {
	c := color.New(attr)
	c.EnableColor()
	wrapped := c.Sprint("\x00")
	if idx := indexOfNUL(wrapped); idx >= 0 {
		return wrapped[:idx]
	}
	return ""
}

func indexOfNUL(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return -1
}

func ColorRed() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.FgRed)
}

func ColorGreen() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.FgGreen)
}

func ColorYellow() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.FgYellow)
}

func ColorBlue() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.FgBlue)
}

func ColorCyan() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.FgCyan)
}

func ColorUnderline() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.Underline)
}

func ColorReset() string {
	if GetCurrentTheme().Name == "none" {
		return ""
	}
	return sequenceFor(color.Reset)
}
