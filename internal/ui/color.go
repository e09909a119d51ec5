// Package ui renders coloured text and tables for the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour so that they stay
// readable on a dark background.
var DarkTheme bool

type colorPair struct {
	light pterm.Color
	dark  pterm.Color
}

func (c colorPair) sprint(a any) string {
	if DarkTheme {
		return c.dark.Sprint(a)
	}

	return c.light.Sprint(a)
}

var (
	green     = colorPair{pterm.FgGreen, pterm.FgLightGreen}
	blue      = colorPair{pterm.FgBlue, pterm.FgLightBlue}
	highlight = colorPair{pterm.FgBlack, pterm.FgLightWhite}
)

func Green(a any) string {
	return green.sprint(a)
}

func Blue(a any) string {
	return blue.sprint(a)
}

// Highlight emphasises names of skills in messages.
func Highlight(a any) string {
	return highlight.sprint(a)
}
