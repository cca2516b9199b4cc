package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var theme = catppuccin.Mocha

func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Mauve() lipgloss.Color    { return lipgloss.Color(theme.Mauve().Hex) }
func Text() lipgloss.Color     { return lipgloss.Color(theme.Text().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Overlay1() lipgloss.Color { return lipgloss.Color(theme.Overlay1().Hex) }
