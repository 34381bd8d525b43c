// Package render draws a cube as an unfolded net for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// stickerColors maps each cube color to a terminal background.
var stickerColors = map[gocube.Color]lipgloss.Color{
	gocube.White:  lipgloss.Color("255"),
	gocube.Yellow: lipgloss.Color("226"),
	gocube.Green:  lipgloss.Color("34"),
	gocube.Blue:   lipgloss.Color("27"),
	gocube.Red:    lipgloss.Color("196"),
	gocube.Orange: lipgloss.Color("208"),
}

var unknownSticker = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// blank pads the net where no face is drawn.
const blank gocube.Face = -1

// stickerWidth is the printed width of one sticker in either mode.
const stickerWidth = 2

// netRows lists the faces on each band of the net, left to right.
var netRows = [3][]gocube.Face{
	{blank, gocube.Up},
	{gocube.Left, gocube.Front, gocube.Right, gocube.Back},
	{blank, gocube.Down},
}

// Options controls how a net is drawn.
type Options struct {
	// Color draws stickers as colored blocks instead of letters.
	Color bool
}

// Net renders c as an unfolded net with UP on top, then LEFT, FRONT, RIGHT
// and BACK, then DOWN.
func Net(c *gocube.Cube, opts Options) string {
	facelets := c.Facelets()
	var b strings.Builder

	for _, band := range netRows {
		for row := 0; row < 3; row++ {
			for _, f := range band {
				if f == blank {
					b.WriteString(strings.Repeat(" ", 3*stickerWidth))
					continue
				}
				for col := 0; col < 3; col++ {
					b.WriteString(sticker(facelets[f][row*3+col], opts))
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func sticker(color gocube.Color, opts Options) string {
	if !opts.Color {
		return color.String() + " "
	}
	bg, ok := stickerColors[color]
	if !ok {
		return unknownSticker.Render("??")
	}
	return lipgloss.NewStyle().Background(bg).Render("  ")
}
