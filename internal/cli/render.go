package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubesolver/internal/cube"
)

// Facelet styles keyed by sticker color. Backgrounds approximate the
// standard plastic colors; the letter stays visible on dumb terminals.
var faceletStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

func renderFacelet(c cube.Color) string {
	style, ok := faceletStyles[c]
	if !ok {
		return " ? "
	}
	return style.Render(" " + c.String() + " ")
}

func renderFaceRow(c cube.Cube, face cube.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(renderFacelet(c.Facelets[face][row*3+col]))
	}
	return b.String()
}

// renderCube returns a colored net of the cube: U on top, then L F R B
// side by side, then D. Each facelet is a 3-wide colored cell.
func renderCube(c cube.Cube) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(c, cube.U, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			b.WriteString(renderFaceRow(c, face, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderFaceRow(c, cube.D, row))
		b.WriteString("\n")
	}

	return b.String()
}
