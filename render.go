package asteroidfield

import (
	"strconv"
	"strings"
)

// Render formats a grid for display, one row per line with space-separated
// glyphs: '.' empty, '#' wall, 'A' asteroid, 'P' probe, 'D' dock. The glyph
// mapping is a display convention only, not part of the state model.
func Render(g Grid) string {
	var b strings.Builder
	for _, row := range g {
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(glyph(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c Cell) string {
	switch c {
	case Empty:
		return "."
	case Wall:
		return "#"
	case Asteroid:
		return "A"
	case Probe:
		return "P"
	case Dock:
		return "D"
	default:
		return strconv.Itoa(int(c))
	}
}
