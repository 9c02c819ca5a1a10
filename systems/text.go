package systems

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	x := (screen.Bounds().Dx() - textWidth(face, s)) / 2
	text.Draw(screen, s, face, x, y, c)
}

// wrapText splits s into lines no wider than maxW. Explicit newlines are
// kept and words longer than a line are left whole.
func wrapText(face font.Face, s string, maxW int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if textWidth(face, candidate) > maxW {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
