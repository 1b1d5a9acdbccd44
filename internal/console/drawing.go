package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gamehub/internal/entity"
)

// RenderBoard - draws the 3x3 grid with a blank for every empty cell.
func RenderBoard(board *entity.Board) string {
	cells := board.Cells()

	var sb strings.Builder
	sb.WriteString("     |     |     \n")
	for row := range 3 {
		a, b, c := cells[row*3], cells[row*3+1], cells[row*3+2]
		fmt.Fprintf(&sb, "  %s  |  %s  |  %s  \n", a, b, c)
		if row < 2 {
			sb.WriteString("_____|_____|_____\n")
			sb.WriteString("     |     |     \n")
		}
	}
	sb.WriteString("     |     |     \n")

	return sb.String()
}

// RenderGallows - draws the hangman figure, one more limb for every life lost out of six.
func RenderGallows(lives int) string {
	limb := func(missing bool, glyph string) string {
		if missing {
			return glyph
		}
		return ""
	}
	pad := func(missing bool, glyph string) string {
		if missing {
			return glyph
		}
		return " "
	}

	var sb strings.Builder
	sb.WriteString("  _______\n")
	sb.WriteString("  |     |\n")
	sb.WriteString("  |     " + limb(lives < 6, "O") + "\n")
	sb.WriteString("  |    " + pad(lives < 4, "/") + limb(lives < 5, "|") + limb(lives < 3, "\\") + "\n")
	sb.WriteString("  |    " + pad(lives < 2, "/") + " " + limb(lives < 1, "\\") + "\n")
	sb.WriteString("__|__\n")

	return sb.String()
}

func (that *Screen) Board(board *entity.Board) {
	fmt.Fprintln(that.out)
	fmt.Fprint(that.out, that.style.Paint(ColorBlue, indent(RenderBoard(board))))
	fmt.Fprintln(that.out)
}

func (that *Screen) Gallows(lives int) {
	fmt.Fprintln(that.out)
	fmt.Fprint(that.out, that.style.Paint(ColorRed, indent(RenderGallows(lives))))
}
