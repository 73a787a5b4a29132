package img2glyph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	ESC = "\u001b"

	// Reset clears all character attributes.
	Reset = ESC + "[0m"

	sgrForeground = 38
	sgrBackground = 48
)

// ErrInvalidCodepoint is returned when a cell holds a rune that has no
// UTF-8 encoding.
var ErrInvalidCodepoint = errors.New("invalid codepoint")

// Encode writes cells as ANSI text, one line per row. A color escape is
// only written when the color differs from the cell to the left; the first
// cell of every row always sets both colors. Each row ends with a reset
// and a newline. A cell with an invalid rune stops the output before any
// of its escapes are written.
func Encode(w io.Writer, cells [][]CharCell, mode ColorMode) error {
	bw := bufio.NewWriter(w)
	var buf [utf8.UTFMax]byte

	for _, row := range cells {
		var last CharCell
		for x, cell := range row {
			if !utf8.ValidRune(cell.Rune) {
				bw.Flush()
				return fmt.Errorf("cell %d: %w: 0x%08x", x, ErrInvalidCodepoint, cell.Rune)
			}
			if x == 0 || cell.BG != last.BG {
				bw.WriteString(ColorEscape(cell.BG, mode, true))
			}
			if x == 0 || cell.FG != last.FG {
				bw.WriteString(ColorEscape(cell.FG, mode, false))
			}
			n := utf8.EncodeRune(buf[:], cell.Rune)
			bw.Write(buf[:n])
			last = cell
		}
		bw.WriteString(Reset)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// EncodeToString is Encode into a string.
func EncodeToString(cells [][]CharCell, mode ColorMode) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, cells, mode); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// StripANSI removes SGR escape sequences from s, leaving the glyphs and
// line breaks.
func StripANSI(s string) string {
	var sb strings.Builder
	for len(s) > 0 {
		i := strings.Index(s, ESC+"[")
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		s = s[i+2:]
		end := strings.IndexByte(s, 'm')
		if end < 0 {
			break
		}
		s = s[end+1:]
	}
	return sb.String()
}
