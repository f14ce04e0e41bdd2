package asset

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Art is a small colour pixel grid. tcell.ColorDefault marks a transparent pixel.
type Art struct {
	Width  int
	Height int
	Pixels []tcell.Color // [y*Width + x]
}

// At returns the pixel at (x, y), transparent when out of range.
func (a *Art) At(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return tcell.ColorDefault
	}
	return a.Pixels[y*a.Width+x]
}

// palette maps art characters to colours. Space and '.' are transparent.
var palette = map[rune]tcell.Color{
	'W': tcell.ColorWhite,
	'R': tcell.NewRGBColor(0xFF, 0x00, 0x00),
	'r': tcell.NewRGBColor(0x99, 0x11, 0x11),
	'G': tcell.NewRGBColor(0x00, 0xFF, 0x00),
	'B': tcell.NewRGBColor(0x90, 0xD5, 0xFF),
	'b': tcell.NewRGBColor(0x20, 0x60, 0xC0),
	'Y': tcell.NewRGBColor(0xFF, 0xD0, 0x30),
	'O': tcell.NewRGBColor(0xFF, 0x80, 0x20),
	'S': tcell.NewRGBColor(0xA0, 0xA0, 0xB0),
	'K': tcell.NewRGBColor(0x40, 0x40, 0x50),
	'P': tcell.NewRGBColor(0xFF, 0x60, 0xA0),
}

// ErrEmptyArt is returned when the art source has no pixel rows.
var ErrEmptyArt = errors.New("art has no rows")

// ParseArt reads an art grid. Lines starting with '#' are comments, rows
// shorter than the widest one are padded with transparent pixels.
func ParseArt(src string) (Art, error) {
	var rows [][]rune
	width := 0

	sc := bufio.NewScanner(strings.NewReader(src))
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		row := []rune(line)
		for _, ch := range row {
			if ch == ' ' || ch == '.' {
				continue
			}
			if _, ok := palette[ch]; !ok {
				return Art{}, fmt.Errorf("line %d: unknown colour %q", lineNo, ch)
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if err := sc.Err(); err != nil {
		return Art{}, fmt.Errorf("failed to scan art: %w", err)
	}

	// Trim blank rows at both ends.
	for len(rows) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return Art{}, ErrEmptyArt
	}

	art := Art{Width: width, Height: len(rows), Pixels: make([]tcell.Color, width*len(rows))}
	for y, row := range rows {
		for x, ch := range row {
			if c, ok := palette[ch]; ok {
				art.Pixels[y*width+x] = c
			}
		}
	}
	return art, nil
}
