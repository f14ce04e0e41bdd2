package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceshield/internal/asset"
)

// Half-block characters used to pack two pixels into one cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH flow.
const maxChunkSize = 1400

// cell is what one terminal cell shows: the top and bottom pixel colours.
type cell struct {
	top, bottom tcell.Color
}

// Canvas is a truecolor pixel buffer with 2x vertical resolution using
// half-block characters. tcell.ColorDefault is an empty pixel.
// Only cells that changed since the previous Render are written.
type Canvas struct {
	cols   int // Terminal columns, equal to the pixel width
	rows   int // Terminal rows
	height int // rows * 2
	pixels []tcell.Color
	prev   []cell
	stale  []bool // Cells covered by text since the last Render
	full   bool   // Next Render rewrites every cell

	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewCanvas creates a canvas for a cols x rows terminal area.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the buffers when the terminal area changed.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return
	}
	c.cols = cols
	c.rows = rows
	c.height = rows * 2
	c.pixels = make([]tcell.Color, cols*c.height)
	c.prev = make([]cell, cols*rows)
	c.stale = make([]bool, cols*rows)
	c.full = true
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.full = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.full = true
}

// MarkTextDirty makes the next Render rewrite n cells starting at the
// 1-based canvas position, so text drawn over the canvas does not linger.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	if row < 0 || row >= c.rows {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.cols); x++ {
		c.stale[row*c.cols+x] = true
	}
}

// Width returns the pixel width.
func (c *Canvas) Width() int { return c.cols }

// Height returns the pixel height, twice the row count.
func (c *Canvas) Height() int { return c.height }

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// Clear empties every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the pixel colour, ColorDefault when empty or out of range.
func (c *Canvas) At(x, y int) tcell.Color {
	if x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return tcell.ColorDefault
	}
	return c.pixels[y*c.cols+x]
}

// Set paints one pixel.
func (c *Canvas) Set(x, y int, col tcell.Color) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.height {
		c.pixels[y*c.cols+x] = col
	}
}

// Blend paints col over the existing pixel with the given opacity.
// Empty pixels blend against black.
func (c *Canvas) Blend(x, y int, col tcell.Color, alpha float64) {
	if alpha >= 1 {
		c.Set(x, y, col)
		return
	}
	if alpha <= 0 || x < 0 || x >= c.cols || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.cols+x] = Mix(c.pixels[y*c.cols+x], col, alpha)
}

// Mix returns over blended onto under.
func Mix(under, over tcell.Color, alpha float64) tcell.Color {
	var ur, ug, ub int32
	if under != tcell.ColorDefault {
		ur, ug, ub = under.RGB()
	}
	or, og, ob := over.RGB()
	mix := func(a, b int32) int32 {
		return int32(math.Round(float64(a)*(1-alpha) + float64(b)*alpha))
	}
	return tcell.NewRGBColor(mix(ur, or), mix(ug, og), mix(ub, ob))
}

// FillCircle fills a circle in pixel coordinates. Circles smaller than a
// pixel still cover the pixel under their center.
func (c *Canvas) FillCircle(cx, cy, r float64, col tcell.Color, alpha float64) {
	if r < 0.5 {
		c.Blend(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
		return
	}
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.Blend(x, y, col, alpha)
			}
		}
	}
}

// DrawArt draws a sprite centered at (cx, cy) so that its longest side spans
// size pixels. Pixels are sampled nearest-neighbour; transparent ones are skipped.
func (c *Canvas) DrawArt(a *asset.Art, cx, cy, size, alpha float64) {
	if a == nil || a.Width == 0 || a.Height == 0 || size <= 0 {
		return
	}
	scale := size / float64(max(a.Width, a.Height))
	w := float64(a.Width) * scale
	h := float64(a.Height) * scale
	left, top := cx-w/2, cy-h/2

	for y := int(math.Floor(top)); y < int(math.Ceil(top+h)); y++ {
		ay := int((float64(y) + 0.5 - top) / scale)
		for x := int(math.Floor(left)); x < int(math.Ceil(left+w)); x++ {
			ax := int((float64(x) + 0.5 - left) / scale)
			if col := a.At(ax, ay); col != tcell.ColorDefault {
				c.Blend(x, y, col, alpha)
			}
		}
	}
}

// Render writes the changed cells to w.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var fg, bg tcell.Color
	styled := false
	cursorAt := -1 // Cell index the cursor is on, -1 when unknown

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			cur := cell{
				top:    c.pixels[row*2*c.cols+col],
				bottom: c.pixels[(row*2+1)*c.cols+col],
			}
			if !c.full && !c.stale[i] && cur == c.prev[i] {
				continue
			}
			c.prev[i] = cur
			c.stale[i] = false

			if cursorAt != i {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}

			ch, wantFg, wantBg := glyph(cur)
			if ch == ' ' {
				if styled {
					c.renderBuf.WriteString("\033[0m")
					styled = false
				}
			} else {
				if !styled || wantFg != fg {
					c.writeColor(38, wantFg)
					fg = wantFg
				}
				if !styled || wantBg != bg {
					if wantBg == tcell.ColorDefault {
						c.renderBuf.WriteString("\033[49m")
					} else {
						c.writeColor(48, wantBg)
					}
					bg = wantBg
				}
				styled = true
			}
			c.renderBuf.WriteRune(ch)
			cursorAt = i + 1
			if col == c.cols-1 {
				cursorAt = -1
			}
		}
	}
	if styled {
		c.renderBuf.WriteString("\033[0m")
	}
	c.full = false

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// glyph picks the character and colours showing both pixels of a cell.
func glyph(c cell) (ch rune, fg, bg tcell.Color) {
	top, bottom := c.top != tcell.ColorDefault, c.bottom != tcell.ColorDefault
	switch {
	case top && bottom && c.top == c.bottom:
		return BlockFull, c.top, tcell.ColorDefault
	case top && bottom:
		return BlockUpperHalf, c.top, c.bottom
	case top:
		return BlockUpperHalf, c.top, tcell.ColorDefault
	case bottom:
		return BlockLowerHalf, c.bottom, tcell.ColorDefault
	}
	return ' ', tcell.ColorDefault, tcell.ColorDefault
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a 24-bit SGR colour; layer is 38 for fg or 48 for bg.
func (c *Canvas) writeColor(layer int, col tcell.Color) {
	r, g, b := col.RGB()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(b), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder frames the canvas when it is centered in a larger terminal.
func (c *Canvas) RenderBorder(w io.Writer) {
	if c.offsetCol < 1 && c.offsetRow < 1 {
		return
	}
	left, right := c.offsetCol, c.offsetCol+c.cols+1
	top, bottom := c.offsetRow, c.offsetRow+c.rows+1
	line := strings.Repeat("─", c.cols)

	var buf strings.Builder
	if c.offsetRow >= 1 {
		if c.offsetCol >= 1 {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(left) + "H┌" + line + "┐")
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(left) + "H└" + line + "┘")
		} else {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";1H" + line)
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";1H" + line)
		}
	}
	if c.offsetCol >= 1 {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			r := strconv.Itoa(row)
			buf.WriteString("\033[" + r + ";" + strconv.Itoa(left) + "H│\033[" + r + ";" + strconv.Itoa(right) + "H│")
		}
	}
	io.WriteString(w, buf.String())
}
