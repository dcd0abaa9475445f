package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	axisLeft = iota
	axisRight
)

const (
	lineRune  = '·'
	timeLabel = "Jan 02 15:04"
)

type point struct {
	X time.Time
	Y float64
}

type series struct {
	Name   string
	Marker rune
	Style  lipgloss.Style
	Axis   int
	Points []point
}

type cell struct {
	r      rune
	series int
}

// canvas is a grid of runes, each remembering the series that drew it.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' ', series: -1}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, s int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, series: s}
}

func (c *canvas) empty(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h && c.cells[y][x].series < 0
}

func (c *canvas) row(y int, all []series) string {
	var b strings.Builder
	for _, cl := range c.cells[y] {
		if cl.series < 0 {
			b.WriteRune(cl.r)
			continue
		}
		b.WriteString(all[cl.series].Style.Render(string(cl.r)))
	}
	return b.String()
}

// lineChart plots time series against one or two vertical axes. Series on the
// right axis get their own scale.
type lineChart struct {
	Width      int
	Height     int
	LeftLabel  string
	RightLabel string
	Series     []series
}

func (lc lineChart) axisScale(axis int) (linearScale, bool) {
	var values []float64
	for _, s := range lc.Series {
		if s.Axis != axis {
			continue
		}
		for _, p := range s.Points {
			values = append(values, p.Y)
		}
	}
	return newScale(values...), len(values) > 0
}

func (lc lineChart) timeScale() (linearScale, time.Time, time.Time, bool) {
	var xs []float64
	var first, last time.Time
	for _, s := range lc.Series {
		for _, p := range s.Points {
			xs = append(xs, float64(p.X.Unix()))
			if first.IsZero() || p.X.Before(first) {
				first = p.X
			}
			if last.IsZero() || p.X.After(last) {
				last = p.X
			}
		}
	}
	return newScale(xs...), first, last, len(xs) > 0
}

func (lc lineChart) Render() string {
	xScale, first, last, ok := lc.timeScale()
	if !ok {
		return mutedStyle.Render("no plottable data")
	}

	left, hasLeft := lc.axisScale(axisLeft)
	right, hasRight := lc.axisScale(axisRight)

	leftTicks := tickLabels(left, lc.Height, hasLeft)
	rightTicks := tickLabels(right, lc.Height, hasRight)
	leftWidth := maxWidth(leftTicks)
	rightWidth := maxWidth(rightTicks)

	plotWidth := lc.Width - leftWidth - 2
	if hasRight {
		plotWidth -= rightWidth + 2
	}
	plotWidth = max(plotWidth, 10)

	c := newCanvas(plotWidth, lc.Height)
	for i, s := range lc.Series {
		scale := left
		if s.Axis == axisRight {
			scale = right
		}
		lc.draw(c, i, s, xScale, scale)
	}

	var b strings.Builder

	if lc.LeftLabel != "" || lc.RightLabel != "" {
		header := lc.LeftLabel
		if hasRight {
			total := leftWidth + 2 + plotWidth + 2 + rightWidth
			header = padRight(header, total-lipgloss.Width(lc.RightLabel)-1) + " " + lc.RightLabel
		}
		b.WriteString(axisStyle.Render(header))
		b.WriteString("\n")
	}

	for y := 0; y < lc.Height; y++ {
		b.WriteString(axisStyle.Render(padLeft(leftTicks[y], leftWidth) + " ┤"))
		b.WriteString(c.row(y, lc.Series))
		if hasRight {
			b.WriteString(axisStyle.Render("├ " + rightTicks[y]))
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", leftWidth+1) + "└" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", leftWidth+2) + timeAxis(first, last, plotWidth)))
	b.WriteString("\n")
	b.WriteString(legend(lc.Series))

	return b.String()
}

func (lc lineChart) draw(c *canvas, idx int, s series, xScale, yScale linearScale) {
	type cellPos struct{ x, y int }

	positions := make([]cellPos, 0, len(s.Points))
	for _, p := range s.Points {
		positions = append(positions, cellPos{
			x: xScale.pos(float64(p.X.Unix()), c.w),
			y: c.h - 1 - yScale.pos(p.Y, c.h),
		})
	}

	for i := 1; i < len(positions); i++ {
		a, b := positions[i-1], positions[i]
		if b.x <= a.x+1 {
			continue
		}
		for x := a.x + 1; x < b.x; x++ {
			y := a.y + int(float64(b.y-a.y)*float64(x-a.x)/float64(b.x-a.x)+0.5*sign(b.y-a.y))
			if c.empty(x, y) {
				c.set(x, y, lineRune, idx)
			}
		}
	}

	for _, p := range positions {
		c.set(p.x, p.y, s.Marker, idx)
	}
}

func sign(v int) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// tickLabels labels the top, middle and bottom rows.
func tickLabels(s linearScale, height int, show bool) []string {
	labels := make([]string, height)
	if !show {
		return labels
	}
	for _, y := range []int{0, height / 2, height - 1} {
		labels[y] = formatTick(s.at(height-1-y, height))
	}
	return labels
}

func timeAxis(first, last time.Time, width int) string {
	start := first.Format(timeLabel)
	if !last.After(first) {
		return padLeft(start, (width+len(start))/2)
	}
	end := last.Format(timeLabel)
	gap := width - len(start) - len(end)
	if gap < 1 {
		return start
	}
	return start + strings.Repeat(" ", gap) + end
}

func legend(all []series) string {
	parts := make([]string, 0, len(all))
	for _, s := range all {
		parts = append(parts, s.Style.Render(string(s.Marker)+" "+s.Name))
	}
	return strings.Join(parts, "   ")
}

func maxWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
