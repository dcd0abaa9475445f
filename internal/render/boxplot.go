package render

import (
	"fmt"
	"strings"
)

const (
	boxRune      = '█'
	whiskerRune  = '─'
	capRune      = '│'
	medianRune   = '┃'
	outlierRune  = '•'
	boxStatsCols = 16
)

type boxGroup struct {
	Label  string
	Values []float64
}

// boxPlot draws one horizontal box-and-whisker row per group on a shared
// value axis.
type boxPlot struct {
	Width      int
	ValueLabel string
	Groups     []boxGroup
}

func (bp boxPlot) Render() string {
	var all []float64
	labels := make([]string, 0, len(bp.Groups))
	for _, g := range bp.Groups {
		all = append(all, g.Values...)
		labels = append(labels, g.Label)
	}
	if len(all) == 0 {
		return mutedStyle.Render("no plottable data")
	}

	scale := newScale(all...)
	labelWidth := maxWidth(labels)
	trackWidth := max(bp.Width-labelWidth-2-boxStatsCols, 10)

	var b strings.Builder
	for _, g := range bp.Groups {
		b.WriteString(axisStyle.Render(padRight(g.Label, labelWidth) + " ┤"))
		if len(g.Values) == 0 {
			b.WriteString(strings.Repeat(" ", trackWidth))
			b.WriteString("\n")
			continue
		}
		st := newBoxStats(g.Values)
		b.WriteString(boxStyle.Render(boxTrack(st, scale, trackWidth)))
		b.WriteString(axisStyle.Render(fmt.Sprintf(" med %5.1f n=%-2d", st.Median, st.N)))
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelWidth+1) + "└" + strings.Repeat("─", trackWidth)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelWidth+2) + valueAxis(scale, trackWidth)))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelWidth+2) + centered(bp.ValueLabel, trackWidth)))

	return b.String()
}

func boxTrack(st boxStats, scale linearScale, width int) string {
	track := []rune(strings.Repeat(" ", width))

	lo := scale.pos(st.LowWhisker, width)
	q1 := scale.pos(st.Q1, width)
	med := scale.pos(st.Median, width)
	q3 := scale.pos(st.Q3, width)
	hi := scale.pos(st.HighWhisker, width)

	for x := lo; x <= hi; x++ {
		track[x] = whiskerRune
	}
	track[lo] = capRune
	track[hi] = capRune
	for x := q1; x <= q3; x++ {
		track[x] = boxRune
	}
	track[med] = medianRune
	for _, o := range st.Outliers {
		track[scale.pos(o, width)] = outlierRune
	}

	return string(track)
}

func valueAxis(scale linearScale, width int) string {
	start := formatTick(scale.min)
	mid := formatTick(scale.at(width/2, width))
	end := formatTick(scale.max)

	gap := width - len(start) - len(mid) - len(end)
	if gap < 2 {
		return start + strings.Repeat(" ", max(width-len(start)-len(end), 1)) + end
	}
	leftGap := width/2 - len(start) - len(mid)/2
	leftGap = max(leftGap, 1)
	rightGap := max(width-len(start)-leftGap-len(mid)-len(end), 1)
	return start + strings.Repeat(" ", leftGap) + mid + strings.Repeat(" ", rightGap) + end
}

func centered(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s
}
