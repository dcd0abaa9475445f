package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

const missingValue = "n/a"

var negativeStyle = lipgloss.NewStyle().Foreground(colorMuted)

type bar struct {
	Label string
	Value *float64
	Unit  string
	Style lipgloss.Style
}

// barChart draws horizontal ntcharts bars sized by magnitude, followed by
// the exact values. Missing values get no bar and are listed as n/a.
type barChart struct {
	Width int
	Label string
	Bars  []bar
}

func (bc barChart) Render() string {
	var out strings.Builder
	if bc.Label != "" {
		out.WriteString(axisStyle.Render(bc.Label))
		out.WriteString("\n")
	}

	data := make([]barchart.BarData, 0, len(bc.Bars))
	plottable := false
	for _, b := range bc.Bars {
		value, style := 0.0, b.Style
		if b.Value != nil {
			value = math.Abs(*b.Value)
			plottable = plottable || value > 0
			if *b.Value < 0 {
				style = negativeStyle
			}
		}
		data = append(data, barchart.BarData{
			Label:  b.Label,
			Values: []barchart.BarValue{{Name: b.Label, Value: value, Style: style}},
		})
	}

	if plottable {
		chart := barchart.New(bc.Width, 2*len(bc.Bars), barchart.WithHorizontalBars())
		chart.PushAll(data)
		chart.Draw()
		out.WriteString(chart.View())
		out.WriteString("\n\n")
	}

	out.WriteString(bc.values())

	return out.String()
}

// values lists each bar's label and formatted value, one per line.
func (bc barChart) values() string {
	labels := make([]string, 0, len(bc.Bars))
	for _, b := range bc.Bars {
		labels = append(labels, b.Label)
	}
	labelWidth := maxWidth(labels)

	lines := make([]string, 0, len(bc.Bars))
	for _, b := range bc.Bars {
		value := formatValue(b.Value, b.Unit)
		if b.Value == nil {
			value = mutedStyle.Render(value)
		} else {
			value = b.Style.Render(value)
		}
		lines = append(lines, axisStyle.Render(padRight(b.Label, labelWidth)+"  ")+value)
	}
	return strings.Join(lines, "\n")
}

func formatValue(v *float64, unit string) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}
