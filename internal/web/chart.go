package web

import (
	"fmt"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"
	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
)

// SVG geometry, in pixels.
const (
	chartWidth  = 760
	labelWidth  = 220
	plotWidth   = chartWidth - labelWidth - 20
	rowHeight   = 30
	barHeight   = 20
	axisPadding = 24
)

var ownerPalette = []string{
	"#58a6ff", "#3fb950", "#bc8cff", "#d29922",
	"#76e3ea", "#f0883e", "#f778ba", "#f85149",
}

type chart struct {
	Width, Height int
	AxisY, LabelY int
	Bars          []chartBar
	Ticks         []chartTick
}

type chartBar struct {
	Label, Tooltip, Color string
	X, Y, W, H, TextY     int
}

type chartTick struct {
	X     int
	Label string
}

// buildChart lays the plan out as a horizontal timeline, first item on
// top, one color per owner. It returns nil for an empty plan.
func buildChart(plan agenda.Plan) *chart {
	if len(plan.Rows) == 0 || plan.Total == 0 {
		return nil
	}

	c := &chart{
		Width: chartWidth,
		AxisY: len(plan.Rows) * rowHeight,
	}
	c.LabelY = c.AxisY + 16
	c.Height = c.AxisY + axisPadding

	colors := make(map[string]string)
	xOf := func(offsetMin int) int {
		return labelWidth + plotWidth*offsetMin/plan.Total
	}

	for i, r := range plan.Rows {
		color, ok := colors[r.Owner]
		if !ok {
			color = ownerPalette[len(colors)%len(ownerPalette)]
			colors[r.Owner] = color
		}

		offset := int(r.Start.Sub(plan.Start).Minutes())
		x := xOf(offset)
		w := xOf(offset+r.DurationMin) - x
		if w < 2 {
			w = 2
		}

		y := i * rowHeight
		c.Bars = append(c.Bars, chartBar{
			Label: r.Topic,
			Tooltip: fmt.Sprintf("%s · %s · %s–%s · %d min", r.Topic, r.Owner,
				timeutil.FormatClock(r.Start), timeutil.FormatClock(r.End), r.DurationMin),
			Color: color,
			X:     x,
			Y:     y + (rowHeight-barHeight)/2,
			W:     w,
			H:     barHeight,
			TextY: y + rowHeight/2 + 5,
		})
		c.Ticks = append(c.Ticks, chartTick{X: x, Label: timeutil.FormatClock(r.Start)})
	}
	c.Ticks = append(c.Ticks, chartTick{X: xOf(plan.Total), Label: timeutil.FormatClock(plan.End)})

	return c
}
