package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/models"
)

const (
	clockLayout = "3:04 PM"

	// room for the "11:30 PM │" label in front of each drink bar
	drinkGutter = 11

	// room for the "0.120 ┤" label in front of each chart row
	bacGutter = 7
)

// RenderDrinkChart draws one bar per drink, sized by its fraction of a
// standard drink. Drinks due before now are drawn as drunk.
func RenderDrinkChart(schedule []models.DrinkEvent, now time.Time, width int) string {
	if len(schedule) == 0 {
		return mutedStyle.Render("No drinks scheduled.")
	}

	barWidth := width - drinkGutter - 6
	if barWidth < 1 {
		barWidth = 1
	}

	var b strings.Builder
	for i, event := range schedule {
		length := int(event.Drinks*float64(barWidth) + 0.5)
		if length < 1 {
			length = 1
		}

		style := pendingStyle
		if event.Time.Before(now) {
			style = drankStyle
		}

		fmt.Fprintf(&b, "%8s │%s %.2f",
			event.Time.Format(clockLayout),
			style.Render(strings.Repeat("█", length)),
			event.Drinks,
		)
		if i < len(schedule)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderBACChart plots the timeline as height rows by at most width columns,
// marking the column of the current sample.
func RenderBACChart(timeline []models.BACSample, current *models.BACSample, height, width int) string {
	if len(timeline) == 0 {
		return mutedStyle.Render("No BAC samples.")
	}
	if height < 2 {
		height = 2
	}

	columns := width - bacGutter
	if columns < 1 {
		columns = 1
	}
	if columns > len(timeline) {
		columns = len(timeline)
	}

	top := 0.0
	if peak, ok := bac.PeakSample(timeline); ok {
		top = peak.BAC
	}
	if top <= 0 {
		top = bac.DefaultBallmerPeakBAC
	}

	nowColumn := -1
	points := make([]int, columns)
	for c := 0; c < columns; c++ {
		sample := timeline[c*len(timeline)/columns]
		level := sample.BAC / top
		if level < 0 {
			level = 0
		}
		points[c] = int(level*float64(height-1) + 0.5)

		if current != nil && !sample.Time.After(current.Time) {
			nowColumn = c
		}
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		label := "      "
		switch row {
		case height - 1:
			label = fmt.Sprintf("%.3f ", top)
		case 0:
			label = fmt.Sprintf("%.3f ", 0.0)
		}
		b.WriteString(mutedStyle.Render(label + "┤"))

		for c := 0; c < columns; c++ {
			switch {
			case points[c] == row && c == nowColumn:
				b.WriteString(nowStyle.Render("●"))
			case points[c] == row:
				b.WriteString(pointStyle.Render("•"))
			case c == nowColumn:
				b.WriteString(mutedStyle.Render("┊"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", bacGutter-1) + "└" + strings.Repeat("─", columns) + "\n")

	first := timeline[0].Time.Format(clockLayout)
	last := timeline[len(timeline)-1].Time.Format(clockLayout)
	gap := columns - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", bacGutter) + first + strings.Repeat(" ", gap) + last)

	return b.String()
}
