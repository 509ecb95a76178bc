// Package calendar derives month-view display grids from a meeting listing.
// The builder is pure: the same (year, month, events, today) inputs always
// produce the same grid.
package calendar

import (
	"time"
	"unicode/utf8"
)

// maxLabelRunes bounds event labels for display inside a day cell.
const maxLabelRunes = 14

// Event is a dated label attached to a grid cell.
type Event struct {
	Date  string
	Label string
}

// Cell is one entry of a month grid. Padding cells carry a zero Day and an
// empty Date and are not interactive.
type Cell struct {
	Day     int
	Date    string
	IsToday bool
	Events  []string
}

// Blank reports whether the cell is a padding cell outside the month.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// BuildGrid lays out the given month as a whole number of Monday-first
// weeks. Leading and trailing cells outside the month are blank; in-month
// cells carry their ISO date, a today marker computed against the supplied
// reference date, and the labels of all events dated on that cell.
func BuildGrid(year int, month time.Month, events []Event, today time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first: in Go, Monday == 1 and Sunday == 0.
	offset := (int(first.Weekday()) + 6) % 7
	total := offset + daysInMonth
	cellCount := ((total + 6) / 7) * 7

	labelsByDate := make(map[string][]string, len(events))
	for _, event := range events {
		labelsByDate[event.Date] = append(labelsByDate[event.Date], truncateLabel(event.Label))
	}

	todayDate := today.Format("2006-01-02")

	grid := make([]Cell, 0, cellCount)
	for i := 0; i < cellCount; i++ {
		day := i - offset + 1
		if day < 1 || day > daysInMonth {
			grid = append(grid, Cell{})
			continue
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		grid = append(grid, Cell{
			Day:     day,
			Date:    date,
			IsToday: date == todayDate,
			Events:  labelsByDate[date],
		})
	}

	return grid
}

func truncateLabel(label string) string {
	if utf8.RuneCountInString(label) <= maxLabelRunes {
		return label
	}
	runes := []rune(label)
	return string(runes[:maxLabelRunes-1]) + "…"
}
