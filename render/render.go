// Package render turns (movie id, rating) sequences into text.
//
// It is a pure presentation layer: functions take an iter.Seq2, such as
// Chain.All, and never touch the chain itself.
package render

import (
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Format renders every pair as "id:rating; ", e.g. "1:5.0; 2:4.5; ".
// Ratings always carry a decimal point. An empty sequence yields "".
func Format(seq iter.Seq2[int, float64]) string {
	var sb strings.Builder
	for id, rating := range seq {
		sb.WriteString(strconv.Itoa(id))
		sb.WriteByte(':')
		sb.WriteString(FormatRating(rating))
		sb.WriteString("; ")
	}
	return sb.String()
}

// FormatRating renders a rating in its shortest exact decimal form with at
// least one fractional digit: 5 -> "5.0", 4.25 -> "4.25".
func FormatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

var ratingStyle = cellStyle.Align(lipgloss.Right)

// Table renders the pairs as a bordered two-column table with MOVIE and
// RATING headers.
func Table(seq iter.Seq2[int, float64]) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MOVIE", "RATING").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return ratingStyle
			default:
				return cellStyle
			}
		})

	for id, rating := range seq {
		t.Row(strconv.Itoa(id), FormatRating(rating))
	}
	return t.String()
}
