package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	overrideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var weekdayShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func writeDay(w io.Writer, dp domain.DayPair) {
	mark := ""
	if dp.Override {
		mark = " (override)"
	}
	fmt.Fprintf(w, "Duty on %s (%s): %s%s\n",
		calendar.FormatDisplay(dp.Date), weekdayShort[dp.Date.Weekday()], dp.Pair.String(), mark)
}

func writeSchedule(w io.Writer, dp domain.DayPair, subjects []string) {
	if len(subjects) == 0 {
		fmt.Fprintln(w, "Schedule: not set.")
		return
	}
	fmt.Fprintf(w, "Schedule for %s:\n", calendar.FormatDisplay(dp.Date))
	for i, s := range subjects {
		fmt.Fprintf(w, "%d. %s\n", i+1, s)
	}
}

func writeUpcoming(w io.Writer, days []domain.DayPair) {
	rows := make([][]string, 0, len(days))
	for _, dp := range days {
		note := ""
		if dp.Override {
			note = "override"
		}
		rows = append(rows, []string{
			calendar.FormatDisplay(dp.Date),
			weekdayShort[dp.Date.Weekday()],
			dp.Pair[0],
			dp.Pair[1],
			note,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(days) && days[row].Override {
				return overrideStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("DATE", "DAY", "FIRST", "SECOND", "NOTE").
		Rows(rows...)
	fmt.Fprintln(w, t)
}

func writeDebtors(w io.Writer, debtors []domain.Debtor) {
	if len(debtors) == 0 {
		fmt.Fprintln(w, "No debtors.")
		return
	}
	rows := make([][]string, 0, len(debtors))
	for _, d := range debtors {
		rows = append(rows, []string{strconv.Itoa(d.Index), d.Name})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("INDEX", "NAME").
		Rows(rows...)
	fmt.Fprintln(w, t)
}
