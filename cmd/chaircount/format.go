package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/iNinad/chair-counting-tool/pkg/tally"
	"github.com/iNinad/chair-counting-tool/pkg/validation"
)

const reportWidth = 50

// printSurveyReport renders the per-room and apartment-wide chair counts in
// the layout of the legacy survey tool: a banner, one block per room, then
// the overall counts.
func printSurveyReport(w io.Writer, s *tally.Survey, sortOrder string) {
	rooms := s.Rooms
	if sortOrder == floorplan.SortName {
		rooms = make([]tally.RoomTally, len(s.Rooms))
		copy(rooms, s.Rooms)
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].Room < rooms[j].Room })
	}

	banner := strings.Repeat("*", reportWidth)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, center("Results", reportWidth, '-'))

	for _, rt := range rooms {
		fmt.Fprintf(w, "\nRoom: %s\n", rt.Room)
		fmt.Fprintln(w, countsLine(rt.Counts))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, center("Overall Counts", reportWidth, '-'))
	fmt.Fprintln(w)
	fmt.Fprintln(w, countsLine(s.Total))
	fmt.Fprintln(w, banner)
}

// countsLine formats one tally in legend order, e.g. "W: 2, P: 1, S: 0, C: 0".
func countsLine(t tally.Tally) string {
	parts := make([]string, 0, len(tally.Types))
	for _, ct := range tally.Types {
		parts = append(parts, fmt.Sprintf("%s: %d", ct, t[ct]))
	}
	return strings.Join(parts, ", ")
}

// center pads s to width with fill on both sides, extra fill going right.
func center(s string, width int, fill rune) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			printResultDetail(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warn.Level, warn.Message)
			printResultDetail(w, warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResultDetail(w io.Writer, res validation.Result) {
	switch {
	case res.Room != "":
		fmt.Fprintf(w, "    -> room %q (line %d)\n", res.Room, res.Line)
	case res.Line > 0:
		fmt.Fprintf(w, "    -> line %d\n", res.Line)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

// printRoomList lists room sections in plan order with their marker lines.
func printRoomList(w io.Writer, p *floorplan.Plan) {
	for _, room := range p.Rooms {
		fmt.Fprintf(w, "%4d  %s\n", room.Line, room.Name)
	}
	fmt.Fprintf(w, "%d room sections\n", len(p.Rooms))
}
