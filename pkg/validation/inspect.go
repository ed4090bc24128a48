package validation

import (
	"fmt"
	"strings"

	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
	"github.com/iNinad/chair-counting-tool/pkg/tally"
)

// Inspect reports non-fatal findings about a parsed, counted floor plan.
// Fatal structure problems never reach it; the parser aborts on those first.
func Inspect(plan *floorplan.Plan, survey *tally.Survey) *Report {
	r := NewReport()

	inspectRoomNames(plan, r)
	inspectChairCounts(survey, r)

	r.AddInfo(Result{
		Level:   LevelStructure,
		Message: fmt.Sprintf("%d room sections, %d chairs counted", len(plan.Rooms), survey.Total.Sum()),
	})

	return r
}

// inspectRoomNames flags markers whose name is blank. The parser accepts them
// because legacy files contain the odd unlabeled section, but a survey keyed
// on a blank name is useless to the reader.
func inspectRoomNames(plan *floorplan.Plan, r *Report) {
	for _, room := range plan.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			r.AddError(Result{
				Level:       LevelStructure,
				Message:     fmt.Sprintf("room marker on line %d has a blank name", room.Line),
				Line:        room.Line,
				ActualValue: room.Name,
				Expected:    "a non-empty room name between the parentheses",
				Suggestions: []string{"Label the section, e.g. (storage)"},
			})
		}
	}
}

// inspectChairCounts warns on rooms, and on plans, with nothing to count.
func inspectChairCounts(survey *tally.Survey, r *Report) {
	for _, rt := range survey.Rooms {
		if rt.Counts.Sum() == 0 {
			r.AddWarning(Result{
				Level:   LevelSurvey,
				Message: fmt.Sprintf("room %q contains no chairs", rt.Room),
				Room:    rt.Room,
				Line:    rt.Line,
			})
		}
	}

	if survey.Total.Sum() == 0 {
		r.AddWarning(Result{
			Level:    LevelSurvey,
			Message:  "plan contains no chairs at all",
			Expected: "at least one of the symbols W, P, S, C",
		})
	}
}
