package tally

import (
	"github.com/iNinad/chair-counting-tool/pkg/floorplan"
)

// Count tallies chair symbols for every room of the plan and derives the
// apartment-wide total. Characters that are not chair symbols (walls, doors,
// whitespace) are skipped. Only symbol frequency matters, so identical plans
// always produce identical surveys.
func Count(plan *floorplan.Plan) *Survey {
	s := &Survey{
		Rooms: make([]RoomTally, 0, len(plan.Rooms)),
		Total: newTally(),
	}

	for _, room := range plan.Rooms {
		counts := newTally()
		for _, line := range room.Body {
			for _, r := range line {
				if ct, ok := FromSymbol(r); ok {
					counts[ct]++
				}
			}
		}
		s.Rooms = append(s.Rooms, RoomTally{Room: room.Name, Line: room.Line, Counts: counts})
		s.Total.Add(counts)
	}

	return s
}

// Analyze parses floor-plan text and counts its chairs in one step.
func Analyze(text string) (*Survey, error) {
	plan, err := floorplan.Parse(text)
	if err != nil {
		return nil, err
	}
	return Count(plan), nil
}
