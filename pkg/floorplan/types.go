package floorplan

// Room is one room section of a floor plan: the name from its marker line
// plus the raw body lines belonging to the section.
type Room struct {
	Name string   `json:"name"`
	Line int      `json:"line"` // 1-based marker line number in the plan file
	Body []string `json:"-"`
}

// Plan is a parsed floor plan. Rooms appear in first-appearance order and are
// not modified after parsing.
type Plan struct {
	Rooms []Room `json:"rooms"`
}

// RoomNames returns the room names in plan order.
func (p *Plan) RoomNames() []string {
	names := make([]string, len(p.Rooms))
	for i, r := range p.Rooms {
		names[i] = r.Name
	}
	return names
}
