package tally

// Tally maps each chair type to an occurrence count. Every chair type is
// present, so zero counts show up explicitly in reports.
type Tally map[ChairType]int

// newTally returns a tally with every chair type at zero.
func newTally() Tally {
	t := make(Tally, len(Types))
	for _, ct := range Types {
		t[ct] = 0
	}
	return t
}

// Sum returns the total count across all chair types.
func (t Tally) Sum() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Add accumulates other into t.
func (t Tally) Add(other Tally) {
	for ct, n := range other {
		t[ct] += n
	}
}

// RoomTally holds the chair counts for one room.
type RoomTally struct {
	Room   string `json:"room"`
	Line   int    `json:"line"` // marker line number in the plan file
	Counts Tally  `json:"counts"`
}

// Survey is the complete counting result: per-room tallies in plan order plus
// the apartment-wide total.
type Survey struct {
	Rooms []RoomTally `json:"rooms"`
	Total Tally       `json:"total"`
}
