package tally

// ChairType identifies one of the four chair kinds a floor plan may contain.
// The value is the plan symbol for the type.
type ChairType string

const (
	Wooden  ChairType = "W"
	Plastic ChairType = "P"
	Sofa    ChairType = "S"
	China   ChairType = "C"
)

// Types lists the chair types in legend order, the order every report uses.
var Types = []ChairType{Wooden, Plastic, Sofa, China}

// chairSymbols maps a plan character to its chair type. Matching is exact;
// the legacy format never uses lowercase chair symbols.
var chairSymbols = map[rune]ChairType{
	'W': Wooden,
	'P': Plastic,
	'S': Sofa,
	'C': China,
}

// FromSymbol returns the chair type for a plan character.
func FromSymbol(r rune) (ChairType, bool) {
	t, ok := chairSymbols[r]
	return t, ok
}
