package floorplan

import (
	"fmt"
	"strings"
)

// ParseError reports floor-plan text whose room structure cannot be
// recognized. Line is the 1-based offending line number, or 0 when the
// failure concerns the input as a whole.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// parseState is the scanner position relative to room markers.
type parseState int

const (
	awaitingRoomMarker parseState = iota
	inRoomBody
)

// Parse converts legacy floor-plan text into an ordered sequence of room
// sections. A room marker is a parenthesized name anywhere in a line, e.g.
// "|(closet)   P  |"; the marker line's remaining content and every following
// line belong to that room until the next marker or end of input. Lines before
// the first marker are the plan border and belong to no room.
func Parse(text string) (*Plan, error) {
	var rooms []Room
	seen := make(map[string]int) // room name -> marker line
	state := awaitingRoomMarker

	for i, line := range strings.Split(text, "\n") {
		n := i + 1
		name, rest, marked, err := splitMarker(line, n)
		if err != nil {
			return nil, err
		}

		if !marked {
			if state == awaitingRoomMarker {
				continue
			}
			appendBody(&rooms[len(rooms)-1], line)
			continue
		}

		if first, dup := seen[name]; dup {
			return nil, &ParseError{Line: n, Msg: fmt.Sprintf("duplicate room %q (first marked on line %d)", name, first)}
		}
		seen[name] = n
		rooms = append(rooms, Room{Name: name, Line: n})
		appendBody(&rooms[len(rooms)-1], rest)
		state = inRoomBody
	}

	if state == awaitingRoomMarker {
		return nil, &ParseError{Msg: "no room markers found"}
	}
	return &Plan{Rooms: rooms}, nil
}

// splitMarker reports whether a line carries a room marker. For marker lines
// it returns the name between the parentheses, taken verbatim, and the line
// content outside them.
func splitMarker(line string, n int) (name, rest string, marked bool, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return "", "", false, nil
	}
	length := strings.IndexByte(line[open+1:], ')')
	if length < 0 {
		return "", "", false, &ParseError{Line: n, Msg: "unterminated room marker"}
	}
	name = line[open+1 : open+1+length]
	rest = line[:open] + line[open+2+length:]
	if strings.IndexByte(rest, '(') >= 0 {
		return "", "", false, &ParseError{Line: n, Msg: "more than one room marker on a line"}
	}
	return name, rest, true, nil
}

// appendBody stores a content line on the room, trimmed. Blank lines carry
// nothing and are dropped.
func appendBody(r *Room, line string) {
	line = strings.TrimSpace(line)
	if line != "" {
		r.Body = append(r.Body, line)
	}
}
