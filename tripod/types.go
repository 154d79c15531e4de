package tripod

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tripods/grid"
)

// ErrUnknownDirection is returned when parsing a direction name fails.
var ErrUnknownDirection = errors.New("tripod: unknown direction")

// Direction selects which three orthogonal neighbors a tripod reads.
// The constant order is the order interior cells are evaluated in.
type Direction int

const (
	North Direction = iota // North reads west, north and east.
	East                   // East reads north, east and south.
	South                  // South reads west, south and east.
	West                   // West reads north, west and south.
)

// Directions lists every Direction in evaluation order.
var Directions = [...]Direction{North, East, South, West}

// String returns the upper-case direction name, e.g. "NORTH".
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case North, East, South, West:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("marshal %d: %w", int(d), ErrUnknownDirection)
	}
}

// UnmarshalText decodes a direction name; see ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NORTH":
		return North, nil
	case "EAST":
		return East, nil
	case "SOUTH":
		return South, nil
	case "WEST":
		return West, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
	}
}

// Candidate is a scored tripod placement at (Row, Col).
// Candidates are plain values and compare with ==.
type Candidate struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"orientation"`
	Score     int       `json:"sum"`
}

// String formats the candidate the way reports print it.
func (c Candidate) String() string {
	return fmt.Sprintf("location: (%d,%d), orientation: %s, sum: %d", c.Row, c.Col, c.Direction, c.Score)
}

// Score sums the three neighbor values read by a tripod facing d.
func Score(n grid.Neighbors, d Direction) int {
	switch d {
	case North:
		return n.West + n.North + n.East
	case South:
		return n.West + n.South + n.East
	case East:
		return n.North + n.East + n.South
	case West:
		return n.North + n.West + n.South
	default:
		panic(fmt.Sprintf("tripod: score for %v: %v", d, ErrUnknownDirection))
	}
}
