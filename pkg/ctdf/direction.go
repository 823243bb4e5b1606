package ctdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four fixed travel directions. The numeric value is
// the code used by the NexTrip feed.
type Direction int

const (
	DirectionSouth Direction = 1
	DirectionEast  Direction = 2
	DirectionWest  Direction = 3
	DirectionNorth Direction = 4
)

var ErrUnknownDirection = errors.New("unknown direction")

var directionNames = []struct {
	Direction Direction
	Name      string
}{
	{DirectionSouth, "south"},
	{DirectionEast, "east"},
	{DirectionWest, "west"},
	{DirectionNorth, "north"},
}

// AllDirections returns the vocabulary in code order.
func AllDirections() []Direction {
	directions := make([]Direction, 0, len(directionNames))
	for _, entry := range directionNames {
		directions = append(directions, entry.Direction)
	}

	return directions
}

// ParseDirection maps a case-insensitive direction name to its Direction.
func ParseDirection(name string) (Direction, error) {
	lowered := strings.ToLower(name)

	for _, entry := range directionNames {
		if entry.Name == lowered {
			return entry.Direction, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// DirectionFromCode maps a feed code such as "4" to its Direction.
func DirectionFromCode(code string) (Direction, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return 0, false
	}

	direction := Direction(n)
	return direction, direction.Valid()
}

func (d Direction) Valid() bool {
	for _, entry := range directionNames {
		if entry.Direction == d {
			return true
		}
	}

	return false
}

func (d Direction) Code() string {
	return strconv.Itoa(int(d))
}

func (d Direction) String() string {
	for _, entry := range directionNames {
		if entry.Direction == d {
			return entry.Name
		}
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionNames translates directions back to their names, preserving order.
func DirectionNames(directions []Direction) []string {
	names := make([]string, 0, len(directions))
	for _, direction := range directions {
		names = append(names, direction.String())
	}

	return names
}
