package chattext

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a block position for NBT lookups: either LocalPos (relative to the
// looking direction) or WorldPos (world coordinates, each axis absolute or
// relative). The wire form is a string, "^1.0 ^2.0 ^3.0" for local and
// "~1 2 ~-3" for world positions.
type Pos interface {
	fmt.Stringer
	isPos()
}

// LocalPos is a position relative to the looking direction.
type LocalPos struct {
	Left     float64
	Up       float64
	Forwards float64
}

func (LocalPos) isPos() {}

func (p LocalPos) String() string {
	return "^" + formatCoord(p.Left) + " ^" + formatCoord(p.Up) + " ^" + formatCoord(p.Forwards)
}

// Coordinate is one axis of a world position, absolute or relative ("~4").
type Coordinate struct {
	Value    int
	Relative bool
}

func (c Coordinate) String() string {
	if c.Relative {
		return "~" + strconv.Itoa(c.Value)
	}
	return strconv.Itoa(c.Value)
}

// WorldPos is a position in world coordinates.
type WorldPos struct {
	X Coordinate
	Y Coordinate
	Z Coordinate
}

func (WorldPos) isPos() {}

func (p WorldPos) String() string {
	return p.X.String() + " " + p.Y.String() + " " + p.Z.String()
}

// ParsePos parses the wire form of a block position.
func ParsePos(s string) (Pos, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, singleIssue("", CodeInvalidFormat, fmt.Sprintf("cannot parse %q as a block position", s), s)
	}
	if strings.HasPrefix(fields[0], "^") {
		var vals [3]float64
		for i, f := range fields {
			if !strings.HasPrefix(f, "^") {
				return nil, singleIssue("", CodeInvalidFormat, fmt.Sprintf("cannot mix local and world coordinates in %q", s), s)
			}
			v, err := strconv.ParseFloat(f[1:], 64)
			if err != nil {
				return nil, singleIssue("", CodeInvalidFormat, fmt.Sprintf("cannot parse %q as a block position", s), s)
			}
			vals[i] = v
		}
		return LocalPos{Left: vals[0], Up: vals[1], Forwards: vals[2]}, nil
	}
	var coords [3]Coordinate
	for i, f := range fields {
		c, err := parseCoordinate(f)
		if err != nil {
			return nil, singleIssue("", CodeInvalidFormat, fmt.Sprintf("cannot parse %q as a block position", s), s)
		}
		coords[i] = c
	}
	return WorldPos{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func parseCoordinate(s string) (Coordinate, error) {
	relative := strings.HasPrefix(s, "~")
	if relative {
		s = s[1:]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Value: v, Relative: relative}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
