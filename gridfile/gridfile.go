// Package gridfile parses a MovingAI-style map text format, plus a simple
// MAPFM scenario extension for agent starts/goals with colors, into a
// mapfm.Problem. This is a standalone collaborator: it imports only mapfm
// and coord (the coordinate type mapfm.Problem uses) and talks to the core
// only through mapfm.Problem.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/mapfm"
)

// Sentinel errors for malformed map files, wrapped with line context via
// fmt.Errorf("%w: ...", Err...) and checked with errors.Is at call sites.
var (
	ErrMissingHeader    = errors.New("gridfile: missing height/width/map header")
	ErrMalformedRow     = errors.New("gridfile: map row length does not match declared width")
	ErrUnknownGlyph     = errors.New("gridfile: unrecognized terrain glyph")
	ErrMalformedScene   = errors.New("gridfile: malformed scenario line")
	ErrCoordOutOfBounds = errors.New("gridfile: scenario coordinate out of bounds")
)

// terrain glyphs: '.' and 'G' are walkable, '@' and 'T' are walls, matching
// the MovingAI octile-terrain convention.
func isWall(glyph byte) (bool, error) {
	switch glyph {
	case '.', 'G', 'S':
		return false, nil
	case '@', 'T', 'O':
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownGlyph, glyph)
	}
}

// Load reads a map file followed by a MAPFM scenario block from r and
// builds a mapfm.Problem.
//
// Expected format:
//
//	type octile
//	height <H>
//	width <W>
//	map
//	<H lines of W terrain glyphs>
//	scenario
//	start <x> <y> <color>
//	...
//	goal <x> <y> <color>
//	...
func Load(r io.Reader) (mapfm.Problem, error) {
	scanner := bufio.NewScanner(r)

	var height, width int
	haveHeight, haveWidth, sawMap := false, false, false
	var walls [][]bool
	var starts []mapfm.Start
	var goals []mapfm.Goal

	section := "header"
	rowsRead := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if section == "header" {
			switch {
			case strings.HasPrefix(line, "type "):
				continue
			case strings.HasPrefix(line, "height "):
				v, err := strconv.Atoi(strings.TrimSpace(line[len("height "):]))
				if err != nil {
					return mapfm.Problem{}, fmt.Errorf("%w: bad height", ErrMissingHeader)
				}
				height, haveHeight = v, true
			case strings.HasPrefix(line, "width "):
				v, err := strconv.Atoi(strings.TrimSpace(line[len("width "):]))
				if err != nil {
					return mapfm.Problem{}, fmt.Errorf("%w: bad width", ErrMissingHeader)
				}
				width, haveWidth = v, true
			case line == "map":
				if !haveHeight || !haveWidth {
					return mapfm.Problem{}, ErrMissingHeader
				}
				sawMap = true
				walls = make([][]bool, height)
				section = "map"
			default:
				return mapfm.Problem{}, fmt.Errorf("%w: unexpected header line %q", ErrMissingHeader, line)
			}
			continue
		}

		if section == "map" {
			if line == "scenario" {
				if rowsRead != height {
					return mapfm.Problem{}, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedRow, height, rowsRead)
				}
				section = "scenario"
				continue
			}
			if len(line) != width {
				return mapfm.Problem{}, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedRow, rowsRead, len(line), width)
			}
			row := make([]bool, width)
			for x := 0; x < width; x++ {
				wall, err := isWall(line[x])
				if err != nil {
					return mapfm.Problem{}, err
				}
				row[x] = wall
			}
			walls[rowsRead] = row
			rowsRead++
			continue
		}

		// section == "scenario"
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return mapfm.Problem{}, fmt.Errorf("%w: %q", ErrMalformedScene, line)
		}
		kind := fields[0]
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		color, errC := strconv.Atoi(fields[3])
		if errX != nil || errY != nil || errC != nil {
			return mapfm.Problem{}, fmt.Errorf("%w: %q", ErrMalformedScene, line)
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			return mapfm.Problem{}, fmt.Errorf("%w: (%d,%d)", ErrCoordOutOfBounds, x, y)
		}
		c := coord.New(x, y)
		switch kind {
		case "start":
			starts = append(starts, mapfm.Start{Coord: c, Color: color})
		case "goal":
			goals = append(goals, mapfm.Goal{Coord: c, Color: color})
		default:
			return mapfm.Problem{}, fmt.Errorf("%w: unknown scenario kind %q", ErrMalformedScene, kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return mapfm.Problem{}, err
	}
	if !sawMap {
		return mapfm.Problem{}, ErrMissingHeader
	}

	return mapfm.Problem{
		Width:  width,
		Height: height,
		Walls:  walls,
		Starts: starts,
		Goals:  goals,
	}, nil
}
