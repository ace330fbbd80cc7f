package gridfile_test

import (
	"strings"
	"testing"

	"github.com/nimblegrid/mapfm/coord"
	"github.com/nimblegrid/mapfm/gridfile"
	"github.com/stretchr/testify/require"
)

const sample = `type octile
height 3
width 3
map
...
.@.
...
scenario
start 0 0 0
goal 2 2 0
`

func TestLoadParsesMapAndScenario(t *testing.T) {
	p, err := gridfile.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 3, p.Width)
	require.Equal(t, 3, p.Height)
	require.True(t, p.Walls[1][1])
	require.False(t, p.Walls[0][0])
	require.Len(t, p.Starts, 1)
	require.Equal(t, coord.New(0, 0), p.Starts[0].Coord)
	require.Len(t, p.Goals, 1)
	require.Equal(t, coord.New(2, 2), p.Goals[0].Coord)
}

func TestLoadRejectsMismatchedRowWidth(t *testing.T) {
	bad := `type octile
height 2
width 3
map
...
..
scenario
`
	_, err := gridfile.Load(strings.NewReader(bad))
	require.ErrorIs(t, err, gridfile.ErrMalformedRow)
}

func TestLoadRejectsUnknownGlyph(t *testing.T) {
	bad := `type octile
height 1
width 1
map
?
scenario
`
	_, err := gridfile.Load(strings.NewReader(bad))
	require.ErrorIs(t, err, gridfile.ErrUnknownGlyph)
}

func TestLoadRejectsOutOfBoundsScenarioCoord(t *testing.T) {
	bad := `type octile
height 1
width 1
map
.
scenario
start 5 5 0
`
	_, err := gridfile.Load(strings.NewReader(bad))
	require.ErrorIs(t, err, gridfile.ErrCoordOutOfBounds)
}
