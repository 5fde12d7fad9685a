package cityio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/cityio"
)

func TestLoadRoads_BuildsGraph(t *testing.T) {
	input := "York\tLeeds\t42\nLeeds\tHull\t58\r\nYork\tHull\t120\n"

	g := citygraph.New()
	roads, err := cityio.LoadRoads(g, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, roads)
	assert.Equal(t, 3, g.CityCount(), "duplicate names collapse, new ones register in order")

	york, err := g.IndexOf("York")
	require.NoError(t, err)
	assert.Equal(t, 0, york, "first-seen city gets index 0")

	fromYork, err := g.Neighbors(york)
	require.NoError(t, err)
	require.Len(t, fromYork, 2)
	assert.Equal(t, int64(42), fromYork[0].Distance)
	assert.Equal(t, int64(120), fromYork[1].Distance)
}

func TestLoadRoads_TrailingBlankLineTolerated(t *testing.T) {
	g := citygraph.New()
	roads, err := cityio.LoadRoads(g, strings.NewReader("A\tB\t1\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, roads)
}

func TestLoadRoads_MalformedLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"MissingField", "A\tB\n"},
		{"ExtraField", "A\tB\t3\tX\n"},
		{"NonIntegerDistance", "A\tB\tfar\n"},
		{"SpaceDelimited", "A B 3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := citygraph.New()
			_, err := cityio.LoadRoads(g, strings.NewReader(tc.input))
			require.ErrorIs(t, err, cityio.ErrMalformedLine)
			assert.Contains(t, err.Error(), "1", "error must carry the line number")
		})
	}
}

func TestLoadRoads_NonPositiveDistanceIsFatal(t *testing.T) {
	input := "A\tB\t5\nAlpha\tBeta\t0\nC\tD\t2\n"

	g := citygraph.New()
	roads, err := cityio.LoadRoads(g, strings.NewReader(input))
	require.ErrorIs(t, err, citygraph.ErrBadDistance)
	// Diagnostic identifies the offending pair, and the load stopped there.
	assert.Contains(t, err.Error(), "Alpha")
	assert.Contains(t, err.Error(), "Beta")
	assert.Equal(t, 1, roads, "loading must stop at the first bad record")
}

func TestLoadPairs(t *testing.T) {
	input := "York\tHull\r\nLeeds\tYork\n"

	queries, err := cityio.LoadPairs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []cityio.Query{
		{From: "York", To: "Hull"},
		{From: "Leeds", To: "York"},
	}, queries)
}

func TestLoadPairs_Malformed(t *testing.T) {
	for _, input := range []string{"York\n", "York\tLeeds\tHull\n", "\tLeeds\n"} {
		_, err := cityio.LoadPairs(strings.NewReader(input))
		assert.ErrorIs(t, err, cityio.ErrMalformedLine, "input %q", input)
	}
}
