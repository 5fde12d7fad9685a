package cityio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cityroute/citygraph"
)

// ErrMalformedLine indicates an input line that does not match the
// expected tab-delimited shape.
var ErrMalformedLine = errors.New("cityio: malformed line")

// Query is one shortest-route request: two city names to resolve against
// a loaded graph.
type Query struct {
	From string
	To   string
}

// LoadRoads reads "CityA\tCityB\tdistance" records from r and populates g,
// registering unseen city names in first-seen order. It returns the number
// of roads added.
//
// The load is all-or-nothing in intent: the first malformed line or
// non-positive distance stops reading and returns the error, so callers
// must discard the graph on failure.
func LoadRoads(g *citygraph.Graph, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)

	var roads, lineNo int
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return roads, fmt.Errorf("%w %d: want two city names and a distance, got %d fields",
				ErrMalformedLine, lineNo, len(fields))
		}

		distance, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return roads, fmt.Errorf("%w %d: distance %q is not an integer", ErrMalformedLine, lineNo, fields[2])
		}

		a, err := g.AddCity(fields[0])
		if err != nil {
			return roads, fmt.Errorf("cityio: line %d: %w", lineNo, err)
		}
		b, err := g.AddCity(fields[1])
		if err != nil {
			return roads, fmt.Errorf("cityio: line %d: %w", lineNo, err)
		}

		// AddRoad rejects distances < 1 with both city names in the error.
		if err := g.AddRoad(a, b, distance); err != nil {
			return roads, fmt.Errorf("cityio: line %d: %w", lineNo, err)
		}
		roads++
	}
	if err := scanner.Err(); err != nil {
		return roads, fmt.Errorf("cityio: reading roads: %w", err)
	}

	return roads, nil
}

// LoadPairs reads "Source\tDestination" records from r and returns them in
// input order. Name resolution is deliberately left to the caller: the
// graph may not be loaded yet when the pairs are read.
func LoadPairs(r io.Reader) ([]Query, error) {
	scanner := bufio.NewScanner(r)

	var queries []Query
	var lineNo int
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: want two tab-delimited city names, got %d fields",
				ErrMalformedLine, lineNo, len(fields))
		}
		if fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w %d: empty city name", ErrMalformedLine, lineNo)
		}

		queries = append(queries, Query{From: fields[0], To: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cityio: reading pairs: %w", err)
	}

	return queries, nil
}
