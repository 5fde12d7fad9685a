// Package cityio loads the planner's two input tables from tab-delimited
// text:
//
//   - a roads table, one "CityA\tCityB\tdistance" record per line, used to
//     populate a citygraph.Graph via AddCity + AddRoad;
//   - a query table, one "Source\tDestination" pair per line.
//
// Lines may end in CRLF; trailing blank lines are tolerated. Any other
// deviation is fatal to the whole load: the first malformed line aborts
// with ErrMalformedLine carrying the line number, and a non-positive
// distance aborts with citygraph.ErrBadDistance naming both cities. No
// partially-applied record survives a failed load beyond the roads already
// accepted before it — callers treat a load error as fatal, matching the
// no-partial-processing contract.
package cityio
