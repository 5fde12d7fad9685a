// Command cityroute is the batch route planner: it loads a tab-delimited
// roads table and a list of source/destination pairs, answers every pair
// with Dijkstra's algorithm, and writes the routes to a report file.
//
// Configuration comes from the environment (a .env file is honored when
// present):
//
//	CITYROUTE_ROADS  — roads table path            (default ukcities.txt)
//	CITYROUTE_PAIRS  — query pairs path            (default citypairs.txt)
//	CITYROUTE_OUTPUT — report path                 (default output.txt)
//	CITYROUTE_ADDR   — if set, serve the HTTP API on this address instead
//	                   of running the batch (e.g. ":8080")
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/cityio"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/routeserver"
)

func main() {
	// A missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	roadsPath := envOr("CITYROUTE_ROADS", "ukcities.txt")
	pairsPath := envOr("CITYROUTE_PAIRS", "citypairs.txt")
	outputPath := envOr("CITYROUTE_OUTPUT", "output.txt")
	addr := os.Getenv("CITYROUTE_ADDR")

	g := loadGraph(roadsPath)

	if addr != "" {
		log.Printf("serving route queries on %s (%d cities)", addr, g.CityCount())
		log.Fatal(http.ListenAndServe(addr, routeserver.New(g)))
	}

	runBatch(g, pairsPath, outputPath)
}

func loadGraph(roadsPath string) *citygraph.Graph {
	roadsFile, err := os.Open(roadsPath)
	if err != nil {
		log.Fatalf("open roads table: %v", err)
	}
	defer roadsFile.Close()

	g := citygraph.New()
	roads, err := cityio.LoadRoads(g, roadsFile)
	if err != nil {
		// Bad input aborts the whole batch before any query runs.
		log.Fatalf("load roads table %s: %v", roadsPath, err)
	}
	log.Printf("loaded %d roads between %d cities from %s", roads, g.CityCount(), roadsPath)

	return g
}

func runBatch(g *citygraph.Graph, pairsPath, outputPath string) {
	pairsFile, err := os.Open(pairsPath)
	if err != nil {
		log.Fatalf("open query pairs: %v", err)
	}
	queries, err := cityio.LoadPairs(pairsFile)
	pairsFile.Close()
	if err != nil {
		log.Fatalf("load query pairs %s: %v", pairsPath, err)
	}

	output, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer output.Close()

	log.Printf("calculating %d fastest routes...", len(queries))

	for _, q := range queries {
		// Unknown city names are usage errors and halt the whole batch.
		src, err := g.IndexOf(q.From)
		if err != nil {
			log.Fatalf("resolve query: %v", err)
		}
		dst, err := g.IndexOf(q.To)
		if err != nil {
			log.Fatalf("resolve query: %v", err)
		}

		res, err := dijkstra.Run(g, src)
		if err != nil {
			log.Fatalf("route %s to %s: %v", q.From, q.To, err)
		}

		route, err := res.FormatRoute(dst)
		if errors.Is(err, dijkstra.ErrNoRoute) {
			// A missing route is a legitimate answer, not a failure.
			fmt.Fprintf(output, "%s to %s: no route\n\n", q.From, q.To)

			continue
		}
		if err != nil {
			log.Fatalf("route %s to %s: %v", q.From, q.To, err)
		}
		fmt.Fprintf(output, "%s\n", route)
	}

	log.Printf("fastest routes saved to %s", outputPath)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
