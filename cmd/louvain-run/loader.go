package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dd0wney/louvain-engine/pkg/graph"
)

// loadEdgeList reads a CSV edge list with header "source,target,weight"
// and returns it as a directed, weighted AdjacencyGraph. Each row is
// added once in the direction given; callers building an undirected
// graph must supply both directions as separate rows.
func loadEdgeList(path string) (*graph.AdjacencyGraph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening edge list %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"source", "target"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("edge list missing required column %q", required)
		}
	}

	g := graph.NewAdjacencyGraph()
	for {
		record, err := reader.Read()
		if err != nil {
			break
		}

		u, err := strconv.Atoi(record[col["source"]])
		if err != nil {
			return nil, fmt.Errorf("parsing source vertex %q: %w", record[col["source"]], err)
		}
		v, err := strconv.Atoi(record[col["target"]])
		if err != nil {
			return nil, fmt.Errorf("parsing target vertex %q: %w", record[col["target"]], err)
		}

		weight := 1.0
		if wi, ok := col["weight"]; ok {
			weight, err = strconv.ParseFloat(record[wi], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing weight %q: %w", record[wi], err)
			}
		}

		g.AddEdge(u, v, weight)
	}

	return g, nil
}
