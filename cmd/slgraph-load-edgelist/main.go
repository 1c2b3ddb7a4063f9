// Command slgraph-load-edgelist builds an slgraph file directly from a
// plain-text edge list, without holding the whole graph in memory.
//
// Input is one edge per line, "u v", with original node ids that may be
// large and sparse (e.g. OSM node ids). Lines starting with '#' and blank
// lines are ignored. Node ids are remapped to a compact 0..N-1 range for
// slgraph storage.
//
// Usage:
//
//	slgraph-load-edgelist [--undirected] <input.txt> <output.slg>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/philkrause/slgraph"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("slgraph-load-edgelist: ")

	undirected := flag.Bool("undirected", false, "add edges as undirected (v1 format)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [--undirected] <input.txt> <output.slg>\n", os.Args[0])
		os.Exit(1)
	}

	inPath, outPath := flag.Arg(0), flag.Arg(1)

	if err := run(inPath, outPath, *undirected); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath string, undirected bool) error {
	ids, err := collectIDs(inPath)
	if err != nil {
		return fmt.Errorf("reading edge list: %w", err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("no edges found in %s", inPath)
	}

	version := slgraph.VersionDirected
	if undirected {
		version = slgraph.VersionUndirected
	}

	g, err := slgraph.Open(slgraph.Options{Path: outPath, Version: version})
	if err != nil {
		return fmt.Errorf("opening output graph: %w", err)
	}
	defer g.Close()

	if err := g.NodelistExpand(uint64(len(ids))); err != nil {
		return fmt.Errorf("reserving node capacity: %w", err)
	}
	for i := 0; i < len(ids); i++ {
		if _, err := g.AddNode(); err != nil {
			return fmt.Errorf("adding node %d: %w", i, err)
		}
	}

	return addEdges(g, inPath, ids, undirected)
}

// collectIDs makes a first streaming pass over path, collecting every
// distinct node id seen on either side of an edge, sorted so mapID can
// binary-search an original id to its compact slgraph node id.
func collectIDs(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[uint64]struct{})

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		u, v, ok := parseEdgeLine(scanner.Text())
		if !ok {
			continue
		}
		seen[u] = struct{}{}
		seen[v] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// addEdges makes a second streaming pass over path, remapping each
// original id to its compact node id via binary search and adding the
// edge to g.
func addEdges(g *slgraph.Graph, path string, ids []uint64, undirected bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		u, v, ok := parseEdgeLine(scanner.Text())
		if !ok {
			continue
		}

		su, suOK := mapID(ids, u)
		sv, svOK := mapID(ids, v)
		if !suOK || !svOK {
			continue
		}

		if undirected {
			if _, err := g.AddEdge(su, sv); err != nil {
				return fmt.Errorf("adding edge %d--%d: %w", u, v, err)
			}
		} else {
			if _, err := g.AddDirectedEdge(su, sv); err != nil {
				return fmt.Errorf("adding edge %d->%d: %w", u, v, err)
			}
		}
	}

	return scanner.Err()
}

func parseEdgeLine(line string) (u, v uint64, ok bool) {
	if line == "" || line[0] == '#' {
		return 0, 0, false
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}

	u, errU := strconv.ParseUint(fields[0], 10, 64)
	v, errV := strconv.ParseUint(fields[1], 10, 64)
	if errU != nil || errV != nil {
		return 0, 0, false
	}

	return u, v, true
}

// mapID finds key's compact index in the sorted, deduplicated ids slice.
func mapID(ids []uint64, key uint64) (uint64, bool) {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= key })
	if i < len(ids) && ids[i] == key {
		return uint64(i), true
	}

	return 0, false
}
