package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/misrand/utils"
)

var (
	ErrMalformedEdge = errors.New("graph: edge line needs two vertex tokens")
	ErrOpenGraph     = errors.New("graph: cannot open graph file")
)

// LoadEdgeList reads an edge list file into an undirected graph.
func LoadEdgeList(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpenGraph, path, err)
	}
	defer file.Close()

	watch := utils.Watch{}
	watch.Start()

	g, err := ParseEdgeList(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().Msg("Loaded " + path + ": vertices " + utils.V(g.NumVertices()) + " edges " + utils.V(g.EdgeCount) +
		" in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
	return g, nil
}

// ParseEdgeList builds a graph from "src dst [ignored...]" lines.
// Any line with fewer than two tokens (including blank lines) is an error naming its line number.
// Tokens are taken verbatim, so "#a #b" is an edge between "#a" and "#b". Line length is unbounded.
func ParseEdgeList(r io.Reader) (*Graph, error) {
	g := New()

	reader := bufio.NewReaderSize(r, 64*1024)
	lines := uint64(0)
	for {
		lineText, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("line %d: %w", lines+1, err)
		}
		if lineText == "" && err == io.EOF {
			break
		}
		lines++
		stringFields := strings.Fields(lineText)
		if len(stringFields) < 2 {
			return nil, fmt.Errorf("line %d %q: %w", lines, strings.TrimRight(lineText, "\r\n"), ErrMalformedEdge)
		}
		g.AddEdge(stringFields[0], stringFields[1])
		if err == io.EOF {
			break
		}
	}

	log.Debug().Msg("Parsed lines " + utils.V(lines))
	return g, nil
}
