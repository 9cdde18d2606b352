package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ScottSallinen/misrand/enforce"
	"github.com/ScottSallinen/misrand/graph"
	"github.com/ScottSallinen/misrand/mis"
	"github.com/ScottSallinen/misrand/utils"
)

type RunOptions struct {
	GraphPath  string
	Search     mis.Options
	Check      bool // Validate independence and maximality of the final set.
	IncludeAll bool // Add trial, seed and statistics to the output record.
}

// Output is the single record written to stdout.
type Output struct {
	Size    int        `json:"size"`
	Members []string   `json:"members"`
	Trial   *uint32    `json:"trial,omitempty"`
	Seed    *int64     `json:"seed,omitempty"`
	Stats   *mis.Stats `json:"stats,omitempty"`
}

// Parses the command line. Errors name the offending flag; nothing is printed to stdout on failure.
func FlagsToOptions(fs *flag.FlagSet, args []string) (RunOptions, error) {
	graphPtr := fs.String("g", "", "Graph file (edge list, two vertex tokens per line).")
	trialsPtr := fs.Uint("n", mis.DefaultTrials, "Number of randomized trials to run.")
	smallPtr := fs.Bool("s", false, "Prefer smaller maximal independent sets over larger ones.")
	threadPtr := fs.Int("t", 0, "Worker count. 0 uses all available CPUs.")
	seedPtr := fs.Int64("seed", 0, "Base seed for the trials. 0 picks one from the clock.")
	checkPtr := fs.Bool("c", false, "Check the result is independent and maximal before printing it.")
	statsPtr := fs.Bool("stats", false, "Include the winning trial, its seed, and trial size statistics in the output.")
	debugPtr := fs.Int("debug", 0, "Log level. 0 for info, 1 for debug, 2 for trace.")
	colourPtr := fs.Bool("nc", false, "Removes the colouring from the log output.")

	if err := fs.Parse(args); err != nil {
		return RunOptions{}, err
	}

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *graphPtr == "" {
		return RunOptions{}, fmt.Errorf("flag -g: graph file is required")
	}
	if *trialsPtr == 0 || *trialsPtr > uint(^uint32(0)) {
		return RunOptions{}, fmt.Errorf("flag -n: %d: %w", *trialsPtr, mis.ErrNoTrials)
	}

	opts := mis.DefaultOptions()
	opts.Trials = uint32(*trialsPtr)
	opts.Threads = *threadPtr
	opts.Seed = *seedPtr
	if *smallPtr {
		opts.Policy = mis.Minimize
	}
	if err := opts.Validate(); err != nil {
		return RunOptions{}, fmt.Errorf("flag -t: %w", err)
	}

	return RunOptions{
		GraphPath:  *graphPtr,
		Search:     opts,
		Check:      *checkPtr,
		IncludeAll: *statsPtr,
	}, nil
}

// Run loads the graph, searches, and writes the output record to out.
// Load plus search time is reported separately from the wall clock, which also covers checking and encoding.
func Run(ctx context.Context, ro RunOptions, out io.Writer) error {
	watch := utils.Watch{}
	watch.Start()
	g, err := graph.LoadEdgeList(ro.GraphPath)
	if err != nil {
		return err
	}

	res, err := mis.Search(ctx, g, ro.Search)
	if err != nil {
		return err
	}
	computed := watch.Pause()
	s := res.Stats
	log.Info().Msg("Best " + res.Policy.String() + " set: " + utils.V(res.Size) + " over " + utils.V(s.Trials) +
		" trials (min " + utils.V(s.Min) + " max " + utils.V(s.Max) + " mean " + utils.F("%.2f", s.Mean) +
		" sd " + utils.F("%.2f", s.StdDev) + ") in (ms) " + utils.V(s.Elapsed.Milliseconds()))
	utils.MemoryStats()

	if ro.Check {
		if err := mis.Check(g, res.Members); err != nil {
			return err
		}
		log.Info().Msg("Checked: result is independent and maximal.")
	}

	members := g.RawIds(res.Members)
	sort.Strings(members)
	record := Output{Size: res.Size, Members: members}
	if ro.IncludeAll {
		record.Trial = &res.Trial
		record.Seed = &res.Seed
		record.Stats = &res.Stats
	}
	if err := json.NewEncoder(out).Encode(record); err != nil {
		return err
	}
	log.Debug().Msg("Load and search (ms) " + utils.V(computed.Milliseconds()) + " total (ms) " + utils.V(watch.AbsoluteElapsed().Milliseconds()))
	return nil
}

// Launch point. Parses command line arguments, runs every trial, prints one JSON record.
func main() {
	ro, err := FlagsToOptions(flag.CommandLine, os.Args[1:])
	enforce.ENFORCE(err, "invalid arguments")
	enforce.ENFORCE(Run(context.Background(), ro, os.Stdout))
}
