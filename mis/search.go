package mis

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ScottSallinen/misrand/graph"
	"github.com/ScottSallinen/misrand/utils"
)

const DefaultTrials = 10000

// MaxThreads is the largest worker count accepted. Matches the Go runtime's default OS thread limit.
const MaxThreads = 10000

var (
	ErrInvalidThreads = errors.New("mis: invalid worker count")
	ErrNoTrials       = errors.New("mis: trial count must be positive")
	ErrInvalidPolicy  = errors.New("mis: unknown policy")
)

type Options struct {
	Trials  uint32 // Number of randomized trials to run.
	Threads int    // Worker count. 0 uses every available CPU.
	Policy  Policy // Which trial result to keep.
	Seed    int64  // Base seed for the per-trial streams. 0 picks one from the clock.
}

func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Policy: Maximize}
}

func (o Options) Validate() error {
	if o.Threads < 0 || o.Threads > MaxThreads {
		return fmt.Errorf("%w: %d (want 0 for all CPUs, or 1..%d)", ErrInvalidThreads, o.Threads, MaxThreads)
	}
	if o.Trials == 0 {
		return ErrNoTrials
	}
	if !o.Policy.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPolicy, o.Policy)
	}
	return nil
}

// Number of worker goroutines actually started.
func (o Options) workers() int {
	threads := o.Threads
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	return int(utils.Min(uint64(threads), uint64(o.Trials)))
}

// Result is the frozen outcome of a search.
type Result struct {
	Policy   Policy
	Size     int
	Members  Selection
	Trial    uint32 // Trial number that produced Members.
	Seed     int64  // That trial's seed.
	BaseSeed int64  // Run seed every trial seed was derived from.
	Stats    Stats
}

type trialResult struct {
	trial     uint32
	seed      int64
	selection Selection
}

// Search runs opts.Trials independent RandomMaximal trials over a pool of workers and keeps the best one.
// Workers only build trials; a single collector (the calling goroutine) owns the Accumulator and applies
// the replace rule in arrival order, so among equal sizes the first to arrive wins.
// Every trial runs unless ctx is cancelled, which is checked between trials.
func Search(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	baseSeed := resolveSeed(opts.Seed)
	numVertices := g.NumVertices()

	watch := utils.Watch{}
	watch.Start()

	acc := NewAccumulator(opts.Policy, numVertices)
	tally := newSizeTally(numVertices)

	if numVertices == 0 {
		log.Warn().Msg("Graph has no vertices; result is the empty set.")
		return finish(acc, tally, baseSeed, &watch), nil
	}

	workers := opts.workers()
	log.Debug().Msg("Search: trials " + utils.V(opts.Trials) + " workers " + utils.V(workers) +
		" policy " + opts.Policy.String() + " seed " + utils.V(baseSeed))

	results := make(chan trialResult, workers*4)
	var next atomic.Uint64
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			rng := newWorkerRNG()
			scratch := NewScratch(g)
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				trial := next.Add(1) - 1
				if trial >= uint64(opts.Trials) {
					return nil
				}
				seed := DeriveSeed(baseSeed, trial)
				rng.Seed(seed)
				results <- trialResult{trial: uint32(trial), seed: seed, selection: RandomMaximal(g, rng, scratch)}
			}
		})
	}

	workErr := make(chan error, 1)
	go func() {
		workErr <- eg.Wait()
		close(results)
	}()

	for res := range results {
		tally.add(len(res.selection))
		if acc.Offer(res.trial, res.seed, res.selection) {
			log.Trace().Msg("New best " + utils.V(acc.Size) + " from trial " + utils.V(res.trial))
		}
	}
	if err := <-workErr; err != nil {
		return nil, fmt.Errorf("mis: search stopped: %w", err)
	}

	result := finish(acc, tally, baseSeed, &watch)
	if result.Stats.Trials != opts.Trials {
		log.Panic().Msg("Collected " + utils.V(result.Stats.Trials) + " trials, expected " + utils.V(opts.Trials))
	}
	log.Debug().Msg("Search done: best " + utils.V(result.Size) + " (trial " + utils.V(result.Trial) +
		") in (ms) " + utils.V(result.Stats.Elapsed.Milliseconds()))
	return result, nil
}

func finish(acc *Accumulator, tally *sizeTally, baseSeed int64, watch *utils.Watch) *Result {
	return &Result{
		Policy:   acc.Policy,
		Size:     acc.Size,
		Members:  acc.Members,
		Trial:    acc.Trial,
		Seed:     acc.Seed,
		BaseSeed: baseSeed,
		Stats:    tally.summarise(watch.Elapsed()),
	}
}
