// Package sweep runs many independent engines over a grid of preset options.
package sweep

import (
	"context"
	"fmt"
	"hash/fnv"
	"image/color"
	"maps"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"caengine/internal/core"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Plan describes a sweep: every combination of Vary values, for every seed.
type Plan struct {
	Preset string
	Base   map[string]string
	Vary   map[string][]string
	Seeds  []int64

	Extent int
	Pitch  int
	Steps  int
}

// Job is one engine run.
type Job struct {
	ID      uuid.UUID
	Preset  string
	Options map[string]string
	Seed    int64
}

func (j Job) String() string {
	keys := slices.Sorted(maps.Keys(j.Options))
	s := j.Preset + " seed=" + strconv.FormatInt(j.Seed, 10)
	for _, k := range keys {
		s += " " + k + "=" + j.Options[k]
	}
	return s
}

// Result summarizes a finished job.
type Result struct {
	Job
	Generations uint64
	// Coverage is the share of cells whose color differs from an
	// uninitialized cell's.
	Coverage float64
	// Digest fingerprints the final grid; equal jobs give equal digests.
	Digest  uint64
	Elapsed time.Duration
	Err     error
}

// Expand lists the jobs of s in a stable order: seeds outermost, then the
// Vary keys sorted by name.
func Expand(s Plan) []Job {
	keys := slices.Sorted(maps.Keys(s.Vary))
	combos := []map[string]string{maps.Clone(s.Base)}
	if combos[0] == nil {
		combos[0] = map[string]string{}
	}
	for _, k := range keys {
		var next []map[string]string
		for _, c := range combos {
			for _, v := range s.Vary[k] {
				m := maps.Clone(c)
				m[k] = v
				next = append(next, m)
			}
		}
		combos = next
	}
	seeds := s.Seeds
	if len(seeds) == 0 {
		seeds = []int64{0}
	}
	jobs := make([]Job, 0, len(seeds)*len(combos))
	for _, seed := range seeds {
		for _, c := range combos {
			jobs = append(jobs, Job{ID: uuid.New(), Preset: s.Preset, Options: c, Seed: seed})
		}
	}
	return jobs
}

// ObserverFunc supplies an engine observer for a job's rule, or nil.
type ObserverFunc func(rule string) core.Observer

// Run executes every job of s on a pool of workers. Results come back sorted
// by descending coverage. Cancelling ctx abandons jobs that have not started
// and stops running ones between steps.
func Run(ctx context.Context, s Plan, workers int, obs ObserverFunc, log *zap.Logger) []Result {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	all := Expand(s)
	log.Info("sweep starting", zap.String("preset", s.Preset), zap.Int("jobs", len(all)), zap.Int("workers", workers), zap.Int("steps", s.Steps))

	jobs := make(chan Job)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				var o core.Observer
				if obs != nil {
					o = obs(job.Preset)
				}
				results <- RunJob(ctx, job, s.Extent, s.Pitch, s.Steps, o)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, job := range all {
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	var out []Result
	for res := range results {
		if res.Err != nil {
			log.Warn("job failed", zap.Stringer("id", res.ID), zap.Stringer("job", res.Job), zap.Error(res.Err))
		} else {
			log.Debug("job done", zap.Stringer("id", res.ID), zap.Float64("coverage", res.Coverage), zap.Duration("elapsed", res.Elapsed))
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Coverage > out[j].Coverage })
	return out
}

// RunJob builds the job's rule and engine and advances it steps times.
func RunJob(ctx context.Context, job Job, extent, pitch, steps int, obs core.Observer) Result {
	res := Result{Job: job}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	rule, err := core.Build(job.Preset, job.Options)
	if err != nil {
		res.Err = err
		return res
	}
	e, err := core.New(discard{}, core.Options{Extent: extent, Pitch: pitch, Seed: job.Seed, Observer: obs})
	if err != nil {
		res.Err = err
		return res
	}
	if err := e.SetRule(rule); err != nil {
		res.Err = err
		return res
	}
	for n := 0; n < steps; n++ {
		if err := ctx.Err(); err != nil {
			res.Err = fmt.Errorf("cancelled after %d steps: %w", n, err)
			break
		}
		if err := e.Step(); err != nil {
			res.Err = err
			break
		}
	}
	res.Generations = e.Generation()
	res.Coverage, res.Digest = summarize(e.Grid(), rule)
	return res
}

func summarize(g *core.Grid, r *core.Rule) (float64, uint64) {
	blank := rgba(r.Color(core.Cell{}))
	h := fnv.New64a()
	var buf []byte
	var covered int
	g.Cells(func(_, _ int, c core.Cell) {
		if rgba(r.Color(c)) != blank {
			covered++
		}
		for _, k := range slices.Sorted(maps.Keys(c)) {
			buf = append(buf[:0], k...)
			buf = strconv.AppendInt(append(buf, '='), int64(c[k]), 10)
			h.Write(append(buf, ';'))
		}
		h.Write([]byte{'|'})
	})
	return float64(covered) / float64(g.W*g.H), h.Sum64()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// discard is the surface for headless jobs; only the final grid matters.
type discard struct{}

func (discard) PaintRect(int, int, int, color.Color) {}
func (discard) ClearAll()                            {}
func (discard) WithRawContext(func(any))             {}
