// Package forecast estimates, by Monte Carlo sampling, how likely each team
// is to finish in the top 4 and to avoid the bottom 3. Outcomes are drawn
// uniformly over home win / draw / away win with no skill model, and residual
// points ties are broken with an infinitesimal random perturbation that can
// never flip a non-tied comparison. Output is fully determined by the
// (league state, sims, seed) triple.
package forecast

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/league"
)

const (
	// DefaultSims is the default number of random playouts per forecast.
	DefaultSims = 20000
	// DefaultSeed is the default RNG seed.
	DefaultSeed int64 = 12345

	// tiebreakScale keeps the perturbation far below the one-point
	// resolution of the score, so it only ever orders exact ties.
	tiebreakScale = 1e-9

	// chunkSize is the number of trials dispatched to a worker at once.
	// Each chunk derives its own seed, so the worker count and scheduling
	// cannot change the output.
	chunkSize = 2048

	// chunkSeedGamma spaces the per-chunk seeds (golden-ratio increment).
	chunkSeedGamma = 0x9E3779B9
)

const topSlots = 4
const bottomSlots = 3

// Forecast is the estimator's output: per-team probabilities plus the
// sampling parameters echoed back for reproducibility auditing.
type Forecast struct {
	Sims int              `json:"sims"`
	Seed int64            `json:"seed"`
	Top4 map[string]float64 `json:"top4"`
	Safe map[string]float64 `json:"safe"`
}

// Estimator runs batches of independent random playouts. It holds no mutable
// state across calls and is safe for concurrent use.
type Estimator struct {
	workers int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithWorkers sets the number of sampling workers.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEstimator creates an estimator using one worker per available CPU.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate runs sims random completions of the remaining schedule and counts
// how often each team lands in the top 4 and outside the bottom 3. With no
// fixtures remaining the outcome is deterministic and the probabilities are
// exactly 0 or 1.
func (e *Estimator) Estimate(l *league.League, sims int, seed int64) (*Forecast, error) {
	if sims <= 0 {
		return nil, &apperrors.SamplingParameterError{Parameter: "sims", Message: "must be positive"}
	}

	teams := l.Teams()
	n := len(teams)
	index := make(map[string]int, n)
	for i, t := range teams {
		index[t] = i
	}

	standings := l.Standings()
	base := make([]int, n)
	for i, t := range teams {
		base[i] = standings[t].Points
	}

	remaining := l.RemainingFixtures()
	if len(remaining) == 0 {
		return e.settled(teams, base, sims, seed), nil
	}

	homeIdx := make([]int, len(remaining))
	awayIdx := make([]int, len(remaining))
	for k, f := range remaining {
		homeIdx[k] = index[f.Home]
		awayIdx[k] = index[f.Away]
	}

	chunks := (sims + chunkSize - 1) / chunkSize
	top4Counts := make([]int64, n)
	bottomCounts := make([]int64, n)

	var mu sync.Mutex
	var wg sync.WaitGroup
	work := make(chan int)

	workers := e.workers
	if workers > chunks {
		workers = chunks
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			localTop := make([]int64, n)
			localBottom := make([]int64, n)
			for c := range work {
				trials := chunkSize
				if c == chunks-1 {
					trials = sims - c*chunkSize
				}
				runChunk(chunkSeed(seed, c), trials, base, homeIdx, awayIdx, localTop, localBottom)
			}
			mu.Lock()
			for i := 0; i < n; i++ {
				top4Counts[i] += localTop[i]
				bottomCounts[i] += localBottom[i]
			}
			mu.Unlock()
		}()
	}
	for c := 0; c < chunks; c++ {
		work <- c
	}
	close(work)
	wg.Wait()

	f := &Forecast{
		Sims: sims,
		Seed: seed,
		Top4: make(map[string]float64, n),
		Safe: make(map[string]float64, n),
	}
	for i, t := range teams {
		f.Top4[t] = float64(top4Counts[i]) / float64(sims)
		f.Safe[t] = float64(int64(sims)-bottomCounts[i]) / float64(sims)
	}
	return f, nil
}

// chunkSeed derives the deterministic seed for chunk c.
func chunkSeed(seed int64, c int) int64 {
	return seed + int64(c+1)*chunkSeedGamma
}

// runChunk plays trials random completions and accumulates top-4 and
// bottom-3 hits into the count slices.
func runChunk(seed int64, trials int, base []int, homeIdx, awayIdx []int, topCounts, bottomCounts []int64) {
	rng := rand.New(rand.NewSource(seed))
	n := len(base)
	pts := make([]int, n)
	score := make([]float64, n)
	order := make([]int, n)

	for trial := 0; trial < trials; trial++ {
		copy(pts, base)
		for k := range homeIdx {
			switch rng.Intn(3) {
			case 0: // home win
				pts[homeIdx[k]] += 3
			case 1: // draw
				pts[homeIdx[k]]++
				pts[awayIdx[k]]++
			case 2: // away win
				pts[awayIdx[k]] += 3
			}
		}
		for i := 0; i < n; i++ {
			score[i] = float64(pts[i]) + rng.Float64()*tiebreakScale
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return score[order[a]] > score[order[b]] })

		for _, i := range order[:topSlots] {
			topCounts[i]++
		}
		for _, i := range order[n-bottomSlots:] {
			bottomCounts[i]++
		}
	}
}

// settled handles a completed season: membership in the perturbed total order
// decides each probability exactly. The perturbation exists solely to make
// the order strict when points tie; it must never feed rule-based decisions.
func (e *Estimator) settled(teams []string, base []int, sims int, seed int64) *Forecast {
	rng := rand.New(rand.NewSource(seed))
	n := len(teams)
	score := make([]float64, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		score[i] = float64(base[i]) + rng.Float64()*tiebreakScale
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return score[order[a]] > score[order[b]] })

	f := &Forecast{
		Sims: sims,
		Seed: seed,
		Top4: make(map[string]float64, n),
		Safe: make(map[string]float64, n),
	}
	for _, t := range teams {
		f.Top4[t] = 0
		f.Safe[t] = 1
	}
	for _, i := range order[:topSlots] {
		f.Top4[teams[i]] = 1
	}
	for _, i := range order[n-bottomSlots:] {
		f.Safe[teams[i]] = 0
	}
	return f
}
