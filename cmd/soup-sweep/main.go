package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"conway/internal/core"
	"conway/internal/sims/life"
)

type soupResult struct {
	seed        int64
	peakPop     int
	finalPop    int
	avgPop      float64
	gps         float64
	generations int
	extinctAt   int
	settledAt   int
}

func (r soupResult) String() string {
	state := "active"
	switch {
	case r.extinctAt > 0:
		state = fmt.Sprintf("extinct@%d", r.extinctAt)
	case r.settledAt > 0:
		state = fmt.Sprintf("settled@%d", r.settledAt)
	}
	return fmt.Sprintf("seed=%d peak=%d final=%d avg=%.1f %s (%.0f gen/s)",
		r.seed, r.peakPop, r.finalPop, r.avgPop, state, r.gps)
}

func main() {
	runs := flag.Int("runs", 200, "number of random soups to simulate")
	gens := flag.Int("gens", 1000, "generation cap per soup")
	rows := flag.Int("rows", 60, "board rows")
	cols := flag.Int("cols", 80, "board columns")
	density := flag.Float64("density", 0.35, "fraction of cells alive in the initial soup")
	pattern := flag.String("pattern", "", "stamp a pattern at the board center (glider, blinker or block)")
	seed := flag.Int64("seed", 1337, "base seed, soup i runs with seed+i")
	edges := flag.String("edges", "closed", "edge behavior (closed or wrap)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *runs <= 0 {
		log.Fatalf("runs must be positive, got %d", *runs)
	}
	switch *pattern {
	case "", "glider", "blinker", "block":
	default:
		log.Fatalf("unknown pattern %q", *pattern)
	}

	cfg := life.DefaultConfig()
	cfg.Rows = *rows
	cfg.Cols = *cols
	cfg.CellSize = 1
	cfg.Edges = life.EdgeMode(*edges)

	fmt.Printf("Sweeping %d soups (%d workers, up to %d generations each)\n", *runs, *workers, *gens)

	start := time.Now()
	results := make([]soupResult, *runs)
	var g errgroup.Group
	g.SetLimit(*workers)
	for i := 0; i < *runs; i++ {
		g.Go(func() error {
			res, err := runSoup(cfg, *seed+int64(i), *gens, *density, *pattern)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	extinct, settled, active := 0, 0, 0
	var genTotal, popTotal int
	for _, res := range results {
		switch {
		case res.extinctAt > 0:
			extinct++
		case res.settledAt > 0:
			settled++
		default:
			active++
		}
		genTotal += res.generations
		popTotal += res.finalPop
	}

	sort.Slice(results, func(i, j int) bool { return results[i].peakPop > results[j].peakPop })
	elapsed := time.Since(start)

	pct := func(n int) float64 { return 100 * float64(n) / float64(len(results)) }
	fmt.Printf("\n%d extinct (%.0f%%), %d settled (%.0f%%), %d still active after %d generations total\n",
		extinct, pct(extinct), settled, pct(settled), active, genTotal)
	fmt.Printf("Mean final population %.1f\n", float64(popTotal)/float64(len(results)))
	fmt.Printf("\nTop 5 by peak population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}

// runSoup simulates one random soup until it dies out, repeats with period
// one or two, or hits the generation cap.
func runSoup(cfg life.Config, seed int64, gens int, density float64, pattern string) (soupResult, error) {
	cfg.Seed = seed
	board, err := life.NewWithConfig(cfg)
	if err != nil {
		return soupResult{}, err
	}
	board.Fill(density)
	stampCenter(board, pattern)

	var cells []bool
	hashBuf := make([]byte, cfg.Rows*cfg.Cols)
	cells = board.Snapshot(cells)
	prev := boardDigest(cells, hashBuf)
	var prevPrev [md5.Size]byte

	res := soupResult{seed: seed, peakPop: board.Population()}
	stats := core.NewRunStats()
	for gen := 1; gen <= gens; gen++ {
		stepStart := time.Now()
		board.Advance()
		pop := board.Population()
		stats.Record(gen, pop, time.Since(stepStart))

		res.generations = gen
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 {
			res.extinctAt = gen
			break
		}

		cells = board.Snapshot(cells)
		digest := boardDigest(cells, hashBuf)
		if digest == prev || digest == prevPrev {
			res.settledAt = gen
			break
		}
		prevPrev = prev
		prev = digest
	}

	res.finalPop = board.Population()
	res.avgPop = stats.AveragePopulation
	res.gps = stats.GenerationsPerSecond
	return res, nil
}

func stampCenter(board *life.Life, pattern string) {
	cx, cy := board.Cols()/2-1, board.Rows()/2-1
	switch pattern {
	case "glider":
		board.StampGlider(cx, cy)
	case "blinker":
		board.StampBlinker(cx, cy)
	case "block":
		board.StampBlock(cx, cy)
	}
}

func boardDigest(cells []bool, buf []byte) [md5.Size]byte {
	for i, alive := range cells {
		if alive {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
	return md5.Sum(buf)
}
