package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/world-conquest/internal/config"
	"github.com/freeeve/world-conquest/internal/logger"
	"github.com/freeeve/world-conquest/internal/repository/postgres"
	"github.com/freeeve/world-conquest/internal/repository/redis"
	"github.com/freeeve/world-conquest/internal/sim"
)

func main() {
	logger.Init()
	cfg := config.Load()

	var (
		numGames int
		workers  int
		maxTurns int
		seed     int64
		dbURL    string
		redisURL string
		dryRun   bool
		noCache  bool
		jsonOut  bool
		listN    int
		replayID string
	)

	flag.IntVar(&numGames, "n", 1, "Number of games to run")
	flag.IntVar(&workers, "workers", cfg.Workers, "Concurrency (parallel games)")
	flag.IntVar(&maxTurns, "max-turns", cfg.MaxTurns, "Max turns before draw")
	flag.Int64Var(&seed, "seed", cfg.Seed, "Base seed (0 = random)")
	flag.StringVar(&dbURL, "db", cfg.DatabaseURL, "Database URL")
	flag.StringVar(&redisURL, "redis", cfg.RedisURL, "Redis URL")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip database and cache writes")
	flag.BoolVar(&noCache, "no-cache", false, "Archive to the database but skip Redis")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.IntVar(&listN, "list", 0, "List the N most recently finished games and exit")
	flag.StringVar(&replayID, "replay", "", "Print the archived turns of a game and exit")

	flag.Parse()

	if workers < 1 {
		workers = 1
	}
	readOnly := listN > 0 || replayID != ""
	if readOnly && dryRun {
		log.Fatal().Msg("-list and -replay read the archive and cannot be combined with -dry-run")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var stores sim.Stores
	var cache *redis.Client
	if !dryRun {
		db, err := postgres.Connect(ctx, dbURL, workers)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()
		stores.Games = postgres.NewGameRepo(db)
		stores.Turns = postgres.NewTurnRepo(db)

		if !noCache {
			cache, err = redis.NewClient(ctx, redisURL)
			if err != nil {
				log.Fatal().Err(err).Msg("Redis connection failed")
			}
			defer cache.Close()
			stores.Cache = cache
		}
	}

	switch {
	case replayID != "":
		if err := printReplay(ctx, stores, replayID, jsonOut); err != nil {
			log.Fatal().Err(err).Str("game", replayID).Msg("Replay failed")
		}
		return
	case listN > 0:
		if err := printFinished(ctx, stores, listN, jsonOut); err != nil {
			log.Fatal().Err(err).Msg("Listing games failed")
		}
		return
	}

	results := make([]*sim.Result, numGames)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numGames; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			gameSeed := seed
			if seed != 0 {
				gameSeed = seed + int64(idx)
			}

			result, err := sim.RunGame(ctx, sim.Config{MaxTurns: maxTurns, Seed: gameSeed, DryRun: dryRun}, stores)
			if err != nil {
				log.Error().Err(err).Int("game", idx+1).Msg("Game failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().
				Int("game", idx+1).
				Str("winner", result.Winner).
				Int("turn", result.FinalTurn).
				Int("battles", result.Battles).
				Int("captures", result.Captures).
				Msg("Game completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, numGames, errCount)
		return
	}
	printSummary(results, maxTurns, errCount)
	if cache != nil {
		printLeaderboard(ctx, cache)
	}
}

func printSummary(results []*sim.Result, maxTurns, errCount int) {
	type stats struct {
		wins    int
		held    int
		games   int
		maxHeld int
	}

	byPlayer := make(map[string]*stats)
	completed, draws, battles, captures := 0, 0, 0, 0
	for _, r := range results {
		if r == nil {
			continue
		}
		completed++
		battles += r.Battles
		captures += r.Captures
		if r.Winner == "" {
			draws++
		}
		for name, n := range r.Territories {
			s := byPlayer[name]
			if s == nil {
				s = &stats{}
				byPlayer[name] = s
			}
			s.games++
			s.held += n
			s.maxHeld = max(s.maxHeld, n)
		}
		if r.Winner != "" {
			if s := byPlayer[r.Winner]; s != nil {
				s.wins++
			}
		}
	}

	fmt.Printf("\nResults (%d games, max %d turns):\n", completed, maxTurns)
	if errCount > 0 {
		fmt.Printf("  (%d games failed)\n", errCount)
	}
	fmt.Printf("  %d draws, %d battles, %d captures\n", draws, battles, captures)

	names := make([]string, 0, len(byPlayer))
	for name := range byPlayer {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byPlayer[names[i]], byPlayer[names[j]]
		if a.wins != b.wins {
			return a.wins > b.wins
		}
		if a.held != b.held {
			return a.held > b.held
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		s := byPlayer[name]
		fmt.Printf("  %-24s  %d wins, survived %d games  -- avg territories: %.1f, best: %d\n",
			name, s.wins, s.games, float64(s.held)/float64(s.games), s.maxHeld)
	}
}

func printLeaderboard(ctx context.Context, cache *redis.Client) {
	top, err := cache.TopWinners(ctx, 5)
	if err != nil {
		log.Warn().Err(err).Msg("Leaderboard unavailable")
		return
	}
	if len(top) == 0 {
		return
	}
	fmt.Println("\nAll-time winners:")
	for i, w := range top {
		fmt.Printf("  %d. %-24s %d\n", i+1, w.Name, w.Wins)
	}
}

func printJSON(results []*sim.Result, total, errCount int) {
	out := struct {
		Total   int           `json:"total"`
		Errors  int           `json:"errors"`
		Results []*sim.Result `json:"results"`
	}{
		Total:   total,
		Errors:  errCount,
		Results: results,
	}
	if err := writeJSON(out); err != nil {
		log.Error().Err(err).Msg("Writing results failed")
	}
}

func printFinished(ctx context.Context, st sim.Stores, limit int, jsonOut bool) error {
	games, err := sim.ListFinished(ctx, st, limit)
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(games)
	}
	if len(games) == 0 {
		fmt.Println("No finished games.")
		return nil
	}
	fmt.Printf("\nLast %d finished games:\n", len(games))
	for _, g := range games {
		winner := g.Winner
		if winner == "" {
			winner = "(draw)"
		}
		fmt.Printf("  %s  seed %-20d  turn %-4d  %s\n", g.ID, g.Seed, g.Turns, winner)
	}
	return nil
}

func printReplay(ctx context.Context, st sim.Stores, gameID string, jsonOut bool) error {
	r, err := sim.LoadReplay(ctx, st, gameID)
	if err != nil {
		return err
	}
	if jsonOut {
		return writeJSON(r)
	}
	g := r.Game
	fmt.Printf("\nGame %s (seed %d, %d players, %s)\n", g.ID, g.Seed, g.Players, g.Status)
	if g.Winner != "" {
		fmt.Printf("  winner: %s on turn %d\n", g.Winner, g.Turns)
	}
	for _, t := range r.Turns {
		fmt.Printf("  turn %-4d  %2d battles  %2d captures  leader %s (%d)\n",
			t.Turn, t.Battles, t.Captures, t.Leader, t.LeaderTerritories)
	}
	if r.Live != nil {
		fmt.Printf("  live state at turn %d\n", r.Live.Turn)
	}
	return nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
