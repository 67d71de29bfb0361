// Command analyze runs batches of self-play games and prints outcome
// statistics: score range, average move count, and how often each max
// tile was reached. Useful for eyeballing spawn odds and comparing
// movement policies without sitting through games by hand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rmacedo/twenty48/game/engine"
	"github.com/rmacedo/twenty48/game/random"
	"github.com/urfave/cli/v3"
)

const (
	policyRandom = "random"
	policyGreedy = "greedy"
)

// greedyOrder is the fixed preference of the greedy policy: keep tiles
// piled toward the bottom-left corner, move up only when stuck.
var greedyOrder = []engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}

// gameResult captures the outcome of a single self-play game.
type gameResult struct {
	Score   int
	MaxTile int
	Moves   int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Run self-play games and summarize the outcomes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "games",
				Value: 100,
				Usage: "number of games to play",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "base seed; game i uses seed+i",
			},
			&cli.StringFlag{
				Name:  "policy",
				Value: policyRandom,
				Usage: "movement policy: random or greedy",
			},
			&cli.IntFlag{
				Name:  "max-moves",
				Value: 5000,
				Usage: "abort a game after this many moves",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			policy := cmd.String("policy")
			if policy != policyRandom && policy != policyGreedy {
				return fmt.Errorf("unknown policy %q (use %s or %s)", policy, policyRandom, policyGreedy)
			}

			games := cmd.Int("games")
			if games <= 0 {
				return fmt.Errorf("games must be positive, got %d", games)
			}

			results := runAnalysis(games, cmd.Int64("seed"), policy, cmd.Int("max-moves"))
			printSummary(os.Stdout, results, policy)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runAnalysis plays the requested number of games, each on its own
// deterministic seed so runs are reproducible.
func runAnalysis(games int, baseSeed int64, policy string, maxMoves int) []gameResult {
	results := make([]gameResult, 0, games)
	for i := 0; i < games; i++ {
		results = append(results, playGame(baseSeed+int64(i), policy, maxMoves))
	}
	return results
}

// playGame plays one full game with the given policy until no moves
// remain or the move cap is hit.
func playGame(seed int64, policy string, maxMoves int) gameResult {
	board := engine.NewBoard(random.NewSeeded(seed))

	// The policy draws from its own stream so it never perturbs the
	// board's spawn sequence.
	picker := random.NewSeeded(seed + 1)

	moves := 0
	for board.HasMoves() && moves < maxMoves {
		switch policy {
		case policyGreedy:
			for _, dir := range greedyOrder {
				if res := board.Move(dir); res.Moved {
					break
				}
			}
			moves++
		default:
			dirs := engine.Directions()
			if res := board.Move(dirs[picker.IntN(len(dirs))]); res.Moved {
				moves++
			}
		}
	}

	return gameResult{
		Score:   board.Score(),
		MaxTile: board.MaxTile(),
		Moves:   moves,
	}
}

// printSummary writes aggregate statistics for a batch of games.
func printSummary(w io.Writer, results []gameResult, policy string) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No games played")
		return
	}

	minScore := results[0].Score
	maxScore := results[0].Score
	totalScore := 0
	totalMoves := 0
	tileCounts := make(map[int]int)

	for _, r := range results {
		if r.Score < minScore {
			minScore = r.Score
		}
		if r.Score > maxScore {
			maxScore = r.Score
		}
		totalScore += r.Score
		totalMoves += r.Moves
		tileCounts[r.MaxTile]++
	}

	fmt.Fprintf(w, "\n=== Self-play summary (%d games, policy: %s) ===\n", len(results), policy)
	fmt.Fprintf(w, "Score: min %d, max %d, avg %.1f\n", minScore, maxScore, float64(totalScore)/float64(len(results)))
	fmt.Fprintf(w, "Moves: avg %.1f\n", float64(totalMoves)/float64(len(results)))

	tiles := make([]int, 0, len(tileCounts))
	for tile := range tileCounts {
		tiles = append(tiles, tile)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiles)))

	fmt.Fprintf(w, "Max tile reached:\n")
	for _, tile := range tiles {
		count := tileCounts[tile]
		fmt.Fprintf(w, "  %5d: %d games (%.0f%%)\n", tile, count, 100*float64(count)/float64(len(results)))
	}
}
