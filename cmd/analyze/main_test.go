package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlayGameTerminates(t *testing.T) {
	result := playGame(1, policyRandom, 5000)

	if result.Moves <= 0 {
		t.Errorf("Expected at least one move, got %d", result.Moves)
	}
	if result.Score < 0 {
		t.Errorf("Expected non-negative score, got %d", result.Score)
	}
	if result.MaxTile < 2 {
		t.Errorf("Expected max tile of at least 2, got %d", result.MaxTile)
	}
}

func TestPlayGameDeterministic(t *testing.T) {
	first := playGame(42, policyRandom, 5000)
	second := playGame(42, policyRandom, 5000)

	if first != second {
		t.Errorf("Expected identical results for the same seed, got %+v and %+v", first, second)
	}
}

func TestPlayGameGreedy(t *testing.T) {
	result := playGame(7, policyGreedy, 5000)

	if result.Moves <= 0 {
		t.Errorf("Expected at least one move, got %d", result.Moves)
	}

	again := playGame(7, policyGreedy, 5000)
	if result != again {
		t.Errorf("Expected greedy policy to be deterministic, got %+v and %+v", result, again)
	}
}

func TestPlayGameRespectsMoveCap(t *testing.T) {
	result := playGame(1, policyRandom, 3)

	if result.Moves > 3 {
		t.Errorf("Expected at most 3 moves, got %d", result.Moves)
	}
}

func TestRunAnalysis(t *testing.T) {
	results := runAnalysis(5, 100, policyRandom, 500)

	if len(results) != 5 {
		t.Fatalf("Expected 5 results, got %d", len(results))
	}

	// Different seeds should produce at least two distinct outcomes
	allSame := true
	for _, r := range results[1:] {
		if r != results[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Expected varied outcomes across seeds, all games were identical")
	}
}

func TestPrintSummary(t *testing.T) {
	results := []gameResult{
		{Score: 100, MaxTile: 64, Moves: 40},
		{Score: 300, MaxTile: 128, Moves: 80},
		{Score: 200, MaxTile: 64, Moves: 60},
	}

	var out bytes.Buffer
	printSummary(&out, results, policyRandom)
	text := out.String()

	if !strings.Contains(text, "3 games") {
		t.Errorf("Expected game count in summary, got:\n%s", text)
	}
	if !strings.Contains(text, "min 100, max 300, avg 200.0") {
		t.Errorf("Expected score stats in summary, got:\n%s", text)
	}
	if !strings.Contains(text, "64: 2 games (67%)") {
		t.Errorf("Expected tile histogram in summary, got:\n%s", text)
	}
}

func TestPrintSummaryEmpty(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, nil, policyRandom)

	if !strings.Contains(out.String(), "No games played") {
		t.Errorf("Expected empty notice, got:\n%s", out.String())
	}
}
