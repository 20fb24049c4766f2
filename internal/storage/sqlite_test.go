package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048_blackhole", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "2048" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	other, err := store.TopScores("2048_blackhole", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 black hole score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 200)
	store.SaveScore("2048_endless", 300)
	store.SaveGame(GameRecord{GameID: "2048", Score: 200})
	store.SaveGame(GameRecord{GameID: "2048_endless", Score: 300})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("2048", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if games, _ := store.RecentGames("2048", 10); len(games) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(games))
	}

	if scores, _ := store.TopScores("2048_endless", 10); len(scores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
	if games, _ := store.RecentGames("2048_endless", 10); len(games) != 1 {
		t.Errorf("Endless games should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveGame(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGame(GameRecord{
		SessionID:     "ssh-1",
		GameID:        "2048_blackhole",
		Score:         148,
		MaxTile:       64,
		Moves:         57,
		Merges:        30,
		Annihilations: 4,
		Lost:          true,
	})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveGame() returned an empty id")
	}

	games, err := store.RecentGames("2048_blackhole", 5)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(games))
	}

	g := games[0]
	if g.ID != id || g.SessionID != "ssh-1" {
		t.Errorf("ids = (%q, %q), want (%q, %q)", g.ID, g.SessionID, id, "ssh-1")
	}
	if g.Score != 148 || g.MaxTile != 64 || g.Moves != 57 || g.Merges != 30 || g.Annihilations != 4 {
		t.Errorf("unexpected record: %+v", g)
	}
	if !g.Lost {
		t.Error("Lost should round-trip as true")
	}
	if g.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveGameGeneratesSessionID(t *testing.T) {
	store := openTestStore(t)

	id1, _ := store.SaveGame(GameRecord{GameID: "2048"})
	id2, _ := store.SaveGame(GameRecord{GameID: "2048"})
	if id1 == id2 {
		t.Errorf("generated ids should differ, both %q", id1)
	}

	games, err := store.RecentGames("2048", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	for _, g := range games {
		if g.SessionID == "" {
			t.Errorf("game %s has no session id", g.ID)
		}
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	for i := range 4 {
		store.SaveGame(GameRecord{GameID: "2048", Score: i})
	}
	store.SaveGame(GameRecord{GameID: "2048_endless", Score: 99})

	games, err := store.RecentGames("2048", 3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(games))
	}
	// Newest first
	if games[0].Score != 3 || games[2].Score != 1 {
		t.Errorf("unexpected order: %d, %d, %d", games[0].Score, games[1].Score, games[2].Score)
	}

	all, err := store.RecentGames("", 10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 games across modes, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("2048")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty mode: %+v", empty)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveGame(GameRecord{GameID: "2048", Score: 100, MaxTile: 32, Annihilations: 2, Lost: true})
	store.SaveGame(GameRecord{GameID: "2048", Score: 300, MaxTile: 128, Annihilations: 1})

	stats, err := store.GameStats("2048")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.BestTile != 128 {
		t.Errorf("BestTile = %d, want 128", stats.BestTile)
	}
	if stats.Annihilations != 3 {
		t.Errorf("Annihilations = %d, want 3", stats.Annihilations)
	}
	if stats.Losses != 1 {
		t.Errorf("Losses = %d, want 1", stats.Losses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["2048"] == nil {
		t.Errorf("AllGamesStats() = %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.plus2048/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".plus2048", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
