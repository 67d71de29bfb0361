package session

import (
	"testing"
	"time"

	"github.com/rmacedo/twenty48/game/config"
)

func seedPtr(v int64) *int64 { return &v }

func testConfig() *config.GameConfig {
	return &config.GameConfig{
		Name:        "Test",
		Description: "Session manager test preset",
		Seed:        seedPtr(1),
	}
}

func TestCreateGeneratesID(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if len(sess.ID) != 4 {
		t.Errorf("Expected 4-character session ID, got %q", sess.ID)
	}
	if sess.Board == nil {
		t.Fatal("Expected session to have a board")
	}
	if sess.Board.Score() != 0 {
		t.Errorf("Expected fresh board score 0, got %d", sess.Board.Score())
	}
}

func TestCreateSeededSessionsAreIdentical(t *testing.T) {
	m := NewManager()

	a, err := m.Create("one", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	b, err := m.Create("two", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if a.Board.Grid() != b.Board.Grid() {
		t.Errorf("Expected identical starting grids for the same seed:\n%v\n%v", a.Board.Grid(), b.Board.Grid())
	}
}

func TestCreateDuplicate(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("abcd", testConfig()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := m.Create("ABCD", testConfig()); err != ErrSessionAlreadyExists {
		t.Errorf("Expected ErrSessionAlreadyExists for case-insensitive duplicate, got %v", err)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	m := NewManager()

	created, err := m.Create("AbCd", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	got, err := m.Get("aBcD")
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if got != created {
		t.Error("Expected the same session instance")
	}
}

func TestGetNotFound(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("zzzz"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	m := NewManager()

	first, err := m.GetOrCreate("game", testConfig())
	if err != nil {
		t.Fatalf("Failed to get-or-create session: %v", err)
	}
	second, err := m.GetOrCreate("game", testConfig())
	if err != nil {
		t.Fatalf("Failed to get-or-create existing session: %v", err)
	}
	if first != second {
		t.Error("Expected GetOrCreate to return the existing session")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", m.Count())
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("abcd", testConfig()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if err := m.Delete("ABCD"); err != nil {
		t.Errorf("Failed to delete session: %v", err)
	}
	if err := m.Delete("abcd"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("abcd", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	before := sess.LastAccessedAt
	time.Sleep(time.Millisecond)
	if err := m.UpdateLastAccessed("abcd"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("Expected LastAccessedAt to advance")
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()

	old, err := m.Create("old1", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := m.Create("new1", testConfig()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	old.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 removed session, got %d", removed)
	}
	if _, err := m.Get("old1"); err != ErrSessionNotFound {
		t.Errorf("Expected expired session to be gone, got %v", err)
	}
	if _, err := m.Get("new1"); err != nil {
		t.Errorf("Expected fresh session to survive cleanup: %v", err)
	}
}
