package main

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func loadedSession(t *testing.T, values [][]int, holes ...engine.Position) *engine.Session {
	t.Helper()
	s, err := engine.NewSession(engine.Rules{Size: len(values)}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Load(values, holes); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func TestRunScriptCommands(t *testing.T) {
	s := loadedSession(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	var out strings.Builder
	script := "# merge the pair\nswipe left\n\njump\n"
	if err := runScript(&out, s, strings.NewReader(script), quietLogger()); err != nil {
		t.Fatalf("runScript() failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "> swipe left\n") {
		t.Errorf("output missing echoed command:\n%s", got)
	}
	if !strings.Contains(got, "dir=left changed=true lost=false score=4 delta=+4 merges=1 holes=0") {
		t.Errorf("output missing shift summary:\n%s", got)
	}
	if strings.Contains(got, "jump") {
		t.Errorf("unknown line should be skipped:\n%s", got)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}
}

func TestRunScriptBlackHole(t *testing.T) {
	s := loadedSession(t, [][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, engine.P(0, 1))

	var out strings.Builder
	if err := runScript(&out, s, strings.NewReader("left\n"), quietLogger()); err != nil {
		t.Fatalf("runScript() failed: %v", err)
	}
	if !strings.Contains(out.String(), "score=-8 delta=-8 merges=0 holes=1") {
		t.Errorf("expected annihilation summary:\n%s", out.String())
	}
}

func TestRunScriptHeadGesture(t *testing.T) {
	s := loadedSession(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// One cycle turning right arms the tracker; the return fires Right.
	script := "head 0.01 0 20\nhead -0.01 0 20\n"
	var out strings.Builder
	if err := runScript(&out, s, strings.NewReader(script), quietLogger()); err != nil {
		t.Fatalf("runScript() failed: %v", err)
	}
	if !strings.Contains(out.String(), "dir=right changed=true") {
		t.Errorf("expected a right shift:\n%s", out.String())
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}
}

func TestRunScriptReset(t *testing.T) {
	s := loadedSession(t, [][]int{
		{2, 2, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	var out strings.Builder
	if err := runScript(&out, s, strings.NewReader("left\nreset\n"), quietLogger()); err != nil {
		t.Fatalf("runScript() failed: %v", err)
	}
	if !strings.Contains(out.String(), "> reset\n") {
		t.Errorf("reset not echoed:\n%s", out.String())
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("after reset score=%d moves=%d, want 0 and 0", s.Score(), s.Moves())
	}
}

func TestParseHead(t *testing.T) {
	tests := []struct {
		args    []string
		dx, dy  float64
		count   int
		wantErr bool
	}{
		{[]string{"0.1", "-0.2"}, 0.1, -0.2, 1, false},
		{[]string{"0", "0.05", "20"}, 0, 0.05, 20, false},
		{[]string{"0.1"}, 0, 0, 0, true},
		{[]string{"x", "0"}, 0, 0, 0, true},
		{[]string{"0", "0", "0"}, 0, 0, 0, true},
		{[]string{"0", "0", "1", "2"}, 0, 0, 0, true},
	}

	for _, tt := range tests {
		dx, dy, count, err := parseHead(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHead(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if dx != tt.dx || dy != tt.dy || count != tt.count {
			t.Errorf("parseHead(%v) = (%v, %v, %d), want (%v, %v, %d)",
				tt.args, dx, dy, count, tt.dx, tt.dy, tt.count)
		}
	}
}

func TestLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := `board:
  - [2, 0, 0]
  - [0, 4, 0]
  - [0, 0, 0]
holes:
  - {row: 2, col: 0}
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := loadSession(path, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("loadSession() failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.Size != 3 || snap.Values[1][1] != 4 {
		t.Errorf("unexpected board: %+v", snap.Values)
	}
	if len(snap.Hazards) != 1 || snap.Hazards[0] != engine.P(2, 0) {
		t.Errorf("Hazards = %v, want [(2,0)]", snap.Hazards)
	}
}

func TestLoadSessionRejectsTileOnHole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := "board:\n  - [2, 0, 0]\n  - [0, 0, 0]\n  - [0, 0, 0]\nholes:\n  - {row: 0, col: 0}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSession(path, rand.New(rand.NewSource(1))); err == nil {
		t.Error("loadSession() should reject a tile on a hole")
	}
}
