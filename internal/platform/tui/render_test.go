package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/plus2048/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "2048")
	s.DrawText(1, 1, "@")

	got := RenderScreen(s)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "2048 " {
		t.Errorf("line 0 = %q, want %q", lines[0], "2048 ")
	}
	if lines[1] != " @   " {
		t.Errorf("line 1 = %q, want %q", lines[1], " @   ")
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColored(0, 0, "(@)", core.ColorMagenta)
	s.DrawTextColored(4, 0, "64", core.ColorBrightRed)

	got := RenderScreen(s)
	for _, want := range []string{"(@)", "64"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
}
