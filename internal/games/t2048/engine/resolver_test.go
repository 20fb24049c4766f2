package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		tiles   map[Position]int
		hazards []Position
		merged  map[Position]bool
		src     Position
		dir     Direction
		want    Resolution
	}{
		{
			name:  "isolated tile slides to boundary",
			size:  4,
			tiles: map[Position]int{P(1, 1): 2},
			src:   P(1, 1),
			dir:   Right,
			want:  Resolution{Kind: KindMove, From: P(1, 1), To: P(1, 3), Value: 2, NewValue: 2},
		},
		{
			name:  "tile at boundary is unchanged",
			size:  4,
			tiles: map[Position]int{P(0, 2): 4},
			src:   P(0, 2),
			dir:   Up,
			want:  Resolution{Kind: KindMove, From: P(0, 2), To: P(0, 2), Value: 4, NewValue: 4},
		},
		{
			name:  "equal neighbor merges",
			size:  4,
			tiles: map[Position]int{P(0, 0): 2, P(0, 1): 2},
			src:   P(0, 1),
			dir:   Left,
			want:  Resolution{Kind: KindMerge, From: P(0, 1), To: P(0, 0), Value: 2, NewValue: 4},
		},
		{
			name:  "merge across gap",
			size:  4,
			tiles: map[Position]int{P(3, 0): 8, P(0, 0): 8},
			src:   P(0, 0),
			dir:   Down,
			want:  Resolution{Kind: KindMerge, From: P(0, 0), To: P(3, 0), Value: 8, NewValue: 16},
		},
		{
			name:  "unequal blocker stops the slide",
			size:  4,
			tiles: map[Position]int{P(2, 3): 4, P(2, 0): 2},
			src:   P(2, 0),
			dir:   Right,
			want:  Resolution{Kind: KindMove, From: P(2, 0), To: P(2, 2), Value: 2, NewValue: 2},
		},
		{
			name:   "merged tile does not merge again",
			size:   4,
			tiles:  map[Position]int{P(0, 0): 4, P(0, 2): 4},
			merged: map[Position]bool{P(0, 0): true},
			src:    P(0, 2),
			dir:    Left,
			want:   Resolution{Kind: KindMove, From: P(0, 2), To: P(0, 1), Value: 4, NewValue: 4},
		},
		{
			name:    "hazard ahead annihilates",
			size:    5,
			tiles:   map[Position]int{P(0, 3): 4},
			hazards: []Position{P(2, 3)},
			src:     P(0, 3),
			dir:     Down,
			want:    Resolution{Kind: KindAnnihilate, From: P(0, 3), To: P(2, 3), Value: 4},
		},
		{
			name:    "hazard takes priority over merge",
			size:    5,
			tiles:   map[Position]int{P(0, 3): 4, P(1, 3): 4},
			hazards: []Position{P(3, 3)},
			src:     P(0, 3),
			dir:     Down,
			want:    Resolution{Kind: KindAnnihilate, From: P(0, 3), To: P(3, 3), Value: 4},
		},
		{
			name:    "hazard behind is ignored",
			size:    5,
			tiles:   map[Position]int{P(3, 3): 2},
			hazards: []Position{P(2, 3)},
			src:     P(3, 3),
			dir:     Down,
			want:    Resolution{Kind: KindMove, From: P(3, 3), To: P(4, 3), Value: 2, NewValue: 2},
		},
		{
			name:    "hazard in another column is ignored",
			size:    5,
			tiles:   map[Position]int{P(0, 1): 2},
			hazards: []Position{P(2, 3)},
			src:     P(0, 1),
			dir:     Down,
			want:    Resolution{Kind: KindMove, From: P(0, 1), To: P(4, 1), Value: 2, NewValue: 2},
		},
		{
			name:    "horizontal travel finds hazard in the same row",
			size:    5,
			tiles:   map[Position]int{P(2, 0): 8},
			hazards: []Position{P(2, 3)},
			src:     P(2, 0),
			dir:     Right,
			want:    Resolution{Kind: KindAnnihilate, From: P(2, 0), To: P(2, 3), Value: 8},
		},
		{
			name: "empty source is a no-op",
			size: 3,
			src:  P(1, 1),
			dir:  Left,
			want: Resolution{Kind: KindMove, From: P(1, 1), To: P(1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.size)
			for _, h := range tt.hazards {
				b.markHazard(h)
			}
			for p, v := range tt.tiles {
				b.SetValue(p, v)
			}

			got := Resolve(b, tt.src, tt.dir, tt.merged)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Kind != KindMove || tt.want.To != tt.want.From, got.Changed())
		})
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	b := NewBoard(4)
	b.SetValue(P(0, 0), 2)
	b.SetValue(P(0, 3), 2)
	before := b.Values()

	Resolve(b, P(0, 0), Right, nil)

	assert.Equal(t, before, b.Values())
}
