package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPatternByName(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		if err != nil || p.Name != name {
			t.Errorf("PatternByName(%q) = %v, %v", name, p.Name, err)
		}
	}
	if _, err := PatternByName("spaceship"); errors.Cause(err) != ErrUnknownPattern {
		t.Errorf("unknown pattern error = %v", err)
	}
}

func TestPatternAt(t *testing.T) {
	got := Block.At(3, 4)
	want := []Coord{{3, 4}, {3, 5}, {4, 4}, {4, 5}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("At(3, 4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Block.Coords[0] != (Coord{0, 0}) {
		t.Error("At mutated the pattern")
	}
}
