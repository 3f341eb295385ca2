package game

import (
	"testing"

	"github.com/sheikhrachel/termlife/model"
)

func TestHistory(t *testing.T) {
	g, err := model.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Seed(model.Blinker.At(2, 1))

	h := NewHistory(3)
	if h.Seen(g) {
		t.Fatal("first generation reported as seen")
	}
	g.Tick()
	if h.Seen(g) {
		t.Fatal("second phase reported as seen")
	}
	g.Tick()
	if !h.Seen(g) {
		t.Error("blinker cycle not detected")
	}
}

func TestHistoryForgetsOldStates(t *testing.T) {
	g, err := model.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	h := NewHistory(1)
	h.Seen(g)
	g.SetCell(0, 0, model.Alive)
	h.Seen(g)
	g.Clear()
	if h.Seen(g) {
		t.Error("state older than the history size reported as seen")
	}
}
