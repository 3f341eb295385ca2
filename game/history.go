package game

import "github.com/sheikhrachel/termlife/model"

// History keeps the hashes of recent generations to spot still lifes and short cycles
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	return &History{size: size}
}

// Seen reports whether g matches one of the recorded generations, then records it
func (h *History) Seen(g *model.Grid) bool {
	hash := g.GetGridHash()
	seen := false
	for _, prev := range h.hashes {
		if prev == hash {
			seen = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last size states
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return seen
}
