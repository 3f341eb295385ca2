package model

import "testing"

func TestBufferPool(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get(16)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	p.Put(buf)

	for _, size := range []int{4, 16, 64} {
		if got := p.Get(size); len(got) != size {
			t.Errorf("Get(%d) returned len %d", size, len(got))
		}
	}
	p.Put(nil)
}
