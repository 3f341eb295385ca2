package model

import "sync"

// BufferPool recycles cell buffers between generations
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a buffer of exactly size cells, reallocating if the pooled one is too small
func (p *BufferPool) Get(size int) []Cell {
	buf := p.pool.Get().(*[]Cell)
	if cap(*buf) < size {
		return make([]Cell, size)
	}
	return (*buf)[:size]
}

// Put returns a buffer to the pool
func (p *BufferPool) Put(buf []Cell) {
	if buf == nil {
		return
	}
	p.pool.Put(&buf)
}
