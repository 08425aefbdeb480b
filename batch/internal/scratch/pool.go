// Package scratch pools the temporary columns batch kernels need between
// block calls.
package scratch

import "sync"

// Column is a reusable float64 slice.
type Column struct {
	data []float64
}

// Data returns the column's slice.
func (c *Column) Data() []float64 {
	return c.data
}

// resize sets the length to n, reusing capacity when it suffices.
func (c *Column) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(c.data) {
		c.data = c.data[:n]
		return
	}
	c.data = make([]float64, n)
}

// Pool hands out Columns.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Column{}
			},
		},
	}
}

// Default is shared by the batch operations.
var Default = NewPool()

// Get returns a Column of length n. Its contents are unspecified; callers
// overwrite every element before reading.
func (p *Pool) Get(n int) *Column {
	c := p.pool.Get().(*Column)
	c.resize(n)
	return c
}

// Put returns c to the pool. c must not be used afterwards.
func (p *Pool) Put(c *Column) {
	if c == nil {
		return
	}
	p.pool.Put(c)
}
