// Package sequence issues audit reference numbers. The counter is injected
// into the audit service rather than living as a package global, so a
// multi-process deployment can swap the in-memory counter for the Redis one.
package sequence

import (
	"context"
	"sync/atomic"
)

// Seed is the counter start; the first issued number is Seed+1.
const Seed = 100

// Sequence hands out monotonically increasing audit numbers.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

type memory struct {
	n atomic.Int64
}

// NewMemory returns a process-local sequence seeded at Seed.
func NewMemory() Sequence {
	m := &memory{}
	m.n.Store(Seed)
	return m
}

func (m *memory) Next(ctx context.Context) (int64, error) {
	return m.n.Add(1), nil
}
