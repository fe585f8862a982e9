package wire

import "sync"

// PoolOptions bounds what a Pool keeps between uses.
type PoolOptions struct {
	// Capacity is the backing size of newly allocated buffers.
	Capacity int
	// MaxRetained caps the free list length. Zero disables retention, so
	// every Acquire allocates; start from DefaultPoolOptions to reuse.
	MaxRetained int
	// MaxBufferBytes drops released buffers that grew past this size.
	MaxBufferBytes int
}

func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		Capacity:       DefaultCapacity,
		MaxRetained:    64,
		MaxBufferBytes: 1 << 20,
	}
}

// PoolStats is a point-in-time snapshot of pool activity.
type PoolStats struct {
	Hits     uint64
	Misses   uint64
	Releases uint64
	Dropped  uint64
	Idle     int
}

// Pool is a bounded free list of buffers. It is safe for concurrent use.
//
// A nil *Pool is valid: Acquire allocates and Release discards.
type Pool struct {
	mu    sync.Mutex
	opts  PoolOptions
	free  []*Buffer
	stats PoolStats
}

func NewPool(opts PoolOptions) *Pool {
	def := DefaultPoolOptions()
	if opts.Capacity <= 0 {
		opts.Capacity = def.Capacity
	}
	if opts.MaxRetained < 0 {
		opts.MaxRetained = 0
	}
	if opts.MaxBufferBytes <= 0 {
		opts.MaxBufferBytes = def.MaxBufferBytes
	}
	return &Pool{
		opts: opts,
		free: make([]*Buffer, 0, opts.MaxRetained),
	}
}

// Acquire pops a reset buffer, allocating when the free list is empty.
func (p *Pool) Acquire() *Buffer {
	if p == nil {
		return NewBuffer(DefaultCapacity)
	}
	p.mu.Lock()
	n := len(p.free)
	if n == 0 {
		p.stats.Misses++
		capacity := p.opts.Capacity
		p.mu.Unlock()
		return NewBuffer(capacity)
	}
	b := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	p.stats.Hits++
	p.mu.Unlock()
	b.Reset()
	return b
}

// Release hands b back. The caller must not touch b afterwards.
func (p *Pool) Release(b *Buffer) {
	if p == nil || b == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.Releases++
	if len(p.free) >= p.opts.MaxRetained || b.Cap() > p.opts.MaxBufferBytes {
		p.stats.Dropped++
		return
	}
	b.Reset()
	p.free = append(p.free, b)
}

// Finish returns the finalized bytes of b and releases it. Pooled buffers
// are copied out first so the result outlives the buffer.
func (p *Pool) Finish(b *Buffer) []byte {
	if p == nil {
		return b.Bytes()
	}
	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	p.Release(b)
	return out
}

func (p *Pool) Stats() PoolStats {
	if p == nil {
		return PoolStats{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Idle = len(p.free)
	return s
}
