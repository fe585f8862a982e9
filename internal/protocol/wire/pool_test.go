package wire

import (
	"bytes"
	"sync"
	"testing"

	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func TestPoolReusesReleasedBuffers(t *testing.T) {
	testlog.Start(t)

	p := NewPool(DefaultPoolOptions())
	first := p.Acquire()
	first.WriteString("payload")
	p.Release(first)

	second := p.Acquire()
	if second != first {
		t.Fatalf("expected released buffer to be reused")
	}
	if second.Offset() != 0 || second.Len() != 0 {
		t.Fatalf("reused buffer not reset: offset=%d limit=%d", second.Offset(), second.Len())
	}

	stats := p.Stats()
	if stats.Misses != 1 || stats.Hits != 1 || stats.Releases != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPoolBoundsRetainedBuffers(t *testing.T) {
	testlog.Start(t)

	p := NewPool(PoolOptions{Capacity: 8, MaxRetained: 1, MaxBufferBytes: 64})
	a, b := p.Acquire(), p.Acquire()
	p.Release(a)
	p.Release(b)

	big := p.Acquire()
	big.WriteRaw(make([]byte, 200))
	p.Release(big)

	stats := p.Stats()
	if stats.Idle != 0 {
		t.Fatalf("expected oversized buffer dropped and pool drained, got idle=%d", stats.Idle)
	}
	if stats.Dropped != 2 {
		t.Fatalf("expected 2 dropped buffers, got %d", stats.Dropped)
	}
}

func TestPoolZeroMaxRetainedDisablesReuse(t *testing.T) {
	testlog.Start(t)

	p := NewPool(PoolOptions{})
	first := p.Acquire()
	p.Release(first)
	if second := p.Acquire(); second == first {
		t.Fatalf("zero MaxRetained should not reuse buffers")
	}
	stats := p.Stats()
	if stats.Hits != 0 || stats.Misses != 2 || stats.Dropped != 1 || stats.Idle != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPoolFinishDetachesResult(t *testing.T) {
	testlog.Start(t)

	p := NewPool(DefaultPoolOptions())
	b := p.Acquire()
	b.WriteString("first")
	out := p.Finish(b)

	reused := p.Acquire()
	reused.WriteString("other")
	if !bytes.Equal(out, append([]byte{0x05}, "first"...)) {
		t.Fatalf("finished bytes were overwritten: %q", out)
	}
}

func TestNilPoolAllocates(t *testing.T) {
	testlog.Start(t)

	var p *Pool
	b := p.Acquire()
	b.WriteVarint32(300)
	p.Release(b)
	out := p.Finish(b)
	if !bytes.Equal(out, []byte{0xac, 0x02}) {
		t.Fatalf("got %x", out)
	}
	if p.Stats() != (PoolStats{}) {
		t.Fatalf("nil pool should report zero stats")
	}
}

func TestPoolConcurrentUse(t *testing.T) {
	testlog.Start(t)

	p := NewPool(DefaultPoolOptions())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed uint32) {
			defer wg.Done()
			for j := uint32(0); j < 200; j++ {
				b := p.Acquire()
				b.WriteVarint32(seed*1000 + j)
				got, err := Wrap(p.Finish(b)).ReadVarint32()
				if err != nil || got != seed*1000+j {
					t.Errorf("goroutine %d: got %d err=%v", seed, got, err)
					return
				}
			}
		}(uint32(i))
	}
	wg.Wait()
}
