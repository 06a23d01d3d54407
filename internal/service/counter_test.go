package service

import (
	"sync"
	"testing"
)

func TestRequestCounter(t *testing.T) {
	c := NewRequestCounter()
	if got := c.Count(); got != 0 {
		t.Fatalf("fresh counter = %d, want 0", got)
	}

	c.Increment()
	c.Increment()
	if got := c.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestRequestCounter_Concurrent(t *testing.T) {
	c := NewRequestCounter()

	const goroutines, perGoroutine = 8, 1000
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if got := c.Count(); got != goroutines*perGoroutine {
		t.Errorf("Count() = %d, want %d", got, goroutines*perGoroutine)
	}
}
