package app

import (
	"sync"
	"testing"
	"time"
)

func TestPartLocks_SerializesSamePart(t *testing.T) {
	locks := NewPartLocks()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("PART-001")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("expected 50 serialized increments, got %d", counter)
	}
	if locks.size() != 0 {
		t.Errorf("expected lock table to drain, got %d entries", locks.size())
	}
}

func TestPartLocks_DifferentPartsDoNotContend(t *testing.T) {
	locks := NewPartLocks()
	unlockA := locks.Lock("PART-A")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("PART-B")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("locking PART-B blocked behind PART-A")
	}
}
