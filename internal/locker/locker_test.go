package locker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameAccount(t *testing.T) {
	l := NewAccountLocker()

	const iterations = 1000
	var counter int
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				unlock := l.Lock("acc-1")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*iterations, counter)
}

func TestLockReleasesEntry(t *testing.T) {
	l := NewAccountLocker()

	unlock := l.Lock("acc-1")
	unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks)
}

func TestLockPairNoDeadlock(t *testing.T) {
	l := NewAccountLocker()

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Opposite orderings of the same pair; ordered acquisition must not
	// deadlock.
	for range 100 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := l.LockPair("a", "b")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := l.LockPair("b", "a")
			unlock()
		}()
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock in LockPair")
	}
}

func TestLockPairSameAccount(t *testing.T) {
	l := NewAccountLocker()

	unlock := l.LockPair("a", "a")
	require.NotNil(t, unlock)
	unlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks)
}
