// Package locker serializes balance-mutating operations per account id.
// Idempotent storage writes are the primary correctness tool; the locker
// keeps concurrent read-modify-write cycles against the same account from
// interleaving in the first place.
package locker

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

type AccountLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		locks: make(map[string]*lockEntry),
	}
}

// Lock acquires the mutex for the given account and returns its release
// function. Entries are refcounted so the map does not grow with the number
// of accounts ever seen.
func (l *AccountLocker) Lock(accountID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[accountID]
	if !ok {
		entry = &lockEntry{}
		l.locks[accountID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, accountID)
		}
		l.mu.Unlock()
	}
}

// LockPair acquires both account locks in id order so that two transfers
// between the same pair of accounts cannot deadlock.
func (l *AccountLocker) LockPair(a, b string) func() {
	if a == b {
		return l.Lock(a)
	}
	if b < a {
		a, b = b, a
	}

	unlockA := l.Lock(a)
	unlockB := l.Lock(b)

	return func() {
		unlockB()
		unlockA()
	}
}
