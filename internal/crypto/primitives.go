package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

const (
	// Argon2id at the libsodium "interactive" profile (opslimit 2, memlimit 64 MiB).
	argonTime    = 2
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 1

	defaultMaxConcurrentDerivations = 4
)

// Primitives is the process-wide handle to the secure random source and the
// key derivation limits. It is created once, on first use, and is read-only
// afterwards.
type Primitives struct {
	random io.Reader
	slots  *semaphore.Weighted
	limit  int64
}

var (
	maxDerivations atomic.Int64
	primitivesOnce sync.Once
	primitives     *Primitives
)

func init() {
	maxDerivations.Store(defaultMaxConcurrentDerivations)
}

// SetMaxConcurrentDerivations bounds how many Argon2 derivations may run at the
// same time. Each derivation holds 64 MiB. It only has an effect when called
// before the first cryptographic operation of the process.
func SetMaxConcurrentDerivations(n int) {
	if n < 1 {
		n = 1
	}
	maxDerivations.Store(int64(n))
}

// Default returns the shared primitives provider, initialising it on the first
// call. Concurrent first callers block until initialisation finishes.
func Default() *Primitives {
	primitivesOnce.Do(func() {
		limit := maxDerivations.Load()
		primitives = &Primitives{
			random: rand.Reader,
			slots:  semaphore.NewWeighted(limit),
			limit:  limit,
		}
	})
	return primitives
}

// MaxConcurrentDerivations reports the semaphore width in effect.
func (p *Primitives) MaxConcurrentDerivations() int {
	return int(p.limit)
}

// RandomBytes returns n bytes from the secure random source.
func (p *Primitives) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(p.random, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// argon2id waits for a free derivation slot and then runs the hash to
// completion. There is no way to cancel a derivation once it has started.
func (p *Primitives) argon2id(password, salt []byte) []byte {
	// Background never expires, so Acquire only returns after a slot is taken.
	_ = p.slots.Acquire(context.Background(), 1)
	defer p.slots.Release(1)

	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeySize)
}
