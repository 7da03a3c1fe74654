package auth

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Hasher bounds the number of in-flight argon2 operations. Each hash burns a
// CPU core and 64 MiB, so unbounded concurrent logins could starve request
// handling.
type Hasher struct {
	sem *semaphore.Weighted
}

// NewHasher returns a Hasher allowing at most maxConcurrent simultaneous
// hashing or verification calls.
func NewHasher(maxConcurrent int) *Hasher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Hasher{sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Hash derives a PHC-encoded argon2id hash of password, waiting for a free
// slot first. The ctx deadline applies only to the wait.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)
	return HashPassword(password)
}

// Verify checks password against a stored hash, waiting for a free slot first.
func (h *Hasher) Verify(ctx context.Context, password, encoded string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)
	return VerifyPassword(password, encoded)
}
