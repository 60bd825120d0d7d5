// Package random provides an unbiased uniform integer primitive over a
// pluggable 64-bit entropy source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// Source produces independent, uniformly distributed 64-bit values.
// *rand.PCG and *rand.ChaCha8 from math/rand/v2 satisfy it.
type Source interface {
	Uint64() uint64
}

// Uniform64 draws uniformly distributed integers from a half-open range.
// It is safe for concurrent use.
type Uniform64 struct {
	mu  sync.Mutex
	src Source
}

// New wraps src. Callers must not use src concurrently elsewhere.
func New(src Source) *Uniform64 {
	if src == nil {
		panic("random: source is required")
	}

	return &Uniform64{src: src}
}

// NewPCG returns a Uniform64 over a PCG generator with a fixed seed.
// Equal seeds produce equal sequences.
func NewPCG(seed1, seed2 uint64) *Uniform64 {
	return New(rand.NewPCG(seed1, seed2))
}

// NewSeeded returns a Uniform64 over a PCG generator seeded from crypto/rand.
func NewSeeded() (*Uniform64, error) {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	return NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	), nil
}

// NextInRange returns a value uniformly distributed over [lo, hi).
//
// Raw draws above limit fall in the last partial bucket of size
// 2^64 mod (hi-lo) and are rejected, so every residue is equally likely.
func (u *Uniform64) NextInRange(lo, hi uint64) (uint64, error) {
	if hi <= lo {
		return 0, domain.NewRangeError(lo, hi)
	}

	span := hi - lo
	limit := math.MaxUint64 - ((math.MaxUint64%span)+1)%span

	u.mu.Lock()
	defer u.mu.Unlock()

	for {
		r := u.src.Uint64()
		if r <= limit {
			return r%span + lo, nil
		}
	}
}

// Next returns a value uniformly distributed over [0, hi).
func (u *Uniform64) Next(hi uint64) (uint64, error) {
	return u.NextInRange(0, hi)
}
