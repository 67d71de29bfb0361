// Package random provides the randomness sources consumed by the board
// engine. A Source is created once per process run; restarting a game
// continues the same stream, which is what makes seeded runs reproducible
// across restarts.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// Source supplies the two operations the engine needs: a uniform choice
// from n candidates and a uniform float in [0,1).
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Rand is a Source backed by math/rand/v2's PCG generator.
type Rand struct {
	r *mathrand.Rand
}

// NewSeeded returns a deterministic Source. The same seed always produces
// the same stream of values.
func NewSeeded(seed int64) *Rand {
	u := uint64(seed)
	return &Rand{r: mathrand.New(mathrand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

// NewEntropy returns a Source seeded from system entropy. Runs are not
// reproducible.
func NewEntropy() *Rand {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// fixed seed rather than panic if it somehow does.
		return NewSeeded(0)
	}
	s1 := binary.LittleEndian.Uint64(buf[:8])
	s2 := binary.LittleEndian.Uint64(buf[8:])
	return &Rand{r: mathrand.New(mathrand.NewPCG(s1, s2))}
}

// IntN returns a uniform value in [0, n). n must be positive.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// mix derives well-distributed PCG seeds from an arbitrary int64 so that
// nearby seeds (0, 1, 2, ...) still produce unrelated streams.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
