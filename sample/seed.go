/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"sync"
	"time"
)

// SeedSource hands out seeds for new RNG instances. It is safe for
// concurrent use, so engines may be constructed from any number of
// goroutines; every engine still receives a distinct seed.
//
// A source runs in one of two modes. After SetSeed the source is
// fixed: seeds are derived from the set value by an incrementing
// counter, with the first handed-out seed equal to the set value, so
// repeated runs reproduce identical engine streams. Otherwise seeds
// mix the counter with the wall clock, so engines constructed within
// the same clock tick still differ.
type SeedSource struct {
	mu        sync.Mutex
	fixed     bool
	base      uint64
	counter   uint64
	firstSeed uint64
	firstSet  bool
}

// defaultSeeds is the source behind NewRNG and the package-level
// SetSeed and Seed functions.
var defaultSeeds = NewSeedSource()

// NewSeedSource returns a new SeedSource instance in unfixed mode.
func NewSeedSource() *SeedSource {
	return &SeedSource{}
}

// SetSeed fixes the source: every seed handed out afterwards is
// derived deterministically from seed, starting with seed itself.
// Calling SetSeed again, with the same or another value, restarts the
// derivation.
func (s *SeedSource) SetSeed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fixed = true
	s.base = seed
	s.counter = 0
	s.firstSet = false
}

// Seed returns the seed used by the first engine constructed from
// this source, generating it if no engine has been constructed yet.
// Passing the returned value to SetSeed in a subsequent run
// reproduces the same engine streams. Useful for debugging.
func (s *SeedSource) Seed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.first()
}

// Next returns the seed for the next engine.
func (s *SeedSource) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.counter
	s.counter++
	if n == 0 {
		return s.first()
	}
	if s.fixed {
		return s.base + n
	}
	return autoSeed(n)
}

// first returns the first seed of the current derivation, generating
// and recording it on first use. Callers must hold s.mu.
func (s *SeedSource) first() uint64 {
	if !s.firstSet {
		if s.fixed {
			s.firstSeed = s.base
		} else {
			s.firstSeed = autoSeed(0)
		}
		s.firstSet = true
	}
	return s.firstSeed
}

// autoSeed derives a fresh seed from the wall clock and the engine
// counter. The counter term keeps seeds distinct even when many
// engines are constructed within one clock tick; the splitmix64
// finalizer spreads the structured input over the whole word.
func autoSeed(counter uint64) uint64 {
	return splitmix64(uint64(time.Now().UnixNano()) + counter*0x9e3779b97f4a7c15)
}

// splitmix64 is the finalizer of the SplitMix64 generator, used here
// as a bijective bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// SetSeed fixes the package-level seed source used by NewRNG: every
// sampler constructed afterwards draws a reproducible stream. Use it
// to make randomized runs replayable.
func SetSeed(seed uint64) {
	defaultSeeds.SetSeed(seed)
}

// Seed returns the seed actually used by the first engine constructed
// from the package-level source, whether fixed by SetSeed or
// auto-generated. Passing it to SetSeed at a subsequent execution
// ensures repeatable behaviour.
func Seed() uint64 {
	return defaultSeeds.Seed()
}
