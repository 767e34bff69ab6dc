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
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/cspace-project/gocs/data"
)

// DefaultFocus is the focus used by HalfNormalReal and HalfNormalInt
// when the caller passes a focus <= 0.
const DefaultFocus = 3.0

// RNG is a pseudo-random number engine. An instance must not be used
// by multiple goroutines at once; every method advances the generator
// state. Construction, however, is safe to perform concurrently, and
// every constructed instance receives a distinct seed.
type RNG struct {
	src  *rand.Rand
	seed uint64
}

// NewRNG returns a new RNG instance seeded from the package-level
// seed source. When SetSeed has fixed the source, the instance's
// stream is reproducible across runs.
func NewRNG() *RNG {
	return NewRNGFrom(defaultSeeds)
}

// NewRNGFrom returns a new RNG instance seeded from the provided
// seed source.
func NewRNGFrom(seeds *SeedSource) *RNG {
	return NewRNGWithSeed(seeds.Next())
}

// NewRNGWithSeed returns a new RNG instance seeded directly with
// seed. Two instances constructed with the same seed produce
// identical draw sequences.
func NewRNGWithSeed(seed uint64) *RNG {
	return &RNG{
		src:  rand.New(rand.NewPCG(seed, 0)),
		seed: seed,
	}
}

// Seed returns the seed this instance was constructed with. Passing
// it to NewRNGWithSeed replays the instance's draw sequence.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Uniform01 returns a random real from the interval [0, 1).
func (r *RNG) Uniform01() float64 {
	return r.src.Float64()
}

// UniformReal returns a random real from the interval [lower, upper).
// It panics if lower > upper.
func (r *RNG) UniformReal(lower, upper float64) float64 {
	if lower > upper {
		panic("sample: lower bound exceeds upper bound")
	}
	return (upper-lower)*r.src.Float64() + lower
}

// UniformInt returns a random integer from the interval
// [lower, upper], inclusive on both ends.
func (r *RNG) UniformInt(lower, upper int) int {
	v := int(math.Floor(r.UniformReal(float64(lower), float64(upper)+1)))
	// the floor may land on upper+1 when the underlying draw rounds
	// up to the interval end; the clamp keeps the result in range
	return min(v, upper)
}

// UniformBool returns a random boolean.
func (r *RNG) UniformBool() bool {
	return r.src.Float64() <= 0.5
}

// Gaussian01 returns a random real drawn from the normal distribution
// with mean 0 and variance 1.
func (r *RNG) Gaussian01() float64 {
	return r.src.NormFloat64()
}

// Gaussian returns a random real drawn from the normal distribution
// with the given mean and standard deviation.
func (r *RNG) Gaussian(mean, stddev float64) float64 {
	return r.src.NormFloat64()*stddev + mean
}

// HalfNormalReal returns a random real from [rMin, rMax] biased
// towards rMax. The draw comes from a Gaussian with mean rMax - rMin
// and standard deviation (rMax - rMin) / focus, folded around the
// rMax axis back towards rMin. The higher the focus, the more mass
// concentrates near rMax; focus <= 0 selects DefaultFocus. The bias
// is the point of this distribution, not an artifact.
// It panics if rMin > rMax.
func (r *RNG) HalfNormalReal(rMin, rMax, focus float64) float64 {
	if rMin > rMax {
		panic("sample: lower bound exceeds upper bound")
	}
	if focus <= 0 {
		focus = DefaultFocus
	}

	mean := rMax - rMin
	v := r.Gaussian(mean, mean/focus)
	if v > mean {
		v = 2.0*mean - v
	}

	return rMin + clamp(v, 0, mean)
}

// HalfNormalInt returns a random integer from [rMin, rMax], inclusive
// on both ends, biased towards rMax. It is implemented on top of
// HalfNormalReal.
func (r *RNG) HalfNormalInt(rMin, rMax int, focus float64) int {
	v := int(math.Floor(r.HalfNormalReal(float64(rMin), float64(rMax)+1, focus)))
	return min(v, rMax)
}

// Quaternion returns a unit quaternion drawn uniformly from the
// rotation group SO(3), using the subgroup algorithm on three
// independent [0, 1) draws.
func (r *RNG) Quaternion() data.Quaternion {
	u1 := r.src.Float64()
	u2 := 2 * math.Pi * r.src.Float64()
	u3 := 2 * math.Pi * r.src.Float64()

	s1 := math.Sqrt(1 - u1)
	s2 := math.Sqrt(u1)

	return data.Quaternion{
		X: s1 * math.Sin(u2),
		Y: s1 * math.Cos(u2),
		Z: s2 * math.Sin(u3),
		W: s2 * math.Cos(u3),
	}
}

// EulerRPY returns a uniformly random orientation expressed as Euler
// roll-pitch-yaw angles in the intrinsic X-Y-Z convention. The
// orientation is uniform over SO(3); the marginal of pitch is
// therefore not uniform over its range.
func (r *RNG) EulerRPY() (roll, pitch, yaw float64) {
	return r.Quaternion().EulerXYZ()
}

// Disk returns a random point drawn uniformly by area from the
// annulus with inner radius rMin and outer radius rMax centered at
// the origin. It panics if rMin is negative or exceeds rMax.
func (r *RNG) Disk(rMin, rMax float64) (x, y float64) {
	if rMin < 0 || rMin > rMax {
		panic("sample: annulus radii out of order")
	}

	theta := r.UniformReal(0, 2*math.Pi)
	// interpolating between the squared radii keeps the density
	// constant per unit area instead of crowding the inner rim
	rho := math.Sqrt(r.UniformReal(rMin*rMin, rMax*rMax))

	return rho * math.Cos(theta), rho * math.Sin(theta)
}

// Ball returns a random point drawn uniformly by volume from the
// spherical shell with inner radius rMin and outer radius rMax
// centered at the origin. It panics if rMin is negative or exceeds
// rMax.
func (r *RNG) Ball(rMin, rMax float64) (x, y, z float64) {
	if rMin < 0 || rMin > rMax {
		panic("sample: ball radii out of order")
	}

	rho := math.Cbrt(r.UniformReal(rMin*rMin*rMin, rMax*rMax*rMax))
	cosTheta := r.UniformReal(-1, 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := r.UniformReal(0, 2*math.Pi)

	return rho * sinTheta * math.Cos(phi), rho * sinTheta * math.Sin(phi), rho * cosTheta
}

func clamp[T constraints.Ordered](v, lower, upper T) T {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
