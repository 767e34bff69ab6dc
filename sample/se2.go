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

	"github.com/pkg/errors"

	"github.com/cspace-project/gocs/data"
	"github.com/cspace-project/gocs/internal"
)

// SE2 draws planar poses (x, y, heading) with the position uniform in
// an axis-aligned rectangle and the heading uniform in [-pi, pi).
// Each axis is bounded independently by the 2-dimensional lower and
// upper bound vectors.
type SE2 struct {
	rng          *RNG
	lower, upper data.Vector
}

// NewSE2 returns an instance of the SE2 sampler. It accepts lower and
// upper bound vectors of dimension 2 and returns an error if the
// bound pair is malformed.
func NewSE2(lower, upper data.Vector) (*SE2, error) {
	s := &SE2{rng: NewRNG()}
	if err := s.SetBound(lower, upper); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the bound pair. It must not be called
// concurrently with Sample on the same instance.
func (s *SE2) SetBound(lower, upper data.Vector) error {
	if err := checkBoundsDim(lower, upper, 2); err != nil {
		return err
	}
	s.lower, s.upper = lower.Copy(), upper.Copy()

	return nil
}

// Bound returns copies of the current lower and upper bound vectors.
func (s *SE2) Bound() (lower, upper data.Vector) {
	return s.lower.Copy(), s.upper.Copy()
}

// RNG returns the engine owned by this sampler.
func (s *SE2) RNG() *RNG {
	return s.rng
}

// Sample draws a planar pose as the 3-vector (x, y, heading).
func (s *SE2) Sample() data.Vector {
	q := make(data.Vector, 3)
	q[0] = s.rng.UniformReal(s.lower[0], s.upper[0])
	q[1] = s.rng.UniformReal(s.lower[1], s.upper[1])
	q[2] = s.rng.UniformReal(-math.Pi, math.Pi)

	return q
}

// DiskRegion bounds an annulus-shaped planar position region.
// Positions are drawn uniformly by area from the annulus with radii
// [RMin, RMax] around (CenterX, CenterY) and reported relative to the
// reference point (RefX, RefY), i.e. as disk point + center - ref.
type DiskRegion struct {
	CenterX, CenterY float64
	RMin, RMax       float64
	RefX, RefY       float64
}

// SE2Disk draws planar poses with the position from an annulus-shaped
// region and the heading uniform in [-pi, pi).
type SE2Disk struct {
	rng    *RNG
	region DiskRegion
}

// NewSE2Disk returns an instance of the SE2Disk sampler. It returns
// an error if the region's radii are negative or out of order.
func NewSE2Disk(region DiskRegion) (*SE2Disk, error) {
	s := &SE2Disk{rng: NewRNG()}
	if err := s.SetBound(region); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the annulus region. It must not be called
// concurrently with Sample on the same instance.
func (s *SE2Disk) SetBound(region DiskRegion) error {
	if region.RMin < 0 || region.RMin > region.RMax {
		return errors.Wrap(internal.MalformedRegion, "annulus radii out of order")
	}
	s.region = region

	return nil
}

// Bound returns the current annulus region.
func (s *SE2Disk) Bound() DiskRegion {
	return s.region
}

// RNG returns the engine owned by this sampler.
func (s *SE2Disk) RNG() *RNG {
	return s.rng
}

// Sample draws a planar pose as the 3-vector (x, y, heading).
func (s *SE2Disk) Sample() data.Vector {
	x, y := s.rng.Disk(s.region.RMin, s.region.RMax)

	q := make(data.Vector, 3)
	q[0] = x + s.region.CenterX - s.region.RefX
	q[1] = y + s.region.CenterY - s.region.RefY
	q[2] = s.rng.UniformReal(-math.Pi, math.Pi)

	return q
}
