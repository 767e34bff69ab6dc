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
	"github.com/pkg/errors"

	"github.com/cspace-project/gocs/data"
	"github.com/cspace-project/gocs/internal"
)

// SE3Euler draws spatial poses with the position uniform in an
// axis-aligned 3-dimensional box and the orientation uniform over the
// rotation group, expressed as intrinsic X-Y-Z (roll-pitch-yaw) Euler
// angles. Sampled vectors have the form (x, y, z, roll, pitch, yaw).
type SE3Euler struct {
	rng          *RNG
	lower, upper data.Vector
}

// NewSE3Euler returns an instance of the SE3Euler sampler. It accepts
// lower and upper bound vectors of dimension 3 and returns an error
// if the bound pair is malformed.
func NewSE3Euler(lower, upper data.Vector) (*SE3Euler, error) {
	s := &SE3Euler{rng: NewRNG()}
	if err := s.SetBound(lower, upper); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the bound pair. It must not be called
// concurrently with Sample on the same instance.
func (s *SE3Euler) SetBound(lower, upper data.Vector) error {
	if err := checkBoundsDim(lower, upper, 3); err != nil {
		return err
	}
	s.lower, s.upper = lower.Copy(), upper.Copy()

	return nil
}

// Bound returns copies of the current lower and upper bound vectors.
func (s *SE3Euler) Bound() (lower, upper data.Vector) {
	return s.lower.Copy(), s.upper.Copy()
}

// RNG returns the engine owned by this sampler.
func (s *SE3Euler) RNG() *RNG {
	return s.rng
}

// Sample draws a spatial pose as the 6-vector
// (x, y, z, roll, pitch, yaw).
func (s *SE3Euler) Sample() data.Vector {
	q := make(data.Vector, 6)
	q[0] = s.rng.UniformReal(s.lower[0], s.upper[0])
	q[1] = s.rng.UniformReal(s.lower[1], s.upper[1])
	q[2] = s.rng.UniformReal(s.lower[2], s.upper[2])

	q[3], q[4], q[5] = s.rng.Quaternion().EulerXYZ()

	return q
}

// SE3Quat draws spatial poses like SE3Euler but reports the
// orientation as quaternion components. Sampled vectors have the form
// (x, y, z, qx, qy, qz, qw).
type SE3Quat struct {
	rng          *RNG
	lower, upper data.Vector
}

// NewSE3Quat returns an instance of the SE3Quat sampler. It accepts
// lower and upper bound vectors of dimension 3 and returns an error
// if the bound pair is malformed.
func NewSE3Quat(lower, upper data.Vector) (*SE3Quat, error) {
	s := &SE3Quat{rng: NewRNG()}
	if err := s.SetBound(lower, upper); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the bound pair. It must not be called
// concurrently with Sample on the same instance.
func (s *SE3Quat) SetBound(lower, upper data.Vector) error {
	if err := checkBoundsDim(lower, upper, 3); err != nil {
		return err
	}
	s.lower, s.upper = lower.Copy(), upper.Copy()

	return nil
}

// Bound returns copies of the current lower and upper bound vectors.
func (s *SE3Quat) Bound() (lower, upper data.Vector) {
	return s.lower.Copy(), s.upper.Copy()
}

// RNG returns the engine owned by this sampler.
func (s *SE3Quat) RNG() *RNG {
	return s.rng
}

// Sample draws a spatial pose as the 7-vector
// (x, y, z, qx, qy, qz, qw).
func (s *SE3Quat) Sample() data.Vector {
	q := make(data.Vector, 7)
	q[0] = s.rng.UniformReal(s.lower[0], s.upper[0])
	q[1] = s.rng.UniformReal(s.lower[1], s.upper[1])
	q[2] = s.rng.UniformReal(s.lower[2], s.upper[2])

	rot := s.rng.Quaternion()
	q[3] = rot.X
	q[4] = rot.Y
	q[5] = rot.Z
	q[6] = rot.W

	return q
}

// SE3EulerBall draws spatial poses with the position uniform by
// volume in the ball of radius r around the origin and the
// orientation uniform over the rotation group, expressed as intrinsic
// X-Y-Z Euler angles.
type SE3EulerBall struct {
	rng *RNG
	r   float64
}

// NewSE3EulerBall returns an instance of the SE3EulerBall sampler.
// It returns an error if the radius is negative.
func NewSE3EulerBall(r float64) (*SE3EulerBall, error) {
	s := &SE3EulerBall{rng: NewRNG()}
	if err := s.SetBound(r); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the ball radius. It must not be called
// concurrently with Sample on the same instance.
func (s *SE3EulerBall) SetBound(r float64) error {
	if r < 0 {
		return errors.Wrap(internal.MalformedRegion, "ball radius should not be negative")
	}
	s.r = r

	return nil
}

// Bound returns the current ball radius.
func (s *SE3EulerBall) Bound() float64 {
	return s.r
}

// RNG returns the engine owned by this sampler.
func (s *SE3EulerBall) RNG() *RNG {
	return s.rng
}

// Sample draws a spatial pose as the 6-vector
// (x, y, z, roll, pitch, yaw).
func (s *SE3EulerBall) Sample() data.Vector {
	q := make(data.Vector, 6)
	q[0], q[1], q[2] = s.rng.Ball(0, s.r)
	q[3], q[4], q[5] = s.rng.Quaternion().EulerXYZ()

	return q
}

// SE3QuatBall draws spatial poses like SE3EulerBall but reports the
// orientation as quaternion components.
type SE3QuatBall struct {
	rng *RNG
	r   float64
}

// NewSE3QuatBall returns an instance of the SE3QuatBall sampler.
// It returns an error if the radius is negative.
func NewSE3QuatBall(r float64) (*SE3QuatBall, error) {
	s := &SE3QuatBall{rng: NewRNG()}
	if err := s.SetBound(r); err != nil {
		return nil, err
	}

	return s, nil
}

// SetBound replaces the ball radius. It must not be called
// concurrently with Sample on the same instance.
func (s *SE3QuatBall) SetBound(r float64) error {
	if r < 0 {
		return errors.Wrap(internal.MalformedRegion, "ball radius should not be negative")
	}
	s.r = r

	return nil
}

// Bound returns the current ball radius.
func (s *SE3QuatBall) Bound() float64 {
	return s.r
}

// RNG returns the engine owned by this sampler.
func (s *SE3QuatBall) RNG() *RNG {
	return s.rng
}

// Sample draws a spatial pose as the 7-vector
// (x, y, z, qx, qy, qz, qw).
func (s *SE3QuatBall) Sample() data.Vector {
	q := make(data.Vector, 7)
	q[0], q[1], q[2] = s.rng.Ball(0, s.r)

	rot := s.rng.Quaternion()
	q[3] = rot.X
	q[4] = rot.Y
	q[5] = rot.Z
	q[6] = rot.W

	return q
}
