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

package data

import (
	"math"
)

// Quaternion represents a rotation as a unit quaternion with
// components in the order (x, y, z, w).
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns a new Quaternion instance with the
// given components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Norm returns the Euclidean norm of quaternion q.
// For a quaternion representing a rotation the norm is 1.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns quaternion q scaled to unit norm.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	return Quaternion{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// EulerXYZ converts quaternion q to Euler angles using the intrinsic
// X-Y-Z (roll-pitch-yaw) axis convention, so that the rotation equals
// Rx(roll) * Ry(pitch) * Rz(yaw). Roll and yaw lie in [-pi, pi],
// pitch in [-pi/2, pi/2]. Near pitch = +-pi/2 roll and yaw describe
// the same axis; yaw is reported as 0 there.
func (q Quaternion) EulerXYZ() (roll, pitch, yaw float64) {
	r02 := 2 * (q.X*q.Z + q.Y*q.W)
	if r02 > 1 {
		r02 = 1
	} else if r02 < -1 {
		r02 = -1
	}

	r10 := 2 * (q.X*q.Y + q.Z*q.W)
	r11 := 1 - 2*(q.X*q.X+q.Z*q.Z)

	pitch = math.Asin(r02)
	if math.Abs(r02) > 1-1e-12 {
		// gimbal lock: only roll+yaw (or roll-yaw) is observable
		if r02 > 0 {
			roll = math.Atan2(r10, r11)
		} else {
			roll = -math.Atan2(r10, r11)
		}
		return roll, pitch, 0
	}

	r12 := 2 * (q.Y*q.Z - q.X*q.W)
	r22 := 1 - 2*(q.X*q.X+q.Y*q.Y)
	r00 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	r01 := 2 * (q.X*q.Y - q.Z*q.W)

	roll = math.Atan2(-r12, r22)
	yaw = math.Atan2(-r01, r00)

	return roll, pitch, yaw
}

// Rotate rotates a 3-dimensional vector v by quaternion q.
// The result is returned in a new Vector. Quaternion q is assumed
// to have unit norm.
func (q Quaternion) Rotate(v Vector) Vector {
	tx := 2 * (q.Y*v[2] - q.Z*v[1])
	ty := 2 * (q.Z*v[0] - q.X*v[2])
	tz := 2 * (q.X*v[1] - q.Y*v[0])

	res := make(Vector, 3)
	res[0] = v[0] + q.W*tx + q.Y*tz - q.Z*ty
	res[1] = v[1] + q.W*ty + q.Z*tx - q.X*tz
	res[2] = v[2] + q.W*tz + q.X*ty - q.Y*tx

	return res
}
