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
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/cspace-project/gocs/internal"
)

// Vector wraps a slice of float64 coordinates. It is the configuration
// vector produced by the samplers: a fixed-size ordered tuple of reals
// whose dimension is determined by the sampler variant.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance
// with all coordinates set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the coordinates.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = x * vi
	}

	return res
}

// Apply applies a coordinate-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))
	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make(Vector, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Sub(other Vector) Vector {
	sub := make(Vector, len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of coordinates.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	prod := 0.0
	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}

// Norm returns the Euclidean norm of vector v.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// CheckBound checks component-wise that v does not exceed upper, i.e.
// that v[i] <= upper[i] holds for every coordinate.
// It returns an error if the dimensions differ or a coordinate of v
// is greater than the corresponding coordinate of upper.
func (v Vector) CheckBound(upper Vector) error {
	if len(v) != len(upper) {
		return errors.Wrap(internal.MalformedVector, "vectors should be of same length")
	}
	for i, c := range v {
		if c > upper[i] {
			return errors.Wrap(internal.MalformedBounds, "lower bound exceeds upper bound")
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return vStr
}
