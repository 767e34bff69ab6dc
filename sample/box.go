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
	"github.com/cspace-project/gocs/data"
)

// Box draws points uniformly from an axis-aligned hyper-box. The
// dimension of the box, and of the sampled vectors, is the dimension
// of the bound vectors.
type Box struct {
	rng          *RNG
	lower, upper data.Vector
}

// NewBox returns an instance of the Box sampler. It accepts lower and
// upper bound vectors of equal dimension and returns an error if the
// bound pair is malformed.
func NewBox(lower, upper data.Vector) (*Box, error) {
	b := &Box{rng: NewRNG()}
	if err := b.SetBound(lower, upper); err != nil {
		return nil, err
	}

	return b, nil
}

// SetBound replaces the bound pair. It must not be called
// concurrently with Sample on the same instance.
func (b *Box) SetBound(lower, upper data.Vector) error {
	if err := checkBounds(lower, upper); err != nil {
		return err
	}
	b.lower, b.upper = lower.Copy(), upper.Copy()

	return nil
}

// Bound returns copies of the current lower and upper bound vectors.
func (b *Box) Bound() (lower, upper data.Vector) {
	return b.lower.Copy(), b.upper.Copy()
}

// RNG returns the engine owned by this sampler.
func (b *Box) RNG() *RNG {
	return b.rng
}

// Sample draws a point with every coordinate uniform in
// [lower[i], upper[i]).
func (b *Box) Sample() data.Vector {
	q := make(data.Vector, len(b.lower))
	for i := range q {
		q[i] = b.rng.UniformReal(b.lower[i], b.upper[i])
	}

	return q
}
