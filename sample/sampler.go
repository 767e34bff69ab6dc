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

// Sampler is the interface implemented by all configuration samplers.
// Sample draws one configuration vector; it mutates the sampler's
// owned engine, so a sampler instance must not be shared between
// goroutines.
type Sampler interface {
	Sample() data.Vector
}

// checkBounds validates a bound pair: equal dimensions and
// lower[i] <= upper[i] component-wise.
func checkBounds(lower, upper data.Vector) error {
	if len(lower) != len(upper) {
		return errors.Wrap(internal.MalformedBounds, "bound vectors differ in dimension")
	}
	return lower.CheckBound(upper)
}

// checkBoundsDim validates a bound pair of a required dimension.
func checkBoundsDim(lower, upper data.Vector, dim int) error {
	if len(lower) != dim {
		return errors.Wrapf(internal.MalformedBounds, "bound vectors should have %d coordinates", dim)
	}
	return checkBounds(lower, upper)
}
