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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspace-project/gocs/data"
	"github.com/cspace-project/gocs/internal"
	"github.com/cspace-project/gocs/sample"
)

func TestBox_SampleWithinBounds(t *testing.T) {
	var tests = []struct {
		name         string
		lower, upper data.Vector
	}{
		{name: "dim 1", lower: data.NewVector([]float64{-1}), upper: data.NewVector([]float64{1})},
		{name: "dim 3", lower: data.NewVector([]float64{0, -2, 10}), upper: data.NewVector([]float64{1, 2, 20})},
		{name: "dim 6", lower: data.NewConstantVector(6, -5), upper: data.NewConstantVector(6, 5)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := sample.NewBox(test.lower, test.upper)
			require.NoError(t, err)

			for i := 0; i < 1000; i++ {
				q := b.Sample()
				require.Len(t, q, len(test.lower))
				for j := range q {
					assert.True(t, q[j] >= test.lower[j] && q[j] < test.upper[j])
				}
			}
		})
	}
}

func TestBox_MalformedBounds(t *testing.T) {
	_, err := sample.NewBox(
		data.NewVector([]float64{0, 2}),
		data.NewVector([]float64{1, 1}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, internal.MalformedBounds)

	_, err = sample.NewBox(
		data.NewVector([]float64{0, 0}),
		data.NewVector([]float64{1, 1, 1}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, internal.MalformedBounds)
}

func TestBox_ReboundReseedReproduces(t *testing.T) {
	lower := data.NewVector([]float64{0, 0, 0})
	upper := data.NewVector([]float64{1, 1, 1})

	sample.SetSeed(42)
	b1, err := sample.NewBox(lower, upper)
	require.NoError(t, err)
	q1 := b1.Sample()

	sample.SetSeed(42)
	b2, err := sample.NewBox(data.NewConstantVector(3, 0), data.NewConstantVector(3, 2))
	require.NoError(t, err)
	require.NoError(t, b2.SetBound(lower, upper))
	q2 := b2.Sample()

	assert.Equal(t, q1, q2, "bound mutation plus reseed should reproduce the draw exactly")
}

func TestBox_BoundReturnsCopies(t *testing.T) {
	lower := data.NewVector([]float64{0, 0})
	upper := data.NewVector([]float64{1, 1})

	b, err := sample.NewBox(lower, upper)
	require.NoError(t, err)

	lo, up := b.Bound()
	assert.Equal(t, lower, lo)
	assert.Equal(t, upper, up)

	// mutating the returned vectors must not rebind the sampler
	lo[0] = 100
	up[0] = -100
	lo2, up2 := b.Bound()
	assert.Equal(t, lower, lo2)
	assert.Equal(t, upper, up2)
}

func TestBox_ImplementsSampler(t *testing.T) {
	var samplers []sample.Sampler

	b, err := sample.NewBox(data.NewConstantVector(2, 0), data.NewConstantVector(2, 1))
	require.NoError(t, err)
	se2, err := sample.NewSE2(data.NewConstantVector(2, 0), data.NewConstantVector(2, 1))
	require.NoError(t, err)
	disk, err := sample.NewSE2Disk(sample.DiskRegion{RMax: 1})
	require.NoError(t, err)
	se3e, err := sample.NewSE3Euler(data.NewConstantVector(3, 0), data.NewConstantVector(3, 1))
	require.NoError(t, err)
	se3q, err := sample.NewSE3Quat(data.NewConstantVector(3, 0), data.NewConstantVector(3, 1))
	require.NoError(t, err)
	se3eb, err := sample.NewSE3EulerBall(1)
	require.NoError(t, err)
	se3qb, err := sample.NewSE3QuatBall(1)
	require.NoError(t, err)

	samplers = append(samplers, b, se2, disk, se3e, se3q, se3eb, se3qb)
	dims := []int{2, 3, 3, 6, 7, 6, 7}
	for i, s := range samplers {
		assert.Len(t, s.Sample(), dims[i])
	}
}
