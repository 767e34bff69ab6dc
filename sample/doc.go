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

// Package sample includes samplers for drawing random configurations
// from bounded regions of planar and spatial pose space.
//
// Package sample provides the Sampler interface along with different
// implementations of this interface: axis-aligned box samplers,
// planar (SE2) pose samplers with box- or annulus-shaped position
// regions, and spatial (SE3) pose samplers with box- or ball-shaped
// position regions and orientations drawn uniformly from the rotation
// group, expressed as Euler angles or quaternions.
//
// All samplers draw from an RNG engine they own. Engines are
// deterministic: fixing the seed with SetSeed reproduces the exact
// draw sequence of every sampler constructed afterwards, which makes
// randomized motion-planning and testing runs replayable.
package sample
