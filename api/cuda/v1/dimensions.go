/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package v1

// Dimensions is the shape of a kernel grid or of a single block: one extent
// per axis. It matches the field order of the driver's dim3 struct so values
// can be handed to launch calls without conversion. Note that dim3 is three
// uints in a struct, it is not uint3.
type Dimensions struct {
	X uint32 `json:"x" yaml:"x"`
	Y uint32 `json:"y" yaml:"y"`
	Z uint32 `json:"z" yaml:"z"`
}

// GridDimensions is the shape of a grid, in blocks per axis.
type GridDimensions = Dimensions

// BlockDimensions is the shape of a block, in threads per axis.
type BlockDimensions = Dimensions

// Empty reports whether the shape spans nothing at all, i.e. whether any
// axis has extent zero.
func (d Dimensions) Empty() bool {
	return d.X == 0 || d.Y == 0 || d.Z == 0
}

// Volume returns the total number of positions in the shape. The extents are
// widened before multiplying, so products beyond 32 bits do not wrap.
func (d Dimensions) Volume() uint64 {
	return uint64(d.X) * uint64(d.Y) * uint64(d.Z)
}

// Dimensionality returns the number of axes with an extent greater than one,
// in the range 0 to 3. Launch code uses this to select between 1-D, 2-D and
// 3-D code paths.
func (d Dimensions) Dimensionality() int {
	n := 0
	for _, extent := range []uint32{d.X, d.Y, d.Z} {
		if extent > 1 {
			n++
		}
	}
	return n
}
