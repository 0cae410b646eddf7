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

import (
	"errors"
	"fmt"
)

var errInvalidLaunchConfig = errors.New("invalid launch configuration")

// LaunchConfiguration aggregates everything needed to schedule a kernel
// launch: the grid shape, the block shape, and how many bytes of dynamic
// shared memory each block gets. Two configurations are equal exactly when
// all three fields match, regardless of how they were constructed.
type LaunchConfiguration struct {
	// GridDimensions is the shape of the launch grid, in blocks per axis.
	GridDimensions GridDimensions `json:"gridDimensions" yaml:"gridDimensions"`
	// BlockDimensions is the shape of each block, in threads per axis.
	BlockDimensions BlockDimensions `json:"blockDimensions" yaml:"blockDimensions"`
	// DynamicSharedMemorySize is the number of bytes of dynamic shared
	// memory allocated to each block at launch.
	DynamicSharedMemorySize SharedMemorySize `json:"dynamicSharedMemorySize,omitempty" yaml:"dynamicSharedMemorySize,omitempty"`
}

// MakeLaunchConfig builds a LaunchConfiguration from its components.
func MakeLaunchConfig(grid GridDimensions, block BlockDimensions, dynamicSharedMemorySize SharedMemorySize) LaunchConfiguration {
	return LaunchConfiguration{
		GridDimensions:          grid,
		BlockDimensions:         block,
		DynamicSharedMemorySize: dynamicSharedMemorySize,
	}
}

// AssertValid checks that the configuration could actually launch work:
// both shapes must span at least one thread. The shared memory size needs no
// range check since its type cannot exceed the hardware ceiling.
func (c LaunchConfiguration) AssertValid() error {
	if c.GridDimensions.Empty() {
		return fmt.Errorf("%w: grid dimensions %v span no blocks", errInvalidLaunchConfig, c.GridDimensions)
	}
	if c.BlockDimensions.Empty() {
		return fmt.Errorf("%w: block dimensions %v span no threads", errInvalidLaunchConfig, c.BlockDimensions)
	}
	return nil
}
