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

import "fmt"

// ComputeCapability identifies a GPU architecture generation as a
// major.minor version pair.
type ComputeCapability struct {
	Major uint32 `json:"major" yaml:"major"`
	Minor uint32 `json:"minor" yaml:"minor"`
}

// MakeComputeCapability builds a ComputeCapability from its two components.
func MakeComputeCapability(major uint32, minor uint32) ComputeCapability {
	return ComputeCapability{Major: major, Minor: minor}
}

// AsCombinedNumber folds the version pair into the single number commonly
// used to tag architectures, e.g. 75 for compute capability 7.5. The
// encoding assumes Minor is a single decimal digit: for Minor >= 10 the
// result collides with a different capability and ParseCombinedNumber will
// not reproduce the original pair.
func (c ComputeCapability) AsCombinedNumber() uint32 {
	return c.Major*10 + c.Minor
}

// ParseCombinedNumber is the inverse of AsCombinedNumber, splitting the last
// decimal digit off as the minor version.
func ParseCombinedNumber(combined uint32) ComputeCapability {
	return ComputeCapability{Major: combined / 10, Minor: combined % 10}
}

// IsValid reports whether both components lie strictly between 0 and 9999.
// Zero is invalid for the major version too: 0.x is not a real architecture.
func (c ComputeCapability) IsValid() bool {
	return c.Major > 0 && c.Major < 9999 && c.Minor > 0 && c.Minor < 9999
}

// Compare orders capabilities lexicographically on (Major, Minor), returning
// -1, 0 or 1 as c sorts before, equal to or after other.
func (c ComputeCapability) Compare(other ComputeCapability) int {
	switch {
	case c.Major < other.Major:
		return -1
	case c.Major > other.Major:
		return 1
	case c.Minor < other.Minor:
		return -1
	case c.Minor > other.Minor:
		return 1
	}
	return 0
}

// LessThan reports whether c identifies an earlier architecture generation
// than other.
func (c ComputeCapability) LessThan(other ComputeCapability) bool {
	return c.Compare(other) < 0
}

// AtLeast reports whether c identifies the same or a later architecture
// generation than other.
func (c ComputeCapability) AtLeast(other ComputeCapability) bool {
	return c.Compare(other) >= 0
}

// String formats the capability the way the driver stack reports it, e.g.
// "7.5".
func (c ComputeCapability) String() string {
	return fmt.Sprintf("%d.%d", c.Major, c.Minor)
}
