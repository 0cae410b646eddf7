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

// Per-architecture hardware limits, keyed on the compute capability. All of
// the lookups below return the zero value for capabilities this package does
// not know about; callers decide whether that matters.

// ArchitectureName returns the marketing name of the architecture
// generation, e.g. "Turing" for compute capability 7.5, or "" when unknown.
func (c ComputeCapability) ArchitectureName() string {
	switch c.Major {
	case 1:
		return "Tesla"
	case 2:
		return "Fermi"
	case 3:
		return "Kepler"
	case 5:
		return "Maxwell"
	case 6:
		return "Pascal"
	case 7:
		if c.Minor >= 5 {
			return "Turing"
		}
		return "Volta"
	case 8:
		if c.Minor >= 9 {
			return "Ada Lovelace"
		}
		return "Ampere"
	case 9:
		return "Hopper"
	}
	return ""
}

// MaxWarpSchedulingsPerProcessorCycle returns how many warps a single
// multiprocessor can issue instructions for in one cycle.
func (c ComputeCapability) MaxWarpSchedulingsPerProcessorCycle() uint32 {
	switch {
	case c.Major == 1:
		return 1
	case c.Major == 2:
		return 2
	case c.Major >= 3:
		return 4
	}
	return 0
}

// MaxResidentWarpsPerProcessor returns the maximum number of warps that can
// be resident on a single multiprocessor at once.
func (c ComputeCapability) MaxResidentWarpsPerProcessor() uint32 {
	switch c.Major {
	case 1:
		if c.Minor < 2 {
			return 24
		}
		return 32
	case 2:
		return 48
	case 3, 5, 6:
		return 64
	case 7:
		if c.Minor >= 5 {
			return 32
		}
		return 64
	case 8:
		if c.Minor == 0 {
			return 64
		}
		return 48
	case 9:
		return 64
	}
	return 0
}

// MaxInFlightThreadsPerProcessor returns the number of threads a single
// multiprocessor can make progress on within one cycle.
func (c ComputeCapability) MaxInFlightThreadsPerProcessor() uint32 {
	switch c.Major {
	case 1:
		return 8
	case 2:
		if c.Minor == 0 {
			return 32
		}
		return 48
	case 3:
		return 192
	case 5:
		return 128
	case 6:
		if c.Minor == 0 {
			return 64
		}
		return 128
	case 7:
		return 64
	case 8:
		if c.Minor == 0 {
			return 64
		}
		return 128
	case 9:
		return 128
	}
	return 0
}

// MaxSharedMemoryPerBlock returns the default limit on shared memory usable
// by a single block, in bytes. Later architectures can opt in to more via a
// function attribute; that opt-in ceiling is not reflected here.
func (c ComputeCapability) MaxSharedMemoryPerBlock() SharedMemorySize {
	switch {
	case c.Major == 1:
		return 16 * 1024
	case c.Major >= 2 && c.Major <= 9:
		return 48 * 1024
	}
	return 0
}
