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

// The alias constants below are exact synonyms of their canonical
// counterparts, not approximations: they carry the same numeric value, so
// equality checks and switch dispatch treat them as fully identical. None of
// the enumerations validate out-of-range values arriving from the driver;
// that is the caller's concern.

// CachePreference expresses how a multiprocessor should split its on-chip
// memory between L1 cache and shared memory.
type CachePreference int32

const (
	CachePreferenceNoPreference           = CachePreference(cudaFuncCachePreferNone)
	CachePreferenceEqualL1AndSharedMemory = CachePreference(cudaFuncCachePreferEqual)
	CachePreferenceSharedMemoryOverL1     = CachePreference(cudaFuncCachePreferShared)
	CachePreferenceL1OverSharedMemory     = CachePreference(cudaFuncCachePreferL1)

	// Aliases
	CachePreferenceNone   = CachePreferenceNoPreference
	CachePreferenceEqual  = CachePreferenceEqualL1AndSharedMemory
	CachePreferenceShared = CachePreferenceSharedMemoryOverL1
	CachePreferenceL1     = CachePreferenceL1OverSharedMemory
)

// String returns a human-readable name for the cache preference.
func (p CachePreference) String() string {
	switch p {
	case CachePreferenceNoPreference:
		return "no-preference"
	case CachePreferenceEqualL1AndSharedMemory:
		return "equal-l1-and-shared-memory"
	case CachePreferenceSharedMemoryOverL1:
		return "prefer-shared-memory-over-l1"
	case CachePreferenceL1OverSharedMemory:
		return "prefer-l1-over-shared-memory"
	}
	return "unknown"
}

// SharedMemoryBankSize selects how wide a multiprocessor's shared memory
// banks are.
type SharedMemoryBankSize int32

const (
	SharedMemoryBankSizeDeviceDefault     = SharedMemoryBankSize(cudaSharedMemBankSizeDefault)
	SharedMemoryBankSizeFourBytesPerBank  = SharedMemoryBankSize(cudaSharedMemBankSizeFourByte)
	SharedMemoryBankSizeEightBytesPerBank = SharedMemoryBankSize(cudaSharedMemBankSizeEightByte)
)

// String returns a human-readable name for the bank size option.
func (b SharedMemoryBankSize) String() string {
	switch b {
	case SharedMemoryBankSizeDeviceDefault:
		return "device-default"
	case SharedMemoryBankSizeFourBytesPerBank:
		return "four-bytes-per-bank"
	case SharedMemoryBankSizeEightBytesPerBank:
		return "eight-bytes-per-bank"
	}
	return "unknown"
}

// SchedulingPolicy controls how a host thread waits when synchronizing with
// the device.
type SchedulingPolicy uint32

const (
	// SchedulingPolicyHeuristic lets the driver pick between spinning and
	// yielding based on the number of active CUDA contexts and processors.
	SchedulingPolicyHeuristic = SchedulingPolicy(cudaDeviceScheduleAuto)
	// SchedulingPolicySpin busy-waits, minimizing latency at the cost of a
	// fully occupied core.
	SchedulingPolicySpin = SchedulingPolicy(cudaDeviceScheduleSpin)
	// SchedulingPolicyYield yields the host thread between polls.
	SchedulingPolicyYield = SchedulingPolicy(cudaDeviceScheduleYield)
	// SchedulingPolicyBlock sleeps on a synchronization primitive until the
	// device work completes.
	SchedulingPolicyBlock = SchedulingPolicy(cudaDeviceScheduleBlockingSync)
)

// String returns a human-readable name for the scheduling policy.
func (p SchedulingPolicy) String() string {
	switch p {
	case SchedulingPolicyHeuristic:
		return "heuristic"
	case SchedulingPolicySpin:
		return "spin"
	case SchedulingPolicyYield:
		return "yield"
	case SchedulingPolicyBlock:
		return "block"
	}
	return "unknown"
}

// Synchronicity says whether an operation blocks the caller until it
// completes.
type Synchronicity bool

const (
	Asynchronous = Synchronicity(false)
	Synchronous  = Synchronicity(true)

	// Aliases
	Sync  = Synchronous
	Async = Asynchronous
)

// String returns a human-readable name for the synchronicity.
func (s Synchronicity) String() string {
	if s == Synchronous {
		return "sync"
	}
	return "async"
}

// Endianness is the byte order of a multi-byte value.
type Endianness bool

const (
	BigEndian    = Endianness(false)
	LittleEndian = Endianness(true)

	// Aliases
	Big    = BigEndian
	Little = LittleEndian
)

// String returns a human-readable name for the endianness.
func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}
