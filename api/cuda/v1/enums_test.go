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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumAliasesAreIdentical(t *testing.T) {
	// Aliases are exact synonyms: same value, indistinguishable to equality
	// checks and switch dispatch.
	require.Equal(t, CachePreferenceNoPreference, CachePreferenceNone)
	require.Equal(t, CachePreferenceEqualL1AndSharedMemory, CachePreferenceEqual)
	require.Equal(t, CachePreferenceSharedMemoryOverL1, CachePreferenceShared)
	require.Equal(t, CachePreferenceL1OverSharedMemory, CachePreferenceL1)

	require.Equal(t, Synchronous, Sync)
	require.Equal(t, Asynchronous, Async)

	require.Equal(t, BigEndian, Big)
	require.Equal(t, LittleEndian, Little)
}

func TestEnumDriverValues(t *testing.T) {
	// The numeric assignments must stay interchangeable with the driver's
	// own constants.
	require.EqualValues(t, 0, CachePreferenceNoPreference)
	require.EqualValues(t, 1, CachePreferenceSharedMemoryOverL1)
	require.EqualValues(t, 2, CachePreferenceL1OverSharedMemory)
	require.EqualValues(t, 3, CachePreferenceEqualL1AndSharedMemory)

	require.EqualValues(t, 0, SharedMemoryBankSizeDeviceDefault)
	require.EqualValues(t, 1, SharedMemoryBankSizeFourBytesPerBank)
	require.EqualValues(t, 2, SharedMemoryBankSizeEightBytesPerBank)

	require.EqualValues(t, 0, SchedulingPolicyHeuristic)
	require.EqualValues(t, 1, SchedulingPolicySpin)
	require.EqualValues(t, 2, SchedulingPolicyYield)
	require.EqualValues(t, 4, SchedulingPolicyBlock)
}

func TestEnumStrings(t *testing.T) {
	require.Equal(t, "no-preference", CachePreferenceNone.String())
	require.Equal(t, "equal-l1-and-shared-memory", CachePreferenceEqual.String())
	require.Equal(t, "device-default", SharedMemoryBankSizeDeviceDefault.String())
	require.Equal(t, "block", SchedulingPolicyBlock.String())
	require.Equal(t, "unknown", SchedulingPolicy(3).String())
	require.Equal(t, "sync", Synchronous.String())
	require.Equal(t, "async", Asynchronous.String())
	require.Equal(t, "big-endian", BigEndian.String())
	require.Equal(t, "little-endian", Little.String())
}
