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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCapabilityCombinedNumber(t *testing.T) {
	testCases := []struct {
		capability ComputeCapability
		combined   uint32
		roundTrips bool
	}{
		{ComputeCapability{Major: 3, Minor: 5}, 35, true},
		{ComputeCapability{Major: 7, Minor: 0}, 70, true},
		{ComputeCapability{Major: 7, Minor: 5}, 75, true},
		{ComputeCapability{Major: 8, Minor: 6}, 86, true},
		// The combined encoding assumes a single-digit minor version:
		// (7, 15) encodes to 85 and decodes to (8, 5).
		{ComputeCapability{Major: 7, Minor: 15}, 85, false},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			require.Equal(t, tc.combined, tc.capability.AsCombinedNumber())
			decoded := ParseCombinedNumber(tc.capability.AsCombinedNumber())
			if tc.roundTrips {
				require.Equal(t, tc.capability, decoded)
			} else {
				require.NotEqual(t, tc.capability, decoded)
			}
		})
	}
}

func TestComputeCapabilityIsValid(t *testing.T) {
	testCases := []struct {
		capability ComputeCapability
		expected   bool
	}{
		{ComputeCapability{Major: 0, Minor: 0}, false},
		{ComputeCapability{Major: 0, Minor: 1}, false},
		{ComputeCapability{Major: 1, Minor: 0}, false},
		{ComputeCapability{Major: 1, Minor: 1}, true},
		{ComputeCapability{Major: 7, Minor: 5}, true},
		{ComputeCapability{Major: 9998, Minor: 9998}, true},
		{ComputeCapability{Major: 9999, Minor: 1}, false},
		{ComputeCapability{Major: 1, Minor: 9999}, false},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.capability.IsValid())
		})
	}
}

func TestComputeCapabilityOrdering(t *testing.T) {
	volta := MakeComputeCapability(7, 0)
	turing := MakeComputeCapability(7, 5)
	ampere := MakeComputeCapability(8, 0)

	require.True(t, volta.LessThan(turing))
	require.True(t, turing.LessThan(ampere))
	require.True(t, volta.LessThan(ampere))
	require.True(t, ampere.AtLeast(MakeComputeCapability(7, 9)))
	require.True(t, turing.AtLeast(turing))
	require.False(t, turing.LessThan(turing))

	require.Equal(t, 0, turing.Compare(MakeComputeCapability(7, 5)))
	require.Equal(t, -1, volta.Compare(turing))
	require.Equal(t, 1, ampere.Compare(turing))

	require.Equal(t, turing, MakeComputeCapability(7, 5))
	require.NotEqual(t, volta, turing)
}

func TestComputeCapabilityString(t *testing.T) {
	require.Equal(t, "7.5", MakeComputeCapability(7, 5).String())
	require.Equal(t, "8.0", MakeComputeCapability(8, 0).String())
}
