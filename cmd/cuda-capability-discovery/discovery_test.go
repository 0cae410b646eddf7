/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	spec "github.com/NVIDIA/go-cuda/api/cuda/v1"
)

func TestWantDevice(t *testing.T) {
	uuid := "GPU-4cf8db2d-06c0-7d70-1a51-e59b25b2c16c"

	testCases := []struct {
		refs     []spec.DeviceRef
		index    int
		uuid     string
		expected bool
	}{
		{nil, 0, "", true},
		{nil, 3, uuid, true},
		{[]spec.DeviceRef{"0"}, 0, "", true},
		{[]spec.DeviceRef{"0"}, 1, "", false},
		{[]spec.DeviceRef{"0", "2"}, 2, "", true},
		{[]spec.DeviceRef{spec.DeviceRef(uuid)}, 0, uuid, true},
		{[]spec.DeviceRef{spec.DeviceRef(uuid)}, 0, "GPU-ffffffff-0000-0000-0000-000000000000", false},
		// UUID references cannot match when the strategy reports no UUIDs.
		{[]spec.DeviceRef{spec.DeviceRef(uuid)}, 0, "", false},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			require.Equal(t, tc.expected, wantDevice(tc.refs, tc.index, tc.uuid))
		})
	}
}

func TestLaunchFits(t *testing.T) {
	device := DeviceInfo{
		Index:                   0,
		MaxThreadsPerBlock:      1024,
		MaxSharedMemoryPerBlock: 48 * 1024,
	}

	testCases := []struct {
		launch spec.LaunchConfiguration
		err    bool
	}{
		{
			launch: spec.MakeLaunchConfig(spec.Dimensions{X: 64, Y: 1, Z: 1}, spec.Dimensions{X: 256, Y: 1, Z: 1}, 0),
			err:    false,
		},
		{
			launch: spec.MakeLaunchConfig(spec.Dimensions{X: 64, Y: 1, Z: 1}, spec.Dimensions{X: 32, Y: 32, Z: 1}, 16*1024),
			err:    false,
		},
		{
			launch: spec.MakeLaunchConfig(spec.Dimensions{X: 64, Y: 1, Z: 1}, spec.Dimensions{X: 32, Y: 32, Z: 2}, 0),
			err:    true,
		},
		{
			launch: spec.MakeLaunchConfig(spec.Dimensions{X: 64, Y: 1, Z: 1}, spec.Dimensions{X: 256, Y: 1, Z: 1}, 0xFFFF),
			err:    true,
		},
		{
			launch: spec.MakeLaunchConfig(spec.Dimensions{X: 0, Y: 1, Z: 1}, spec.Dimensions{X: 256, Y: 1, Z: 1}, 0),
			err:    true,
		},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			err := launchFits(&tc.launch, device)
			if tc.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	// Limits the device did not report are not checked.
	unreported := DeviceInfo{Index: 1}
	launch := spec.MakeLaunchConfig(spec.Dimensions{X: 1, Y: 1, Z: 1}, spec.Dimensions{X: 2048, Y: 1, Z: 1}, 0xFFFF)
	require.NoError(t, launchFits(&launch, unreported))
}

func TestWriteSnapshot(t *testing.T) {
	snapshot := &Snapshot{
		DriverVersion: 12020,
		Devices: []DeviceInfo{
			{
				Index:             0,
				Name:              "NVIDIA A100-SXM4-40GB",
				ComputeCapability: spec.MakeComputeCapability(8, 0),
				Architecture:      "Ampere",
				TotalMemoryBytes:  42505273344,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "subdir", "devices.yaml")
	require.NoError(t, writeSnapshot(path, snapshot))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(out), "driverVersion: 12020")
	require.Contains(t, string(out), "name: NVIDIA A100-SXM4-40GB")
	require.Contains(t, string(out), "architecture: Ampere")
}
