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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseConfigFrom(t *testing.T) {
	testCases := []struct {
		input    string
		err      bool
		expected *Config
	}{
		{
			input: "",
			err:   true,
		},
		{
			input: "version: v1",
			err:   false,
			expected: &Config{
				Version: "v1",
			},
		},
		{
			input: "version: v2",
			err:   true,
		},
		{
			input: strings.TrimSpace(`
version: v1
flags:
  oneshot: true
  sleepInterval: 30s
  deviceDiscoveryStrategy: nvml
  devices: ["0", "GPU-4cf8db2d-06c0-7d70-1a51-e59b25b2c16c"]
`),
			err: false,
			expected: &Config{
				Version: "v1",
				Flags: Flags{
					CommandLineFlags{
						Oneshot:                 true,
						SleepInterval:           Duration(30 * time.Second),
						DeviceDiscoveryStrategy: "nvml",
						Devices:                 []DeviceRef{"0", "GPU-4cf8db2d-06c0-7d70-1a51-e59b25b2c16c"},
					},
				},
			},
		},
		{
			input: strings.TrimSpace(`
{
  "version": "v1",
  "defaultLaunch": {
    "gridDimensions": {"x": 64, "y": 1, "z": 1},
    "blockDimensions": {"x": 256, "y": 1, "z": 1},
    "dynamicSharedMemorySize": 4096
  }
}
`),
			err: false,
			expected: &Config{
				Version: "v1",
				DefaultLaunch: &LaunchConfiguration{
					GridDimensions:          Dimensions{X: 64, Y: 1, Z: 1},
					BlockDimensions:         Dimensions{X: 256, Y: 1, Z: 1},
					DynamicSharedMemorySize: 4096,
				},
			},
		},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			config, err := parseConfigFrom(strings.NewReader(tc.input))
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, config)
		})
	}
}

func TestConfigAssertValid(t *testing.T) {
	testCases := []struct {
		description string
		config      Config
		err         bool
	}{
		{
			description: "cuda strategy",
			config: Config{
				Version: Version,
				Flags:   Flags{CommandLineFlags{DeviceDiscoveryStrategy: DeviceDiscoveryStrategyCUDA}},
			},
			err: false,
		},
		{
			description: "nvml strategy with devices",
			config: Config{
				Version: Version,
				Flags: Flags{CommandLineFlags{
					DeviceDiscoveryStrategy: DeviceDiscoveryStrategyNVML,
					Devices:                 []DeviceRef{"0"},
				}},
			},
			err: false,
		},
		{
			description: "unknown strategy",
			config: Config{
				Version: Version,
				Flags:   Flags{CommandLineFlags{DeviceDiscoveryStrategy: "tegra"}},
			},
			err: true,
		},
		{
			description: "bad device reference",
			config: Config{
				Version: Version,
				Flags: Flags{CommandLineFlags{
					DeviceDiscoveryStrategy: DeviceDiscoveryStrategyCUDA,
					Devices:                 []DeviceRef{"bogus"},
				}},
			},
			err: true,
		},
		{
			description: "empty default launch",
			config: Config{
				Version: Version,
				Flags:   Flags{CommandLineFlags{DeviceDiscoveryStrategy: DeviceDiscoveryStrategyCUDA}},
				DefaultLaunch: &LaunchConfiguration{
					GridDimensions:  Dimensions{X: 0, Y: 1, Z: 1},
					BlockDimensions: Dimensions{X: 256, Y: 1, Z: 1},
				},
			},
			err: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.config.AssertValid()
			if tc.err {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
