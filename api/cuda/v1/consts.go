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

// Constants to represent the various device discovery strategies
const (
	DeviceDiscoveryStrategyCUDA = "cuda"
	DeviceDiscoveryStrategyNVML = "nvml"
)

// Command line flag names
const (
	FlagOneshot                 = "oneshot"
	FlagFailOnInitError         = "fail-on-init-error"
	FlagSleepInterval           = "sleep-interval"
	FlagOutputFile              = "output-file"
	FlagDeviceDiscoveryStrategy = "device-discovery-strategy"
	FlagDevices                 = "devices"
	FlagConfigFile              = "config-file"
)
