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

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/go-cuda/api/cuda/v1"
	"github.com/NVIDIA/go-cuda/internal/cuda"
)

// Snapshot is the discovery output written on every pass.
type Snapshot struct {
	DriverVersion int                       `json:"driverVersion,omitempty" yaml:"driverVersion,omitempty"`
	DefaultLaunch *spec.LaunchConfiguration `json:"defaultLaunch,omitempty" yaml:"defaultLaunch,omitempty"`
	Devices       []DeviceInfo              `json:"devices"                 yaml:"devices"`
}

// DeviceInfo describes a single discovered device.
type DeviceInfo struct {
	Index                        int                    `json:"index"                                  yaml:"index"`
	Name                         string                 `json:"name"                                   yaml:"name"`
	UUID                         string                 `json:"uuid,omitempty"                         yaml:"uuid,omitempty"`
	TotalMemoryBytes             uint64                 `json:"totalMemoryBytes"                       yaml:"totalMemoryBytes"`
	ComputeCapability            spec.ComputeCapability `json:"computeCapability"                      yaml:"computeCapability"`
	Architecture                 string                 `json:"architecture,omitempty"                 yaml:"architecture,omitempty"`
	MultiprocessorCount          int                    `json:"multiprocessorCount,omitempty"          yaml:"multiprocessorCount,omitempty"`
	MaxThreadsPerBlock           int                    `json:"maxThreadsPerBlock,omitempty"           yaml:"maxThreadsPerBlock,omitempty"`
	MaxSharedMemoryPerBlock      spec.SharedMemorySize  `json:"maxSharedMemoryPerBlock,omitempty"      yaml:"maxSharedMemoryPerBlock,omitempty"`
	MaxResidentWarpsPerProcessor uint32                 `json:"maxResidentWarpsPerProcessor,omitempty" yaml:"maxResidentWarpsPerProcessor,omitempty"`
}

// discover runs a single discovery pass with the configured strategy.
func discover(config *spec.Config) (*Snapshot, error) {
	switch config.Flags.DeviceDiscoveryStrategy {
	case spec.DeviceDiscoveryStrategyNVML:
		return discoverNVML(config)
	default:
		return discoverCUDA(config)
	}
}

func discoverCUDA(config *spec.Config) (*Snapshot, error) {
	if r := cuda.Init(); r != cuda.SUCCESS {
		return nil, fmt.Errorf("failed to initialize the CUDA driver: result %d", r)
	}
	defer func() {
		if r := cuda.Shutdown(); r != cuda.SUCCESS {
			klog.Warningf("Shutdown of the CUDA driver returned result %d", r)
		}
	}()

	version, r := cuda.DriverGetVersion()
	if r != cuda.SUCCESS {
		return nil, fmt.Errorf("failed to get driver version: result %d", r)
	}

	count, r := cuda.DeviceGetCount()
	if r != cuda.SUCCESS {
		return nil, fmt.Errorf("failed to get device count: result %d", r)
	}

	snapshot := &Snapshot{
		DriverVersion: version,
		DefaultLaunch: config.DefaultLaunch,
		Devices:       []DeviceInfo{},
	}
	for i := 0; i < count; i++ {
		// The CUDA strategy has no UUIDs to match device references
		// against; UUID references only select devices under --device-discovery-strategy=nvml.
		if !wantDevice(config.Flags.Devices, i, "") {
			continue
		}

		device, r := cuda.DeviceGet(i)
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get device %d: result %d", i, r)
		}

		name, r := device.GetName()
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get name of device %d: result %d", i, r)
		}

		major, minor, r := device.GetComputeCapability()
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get compute capability of device %d: result %d", i, r)
		}

		memory, r := device.TotalMem()
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get total memory of device %d: result %d", i, r)
		}

		multiprocessors, r := device.GetAttribute(cuda.MULTIPROCESSOR_COUNT)
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get multiprocessor count of device %d: result %d", i, r)
		}

		maxThreads, r := device.GetAttribute(cuda.MAX_THREADS_PER_BLOCK)
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get max threads per block of device %d: result %d", i, r)
		}

		snapshot.Devices = append(snapshot.Devices, newDeviceInfo(i, name, "", memory, multiprocessors, maxThreads, major, minor))
	}

	warnUnlaunchable(snapshot)
	return snapshot, nil
}

func discoverNVML(config *spec.Config) (*Snapshot, error) {
	nvmllib := nvml.New()
	if r := nvmllib.Init(); r != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to initialize NVML: %v", nvml.ErrorString(r))
	}
	defer func() {
		if r := nvmllib.Shutdown(); r != nvml.SUCCESS {
			klog.Warningf("Shutdown of NVML returned: %v", nvml.ErrorString(r))
		}
	}()

	version, r := nvmllib.SystemGetCudaDriverVersion()
	if r != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get CUDA driver version: %v", nvml.ErrorString(r))
	}

	count, r := nvmllib.DeviceGetCount()
	if r != nvml.SUCCESS {
		return nil, fmt.Errorf("failed to get device count: %v", nvml.ErrorString(r))
	}

	snapshot := &Snapshot{
		DriverVersion: version,
		DefaultLaunch: config.DefaultLaunch,
		Devices:       []DeviceInfo{},
	}
	for i := 0; i < count; i++ {
		device, r := nvmllib.DeviceGetHandleByIndex(i)
		if r != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get device %d: %v", i, nvml.ErrorString(r))
		}

		uuid, r := device.GetUUID()
		if r != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get UUID of device %d: %v", i, nvml.ErrorString(r))
		}

		if !wantDevice(config.Flags.Devices, i, uuid) {
			continue
		}

		name, r := device.GetName()
		if r != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get name of device %d: %v", i, nvml.ErrorString(r))
		}

		memory, r := device.GetMemoryInfo()
		if r != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get memory info of device %d: %v", i, nvml.ErrorString(r))
		}

		major, minor, r := device.GetCudaComputeCapability()
		if r != nvml.SUCCESS {
			return nil, fmt.Errorf("failed to get compute capability of device %d: %v", i, nvml.ErrorString(r))
		}

		// NVML exposes no per-block limits; those stay at their zero
		// values under this strategy.
		info := newDeviceInfo(i, name, uuid, memory.Total, 0, 0, major, minor)
		snapshot.Devices = append(snapshot.Devices, info)
	}

	warnUnlaunchable(snapshot)
	return snapshot, nil
}

// newDeviceInfo assembles a DeviceInfo, deriving the architecture fields
// from the reported compute capability.
func newDeviceInfo(index int, name string, uuid string, memory uint64, multiprocessors int, maxThreads int, major int, minor int) DeviceInfo {
	capability := spec.MakeComputeCapability(uint32(major), uint32(minor))
	if !capability.IsValid() {
		klog.Warningf("Device %d reports implausible compute capability %v", index, capability)
	}
	return DeviceInfo{
		Index:                        index,
		Name:                         name,
		UUID:                         uuid,
		TotalMemoryBytes:             memory,
		ComputeCapability:            capability,
		Architecture:                 capability.ArchitectureName(),
		MultiprocessorCount:          multiprocessors,
		MaxThreadsPerBlock:           maxThreads,
		MaxSharedMemoryPerBlock:      capability.MaxSharedMemoryPerBlock(),
		MaxResidentWarpsPerProcessor: capability.MaxResidentWarpsPerProcessor(),
	}
}

// wantDevice checks whether the device at the given index (with the given
// UUID, if known) is selected by the configured device references. An empty
// reference list selects every device.
func wantDevice(refs []spec.DeviceRef, index int, uuid string) bool {
	if len(refs) == 0 {
		return true
	}
	for _, ref := range refs {
		if ref.IsIndex() {
			refIndex, err := ref.Index()
			if err == nil && refIndex == index {
				return true
			}
			continue
		}
		if uuid != "" && ref.IsUUID() && string(ref) == uuid {
			return true
		}
	}
	return false
}

// launchFits checks a launch configuration against the limits of a single
// discovered device. Limits the device did not report (zero values) are not
// checked.
func launchFits(launch *spec.LaunchConfiguration, device DeviceInfo) error {
	if err := launch.AssertValid(); err != nil {
		return err
	}
	if device.MaxThreadsPerBlock > 0 && launch.BlockDimensions.Volume() > uint64(device.MaxThreadsPerBlock) {
		return fmt.Errorf("block dimensions %v exceed the device limit of %d threads per block", launch.BlockDimensions, device.MaxThreadsPerBlock)
	}
	if device.MaxSharedMemoryPerBlock > 0 && launch.DynamicSharedMemorySize > device.MaxSharedMemoryPerBlock {
		return fmt.Errorf("dynamic shared memory size %d exceeds the device limit of %d bytes per block", launch.DynamicSharedMemorySize, device.MaxSharedMemoryPerBlock)
	}
	return nil
}

// warnUnlaunchable logs a warning for every discovered device that cannot
// run the configured default launch.
func warnUnlaunchable(snapshot *Snapshot) {
	if snapshot.DefaultLaunch == nil {
		return
	}
	for _, device := range snapshot.Devices {
		if err := launchFits(snapshot.DefaultLaunch, device); err != nil {
			klog.Warningf("Device %d cannot run the default launch configuration: %v", device.Index, err)
		}
	}
}
