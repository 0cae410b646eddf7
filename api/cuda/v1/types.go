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

// Status is the numeric result code the CUDA driver returns for every API
// call. This package carries status codes through opaquely; interpreting
// individual codes is left to the code talking to the driver.
type Status int32

// StatusSuccess is the one status value this package gives a name to.
const StatusSuccess = Status(0)

// IsSuccess reports whether the status indicates a successful driver call.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Device identifies a CUDA device by its driver ordinal.
type Device int32

// Stream is the numeric identifier of a driver-managed stream.
type Stream uintptr

// Event is the numeric identifier of a driver-managed event.
type Event uintptr

// StreamPriority orders work submission across streams. Lower values mean
// higher priority; the driver clamps out-of-range values.
type StreamPriority int

// DefaultStreamPriority is the priority streams are created with when no
// priority is requested explicitly.
const DefaultStreamPriority = StreamPriority(0)

// GridDimension is the extent of a grid along a single axis, in blocks.
type GridDimension uint32

// BlockDimension is the extent of a block along a single axis, in threads.
type BlockDimension uint32

// DeviceAttribute identifies a queryable device attribute, with values
// matching the driver's CUdevice_attribute enumeration. Not to be confused
// with the device properties struct the runtime API exposes.
type DeviceAttribute int32

// DeviceAttributeValue holds the value of a queried device attribute.
type DeviceAttributeValue int32

// DevicePairAttribute identifies a queryable attribute of an ordered pair
// of devices, e.g. whether peer-to-peer access is supported between them.
type DevicePairAttribute int32

// DeviceFlags holds the flags a device's primary context is created with.
type DeviceFlags uint32

// SharedMemorySize counts bytes of shared memory. Shared memory spaces on
// current GPUs are no larger than 64 KiB, so 16 bits suffice; prefer a wider
// type for arithmetic since sub-32-bit computation can carry a penalty.
type SharedMemorySize uint16

// SerializationFactor indicates how many elements of an input or output
// array a single thread does computational work for, rather than each thread
// handling a single element. Elementwise work over n items uses n threads at
// factor 1 and ceil(n/s) threads at factor s.
type SerializationFactor uint16
