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

// Raw constant values as defined in the driver's header set. The enumeration
// types in this package must stay numerically interchangeable with the
// driver's own constants, so every externally defined value lives in this
// one file; a driver header revision only ever touches this table.

// cudaFuncCache enumeration as defined in driver_types.h
const (
	cudaFuncCachePreferNone   = 0
	cudaFuncCachePreferShared = 1
	cudaFuncCachePreferL1     = 2
	cudaFuncCachePreferEqual  = 3
)

// cudaSharedMemConfig enumeration as defined in driver_types.h
const (
	cudaSharedMemBankSizeDefault   = 0
	cudaSharedMemBankSizeFourByte  = 1
	cudaSharedMemBankSizeEightByte = 2
)

// Device schedule flags as defined in driver_types.h
const (
	cudaDeviceScheduleAuto         = 0
	cudaDeviceScheduleSpin         = 1
	cudaDeviceScheduleYield        = 2
	cudaDeviceScheduleBlockingSync = 4
)
