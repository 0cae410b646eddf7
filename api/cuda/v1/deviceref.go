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
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DeviceRef identifies a device either by its ordinal index or by its UUID.
type DeviceRef string

// IsIndex checks if a DeviceRef is a device index
func (d DeviceRef) IsIndex() bool {
	if _, err := strconv.ParseUint(string(d), 10, 0); err != nil {
		return false
	}
	return true
}

// Index returns the numeric value of an index DeviceRef.
func (d DeviceRef) Index() (int, error) {
	index, err := strconv.ParseUint(string(d), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("device reference %q is not an index: %v", string(d), err)
	}
	return int(index), nil
}

// IsUUID checks if a DeviceRef is a GPU UUID
// A GPU UUID must be of the form GPU-b1028956-cfa2-0990-bf4a-5da9abb51763
func (d DeviceRef) IsUUID() bool {
	if !strings.HasPrefix(string(d), "GPU-") {
		return false
	}
	_, err := uuid.Parse(strings.TrimPrefix(string(d), "GPU-"))
	return err == nil
}

// AssertDeviceRefsValid checks that every reference in the list is either a
// device index or a GPU UUID.
func AssertDeviceRefsValid(refs []DeviceRef) error {
	for _, ref := range refs {
		if !ref.IsIndex() && !ref.IsUUID() {
			return fmt.Errorf("device reference %q is neither an index nor a GPU UUID", string(ref))
		}
	}
	return nil
}
