// Copyright 2024 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "fmt"

// UnknownColumnError is returned when a sort key names a column without a registered comparison function
type UnknownColumnError struct {
	ColumnID string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("cannot sort by column %q: column unknown or not sortable", e.ColumnID)
}
