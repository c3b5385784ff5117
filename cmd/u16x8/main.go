// Copyright 2025 go-highway Authors
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

// Command u16x8 evaluates Uint16x8 operations from the command line and
// reports which backend the hwy package selected.
//
// Usage:
//
//	u16x8 info
//	u16x8 eval min 1,2,3,4,5,6,7,8 0xffff
//	u16x8 eval shr 0x8000 15
//	u16x8 --scalar --hex eval addsat 0xfff0 0x20
//
// A single lane value is splatted to all eight lanes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
