// Copyright 2014 Google Inc.
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

package btdict

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDataDriven runs the scripts in testdata.  Supported commands:
//
//	insert            one "key value" pair per input line
//	remove key=<int>
//	lookup key=<int>
//	choose            removes an arbitrary pair and prints it
//	fold              prints every pair in key order
//	reset             starts over from the empty dict
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		d := NewOrdered[int, string]()
		stats := func() string {
			return fmt.Sprintf("len=%d height=%d balanced=%t\n", d.Len(), d.Height(), d.Balanced())
		}
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "insert":
				for _, line := range strings.Split(strings.TrimSpace(td.Input), "\n") {
					fields := strings.Fields(line)
					if len(fields) != 2 {
						td.Fatalf(t, "expected \"key value\", got %q", line)
					}
					k, err := strconv.Atoi(fields[0])
					if err != nil {
						td.Fatalf(t, "bad key %q: %v", fields[0], err)
					}
					d = d.Insert(k, fields[1])
				}
				return stats()
			case "remove":
				var k int
				td.ScanArgs(t, "key", &k)
				d = d.Remove(k)
				return stats()
			case "lookup":
				var k int
				td.ScanArgs(t, "key", &k)
				if v, ok := d.Lookup(k); ok {
					return v + "\n"
				}
				return "not found\n"
			case "choose":
				k, v, rest, ok := d.Choose()
				if !ok {
					return "empty\n"
				}
				d = rest
				return fmt.Sprintf("%d:%s %s", k, v, stats())
			case "fold":
				out := Fold(d, func(k int, v string, acc []string) []string {
					return append(acc, fmt.Sprintf("%d:%s", k, v))
				}, nil)
				return strings.Join(out, " ") + "\n"
			case "reset":
				d = d.Empty()
				return stats()
			}
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		})
	})
}
