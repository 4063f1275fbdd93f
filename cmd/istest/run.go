// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/homelight/is/istesting"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

type runner struct {
	out      io.Writer
	color    bool
	failFast bool
}

// runFeatures runs all scenarios of all features, and reports whether they
// all passed.
func (r *runner) runFeatures(filenames []string) bool {
	ok := true
	for i, filename := range filenames {
		if 0 < i {
			fmt.Fprintln(r.out)
		}
		if !r.runFeature(filename) {
			ok = false
			if r.failFast {
				break
			}
		}
	}
	return ok
}

func (r *runner) runFeature(filename string) bool {
	fmt.Fprintln(r.out, filename)

	scenarios, err := istesting.ReadFeatureFile(filename)
	if err != nil {
		fmt.Fprintf(r.out, "%s\t%s\n", r.status(false), err)
		return false
	}

	// names are aligned on the widest, which may hold wide runes
	var width int
	for _, s := range scenarios {
		if w := runewidth.StringWidth(s.Name); width < w {
			width = w
		}
	}

	ok := true
	for _, s := range scenarios {
		err := s.Run(istesting.Context{})
		fmt.Fprintf(r.out, "  %s  %s\n", runewidth.FillRight(s.Name, width), r.status(err == nil))
		if err != nil {
			fmt.Fprintf(r.out, "\t%s\n", err)
			ok = false
			if r.failFast {
				break
			}
		}
	}
	return ok
}

func (r *runner) status(passed bool) string {
	switch {
	case passed && r.color:
		return ansiGreen + "PASS" + ansiReset
	case passed:
		return "PASS"
	case r.color:
		return ansiRed + "FAIL" + ansiReset
	default:
		return "FAIL"
	}
}
