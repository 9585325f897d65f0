// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// compare cross-checks this module's edit count against go-difflib's
// SequenceMatcher on a pair of line-oriented files, as a sanity check that
// the canonical minimal script this module produces is never longer than
// what a well-known reference implementation finds. It is a development
// tool, not part of the library's public surface.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/seqpatch/diff"
)

type config struct {
	base   string
	target string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.base, "base", "", "path to the base file")
	flag.StringVar(&cfg.target, "target", "", "path to the target file")
	flag.Parse()

	if cfg.base == "" || cfg.target == "" {
		fmt.Fprintln(os.Stderr, "error: -base and -target are required")
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config) error {
	base, err := os.ReadFile(cfg.base)
	if err != nil {
		return fmt.Errorf("reading base: %w", err)
	}
	target, err := os.ReadFile(cfg.target)
	if err != nil {
		return fmt.Errorf("reading target: %w", err)
	}

	baseLines := strings.Split(string(base), "\n")
	targetLines := strings.Split(string(target), "\n")

	d := diff.Diff(baseLines, targetLines)
	ours := d.Len()

	matcher := difflib.NewMatcher(baseLines, targetLines)
	var theirs int
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'd':
			theirs += op.I2 - op.I1
		case 'i':
			theirs += op.J2 - op.J1
		case 'r':
			theirs += (op.I2 - op.I1) + (op.J2 - op.J1)
		}
	}

	fmt.Printf("canonical minimal script: %d changes\n", ours)
	fmt.Printf("go-difflib SequenceMatcher: %d changes\n", theirs)
	if ours > theirs {
		return fmt.Errorf("canonical script (%d) is longer than go-difflib's (%d), which should never happen for a minimal solver", ours, theirs)
	}
	return nil
}
