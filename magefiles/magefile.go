//go:build mage

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

// Package main provides build targets using Mage.
//
// Usage:
//
//	mage build     Compile istest binary to bin/
//	mage test      Run all tests
//	mage features  Run feature files with istest (builds first)
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binLint     = "golangci-lint"
	binaryName  = "istest"
	binaryDir   = "bin"
	cmdDir      = "./cmd/istest"
	featuresDir = "features"
)

// Build compiles the istest binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Features runs every feature file in features/ with istest.
func Features() error {
	mg.Deps(Build)
	filenames, err := filepath.Glob(filepath.Join(featuresDir, "*.feature"))
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		fmt.Println("No feature files found.")
		return nil
	}
	return sh.RunV(filepath.Join(binaryDir, binaryName), filenames...)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
