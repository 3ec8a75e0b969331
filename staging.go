// Copyright 2024 by the clickpack authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package clickpack

import (
	"fmt"
	"os"
)

// freshDir removes whatever currently is at path and then recreates it as
// an empty directory, so every build starts from a clean staging area and
// can never pick up residue of an earlier build.
func freshDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("cannot clear staging directory %q, reason: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create staging directory %q, reason: %w", path, err)
	}
	return nil
}

// mkdir creates a single staging subdirectory.
func mkdir(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("cannot create staging directory %q, reason: %w", path, err)
	}
	return nil
}

// writeFile creates, or truncates, the file at path with the given
// contents; the shared write primitive for all staged files.
func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write %q, reason: %w", path, err)
	}
	return nil
}
