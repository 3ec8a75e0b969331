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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PackageRequest describes the web site to turn into a shortcut click
// package. It is immutable for the duration of one build. ThemeColor and
// URLPatterns are opaque to the builder and embedded verbatim into the
// generated desktop entry; IconURL may or may not be a resolvable address.
type PackageRequest struct {
	URL         string `yaml:"url"`
	Name        string `yaml:"name"`
	ThemeColor  string `yaml:"theme-color"`
	IconURL     string `yaml:"icon-url"`
	URLPatterns string `yaml:"url-patterns"`
}

// LoadPackageRequest reads a shortcut request from the specified YAML file.
// Only the web site address and the display name are required; all other
// fields default to empty.
func LoadPackageRequest(path string) (PackageRequest, error) {
	yamltext, err := os.ReadFile(path)
	if err != nil {
		return PackageRequest{}, fmt.Errorf("cannot read shortcut request, reason: %w", err)
	}
	var req PackageRequest
	if err := yaml.Unmarshal(yamltext, &req); err != nil {
		return PackageRequest{}, fmt.Errorf("malformed shortcut request, reason: %w", err)
	}
	if req.URL == "" {
		return PackageRequest{}, errors.New("shortcut request lacks a web site url")
	}
	if req.Name == "" {
		return PackageRequest{}, errors.New("shortcut request lacks a display name")
	}
	return req, nil
}
