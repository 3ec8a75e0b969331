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
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ClickFileName is the name of the finished package file inside the staging
// root.
const ClickFileName = "shortcut.click"

// Packager builds shortcut click packages below an explicit staging root.
// The root is exclusively owned by the Packager's builds: every build
// clears and recreates it, and the finished package is left inside it for
// inspection. A single Packager must not run overlapping builds; use
// separate staging roots for parallel builds instead.
type Packager struct {
	root string
}

// New returns a Packager staging all of its builds below stagingRoot.
func New(stagingRoot string) *Packager {
	return &Packager{root: stagingRoot}
}

// Build runs the whole packaging pipeline for the given request: it derives
// the application identifier, stages all generated files and the icon,
// compresses the control and data trees, and assembles the final click
// container. On success it returns the path of the finished package file
// inside the staging root. The pipeline is strictly sequential and aborts
// on the first failure; ctx bounds the only suspending step, the icon
// fetch.
func (p *Packager) Build(ctx context.Context, req PackageRequest) (string, error) {
	appname := AppName(req.URL)
	log.Info(fmt.Sprintf("🏗  building click package for %q as %q", req.URL, appname))

	controlDir := filepath.Join(p.root, "control")
	dataDir := filepath.Join(p.root, "data")
	if err := freshDir(p.root); err != nil {
		return "", err
	}
	if err := mkdir(controlDir); err != nil {
		return "", err
	}
	if err := mkdir(dataDir); err != nil {
		return "", err
	}

	log.Info("✍  staging package metadata...")
	if err := writeFile(filepath.Join(p.root, "click_binary"),
		[]byte(clickFormatVersion+"\n")); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(p.root, "debian-binary"),
		[]byte(debianFormatVersion+"\n")); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(controlDir, "control"),
		[]byte(controlContent(appname))); err != nil {
		return "", err
	}
	manifestJSON, err := manifestContent(appname, req.Name)
	if err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(controlDir, "manifest"),
		[]byte(manifestJSON)); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(dataDir, "preinst"),
		[]byte(preinstContent())); err != nil {
		return "", err
	}
	apparmor, err := apparmorContent()
	if err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(dataDir, "shortcut.apparmor"),
		[]byte(apparmor)); err != nil {
		return "", err
	}

	iconFilename, err := stageIcon(ctx, req.IconURL, dataDir)
	if err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(dataDir, "shortcut.desktop"),
		[]byte(desktopContent(req.Name, req.URL, req.URLPatterns,
			iconFilename, req.ThemeColor))); err != nil {
		return "", err
	}

	log.Info("🌯  wrapping up the control and data tarballs...")
	controlTarball := filepath.Join(p.root, "control.tar.gz")
	dataTarball := filepath.Join(p.root, "data.tar.gz")
	if err := tarDirectory(controlTarball, controlDir); err != nil {
		return "", err
	}
	if err := tarDirectory(dataTarball, dataDir); err != nil {
		return "", err
	}

	clickPath := filepath.Join(p.root, ClickFileName)
	err = writeArchive(clickPath, []ArchiveMember{
		{Source: filepath.Join(p.root, "debian-binary"), Name: "debian-binary"},
		{Source: controlTarball, Name: "control.tar.gz"},
		{Source: dataTarball, Name: "data.tar.gz"},
		// the click format marker goes last; installers expect this exact
		// member order, changing it changes the file format.
		{Source: filepath.Join(p.root, "click_binary"), Name: "_click-binary"},
	})
	if err != nil {
		return "", err
	}
	log.Info(fmt.Sprintf("✅  ...click package %q successfully created", clickPath))
	return clickPath, nil
}
