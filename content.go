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
	"bytes"
	"encoding/json"
	"fmt"
)

// The fixed tokens embedded into generated package metadata. Installed
// shortcuts reference these values, so they are carved in stone.
const (
	clickFormatVersion   = "0.4"
	debianFormatVersion  = "2.0"
	packageVersion       = "1.0.0"
	packageFramework     = "ubuntu-sdk-16.04"
	packageMaintainer    = "Webber <noreply@ubports.com>"
	packageDescription   = "Shortcut"
	nominalInstalledSize = "30"
)

// controlContent renders the Debian-style control file for the package
// identified by appname.
func controlContent(appname string) string {
	return fmt.Sprintf(`Package: %s.webber
Version: %s
Click-Version: %s
Architecture: all
Maintainer: %s
Description: %s
`, appname, packageVersion, clickFormatVersion, packageMaintainer, packageDescription)
}

// manifestHook references the policy and desktop files a click hook consists
// of.
type manifestHook struct {
	Apparmor string `json:"apparmor"`
	Desktop  string `json:"desktop"`
}

// manifest describes the click manifest JSON structure; the field order
// matches the alphabetical key order installers expect to see.
type manifest struct {
	Architecture  string                  `json:"architecture"`
	Description   string                  `json:"description"`
	Framework     string                  `json:"framework"`
	Hooks         map[string]manifestHook `json:"hooks"`
	InstalledSize string                  `json:"installed-size"`
	Maintainer    string                  `json:"maintainer"`
	Name          string                  `json:"name"`
	Title         string                  `json:"title"`
	Version       string                  `json:"version"`
}

// renderJSON marshals v with 4-space indentation and a trailing newline.
// HTML escaping is off, so "<", ">", and "&" pass through literally; the
// maintainer address and display titles must keep their exact bytes.
func renderJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// manifestContent renders the click manifest JSON for the package identified
// by appname, with the (unsanitized) display title. Rendering is
// deterministic: the same appname and title always produce byte-identical
// output.
func manifestContent(appname string, title string) (string, error) {
	content, err := renderJSON(manifest{
		Architecture: "all",
		Description:  packageDescription,
		Framework:    packageFramework,
		Hooks: map[string]manifestHook{
			appname + ".webber": {
				Apparmor: "shortcut.apparmor",
				Desktop:  "shortcut.desktop",
			},
		},
		InstalledSize: nominalInstalledSize,
		Maintainer:    packageMaintainer,
		Name:          appname + ".webber",
		Title:         title,
		Version:       packageVersion,
	})
	if err != nil {
		return "", fmt.Errorf("cannot generate manifest JSON, reason: %w", err)
	}
	return content, nil
}

// preinstContent returns the guard script refusing direct dpkg installation
// of the package.
func preinstContent() string {
	return `#! /bin/sh
echo "Click packages may not be installed directly using dpkg."
echo "Use 'click install' instead."
exit 1`
}

// apparmorPolicy describes the confinement profile JSON structure.
type apparmorPolicy struct {
	Template      string   `json:"template"`
	PolicyGroups  []string `json:"policy_groups"`
	PolicyVersion float64  `json:"policy_version"`
}

// apparmorContent renders the fixed web-app confinement profile.
func apparmorContent() (string, error) {
	content, err := renderJSON(apparmorPolicy{
		Template:      "ubuntu-webapp",
		PolicyGroups:  []string{"networking", "webview"},
		PolicyVersion: 16.04,
	})
	if err != nil {
		return "", fmt.Errorf("cannot generate apparmor JSON, reason: %w", err)
	}
	return content, nil
}

// desktopContent renders the desktop entry launching the web-app container
// with the site's address and URL patterns. The iconFilename must be the
// name under which the icon has been staged into the data tree.
func desktopContent(title, rawurl, urlPatterns, iconFilename, themeColor string) string {
	return fmt.Sprintf(`[Desktop Entry]
Name=%s
Exec=webapp-container --webappUrlPatterns=%s --store-session-cookies %s
Icon=%s
Terminal=false
Type=Application
X-Ubuntu-Touch=true
X-Ubuntu-Splash-Color=%s
`, title, urlPatterns, rawurl, iconFilename, themeColor)
}
