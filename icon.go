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
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// fallbackIconName is the name under which the bundled default icon gets
// staged whenever the icon source doesn't look fetchable.
const fallbackIconName = "icon.svg"

//go:embed assets/logo.svg
var defaultIcon []byte

// iconFileName decides the staged icon file name for the given icon source
// address. It additionally reports true when the source looks fetchable,
// that is, the address parses as an absolute URL and its final path segment
// carries a file-extension-like suffix; the staged name then keeps exactly
// that suffix. In all other cases the bundled fallback name “icon.svg” is
// returned instead, so malformed icon sources never fail icon resolution.
func iconFileName(iconURL string) (string, bool) {
	u, err := url.Parse(iconURL)
	if err != nil || !u.IsAbs() {
		return fallbackIconName, false
	}
	segments := strings.Split(u.Path, "/")
	last := segments[len(segments)-1]
	dot := strings.LastIndexByte(last, '.')
	if dot < 0 || dot == len(last)-1 {
		return fallbackIconName, false
	}
	return "icon." + last[dot+1:], true
}

// stageIcon materializes the shortcut's icon inside the data tree and
// returns the file name under which it has been staged. Icons from
// fetchable sources are downloaded; a failing download aborts the build
// without falling back to the bundled icon. Everything else gets the
// bundled default icon instead.
func stageIcon(ctx context.Context, iconURL string, dataDir string) (string, error) {
	name, fetchable := iconFileName(iconURL)
	target := filepath.Join(dataDir, name)
	if !fetchable {
		log.Info(fmt.Sprintf("🖼  staging bundled default icon as %q", name))
		if err := writeFile(target, defaultIcon); err != nil {
			return "", err
		}
		return name, nil
	}
	log.Info(fmt.Sprintf("🖼  fetching icon from %q as %q", iconURL, name))
	if err := fetchFile(ctx, iconURL, target); err != nil {
		return "", err
	}
	return name, nil
}

// fetchFile downloads the resource at the given address into the target
// file. Transport failures as well as non-success HTTP statuses are
// reported as errors; there are no retries.
func fetchFile(ctx context.Context, rawurl string, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return fmt.Errorf("cannot fetch icon %q, reason: %w", rawurl, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot fetch icon %q, reason: %w", rawurl, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("cannot fetch icon %q, reason: unexpected HTTP status %s",
			rawurl, resp.Status)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("cannot create icon file %q, reason: %w", target, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("cannot write icon file %q, reason: %w", target, err)
	}
	return nil
}
