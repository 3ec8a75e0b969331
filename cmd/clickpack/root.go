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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	cp "github.com/otiai10/copy"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/webberports/clickpack"
	"golang.org/x/exp/slices"
)

const (
	urlFlag         = "url"
	nameFlag        = "name"
	themeColorFlag  = "theme-color"
	iconURLFlag     = "icon-url"
	urlPatternsFlag = "url-patterns"
	outnameFlag     = "out"
	stagingDirFlag  = "staging-dir"
)

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

// defaultStagingDir resolves the staging location webber has always used,
// below the user's cache directory.
func defaultStagingDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user cache directory, reason: %w", err)
	}
	return filepath.Join(cache, "webber.timsueberkrueb", "click-build"), nil
}

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "clickpack [flags] [shortcut.yaml]",
		Short:   "clickpack packages web-app shortcuts into Ubuntu Touch .click files",
		Version: "(devel)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("🕸  clickpack ... web sites, all wrapped up")
			log.Info(fmt.Sprintf("   %s", rootCmd.Version))

			var req clickpack.PackageRequest
			if len(args) == 1 {
				var err error
				req, err = clickpack.LoadPackageRequest(args[0])
				if err != nil {
					return err
				}
			}
			// flags override request file values.
			if s, _ := rootCmd.Flags().GetString(urlFlag); s != "" {
				req.URL = s
			}
			if s, _ := rootCmd.Flags().GetString(nameFlag); s != "" {
				req.Name = s
			}
			if s, _ := rootCmd.Flags().GetString(themeColorFlag); s != "" {
				req.ThemeColor = s
			}
			if s, _ := rootCmd.Flags().GetString(iconURLFlag); s != "" {
				req.IconURL = s
			}
			if s, _ := rootCmd.Flags().GetString(urlPatternsFlag); s != "" {
				req.URLPatterns = s
			}
			if req.URL == "" {
				return fmt.Errorf("no web site URL given; use --%s or a request file", urlFlag)
			}
			if req.Name == "" {
				return fmt.Errorf("no display name given; use --%s or a request file", nameFlag)
			}

			staging, _ := rootCmd.Flags().GetString(stagingDirFlag)
			if staging == "" {
				var err error
				staging, err = defaultStagingDir()
				if err != nil {
					return err
				}
			}

			clickPath, err := clickpack.New(staging).Build(context.Background(), req)
			if err != nil {
				return err
			}

			outname, _ := rootCmd.Flags().GetString(outnameFlag)
			if outname == "" {
				return nil
			}
			if filepath.Ext(outname) == "" {
				outname = outname + ".click"
			}
			if err := cp.Copy(clickPath, outname); err != nil {
				return fmt.Errorf("cannot copy click package to %q, reason: %w", outname, err)
			}
			log.Info(fmt.Sprintf("🚚  click package delivered to %q", outname))
			return nil
		},
	}
	rootCmd.Flags().String(urlFlag, "",
		"web site address to create the shortcut for")

	rootCmd.Flags().String(nameFlag, "",
		"display name of the shortcut")

	rootCmd.Flags().String(themeColorFlag, "",
		"splash/theme color token for the shortcut")

	rootCmd.Flags().String(iconURLFlag, "",
		"icon address; bundled default icon when unset or extension-less")

	rootCmd.Flags().String(urlPatternsFlag, "",
		"URL patterns the web-app container confines navigation to")

	rootCmd.Flags().StringP(outnameFlag, "o", "",
		"optional: copy the finished click package to this path")

	rootCmd.Flags().String(stagingDirFlag, "",
		"staging directory, cleared on every build; defaults to the user cache")

	if info, biok := debug.ReadBuildInfo(); biok {
		commit := buildInfo(info, "vcs.revision")
		if commit != "" {
			modified := ""
			if buildInfo(info, "vcs.modified") == "true" {
				modified = " (modified)"
			}
			rootCmd.Version = fmt.Sprintf("commit %s%s", commit[:8], modified)
		} else if modver := info.Main.Version; modver != "" {
			rootCmd.Version = modver
		}
	}

	return rootCmd
}
