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
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"
)

const defaultTarUID = 0
const defaultTarGID = 0

// Fixed timestamp for all archive entries so that rebuilding the same
// request produces bit-identical tarballs.
var defaultMtime, _ = time.Parse(time.RFC3339, "1985-10-26T08:15:00.000Z")

// tarTree writes the gzip-compressed tar rendition of the given file tree
// to w. All entries are rooted at “.”: the tree's own directory name never
// appears as a path prefix, so unpacking places the files directly at the
// unpack location. Ownership and timestamps are normalized to fixed values.
func tarTree(w io.Writer, root fs.FS) error {
	gzw := gzip.NewWriter(w)
	tarw := tar.NewWriter(gzw)
	err := fs.WalkDir(root, ".", func(path string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		stat, err := fs.Stat(root, path)
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(stat, "")
		if err != nil {
			return err
		}
		name := "./"
		if path != "." {
			name += path
		}
		if dirEntry.IsDir() && path != "." {
			name += "/"
		}
		header.Name = name
		header.Uid = defaultTarUID
		header.Gid = defaultTarGID
		header.Uname = ""
		header.Gname = ""
		header.ModTime = defaultMtime.UTC()
		header.AccessTime = defaultMtime.UTC()
		header.ChangeTime = defaultMtime.UTC()
		if err := tarw.WriteHeader(header); err != nil {
			return err
		}
		if dirEntry.IsDir() {
			return nil
		}
		log.Info(fmt.Sprintf("   📦  packaging %s", name))
		file, err := root.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(tarw, file)
		return err
	})
	if err != nil {
		tarw.Close()
		gzw.Close()
		return err
	}
	if err := tarw.Close(); err != nil {
		return err
	}
	return gzw.Close()
}

// tarDirectory compresses the directory tree rooted at dir into the gzip
// tarball file named by tarball, honoring the root-stripping contract of
// tarTree.
func tarDirectory(tarball string, dir string) error {
	f, err := os.Create(tarball)
	if err != nil {
		return fmt.Errorf("cannot create tarball %q, reason: %w", tarball, err)
	}
	defer f.Close()
	if err := tarTree(f, os.DirFS(dir)); err != nil {
		return fmt.Errorf("cannot package %q into %q, reason: %w", dir, tarball, err)
	}
	return nil
}
