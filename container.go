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
	"io"
	"os"

	"github.com/blakesmith/ar"
	log "github.com/sirupsen/logrus"
)

// ArchiveMember pairs a staged source file with the name it gets inside the
// outer ar container.
type ArchiveMember struct {
	Source string
	Name   string
}

// writeArchive assembles the outer ar container at out from the given
// members, in exactly the given order. It is a pure framing step: member
// contents are copied verbatim and never validated.
func writeArchive(out string, members []ArchiveMember) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cannot create container %q, reason: %w", out, err)
	}
	defer f.Close()
	arw := ar.NewWriter(f)
	if err := arw.WriteGlobalHeader(); err != nil {
		return fmt.Errorf("cannot write container header, reason: %w", err)
	}
	for _, member := range members {
		if err := appendMember(arw, member); err != nil {
			return err
		}
	}
	return nil
}

// appendMember copies a single source file into the container under its
// member name, with ownership and timestamp normalized for reproducible
// output.
func appendMember(arw *ar.Writer, member ArchiveMember) error {
	src, err := os.Open(member.Source)
	if err != nil {
		return fmt.Errorf("cannot read container member source %q, reason: %w",
			member.Source, err)
	}
	defer src.Close()
	stat, err := src.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat container member source %q, reason: %w",
			member.Source, err)
	}
	err = arw.WriteHeader(&ar.Header{
		Name:    member.Name,
		ModTime: defaultMtime.UTC(),
		Uid:     defaultTarUID,
		Gid:     defaultTarGID,
		Mode:    0644,
		Size:    stat.Size(),
	})
	if err != nil {
		return fmt.Errorf("cannot write container member %q, reason: %w",
			member.Name, err)
	}
	if _, err := io.Copy(arw, src); err != nil {
		return fmt.Errorf("cannot write container member %q, reason: %w",
			member.Name, err)
	}
	log.Info(fmt.Sprintf("   🗜  added container member %q (%d bytes)",
		member.Name, stat.Size()))
	return nil
}
