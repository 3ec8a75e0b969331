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
	"io"
	"os"
	"path/filepath"

	"github.com/blakesmith/ar"
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// containerMembers reads back an ar container file, returning the member
// names in order together with their contents.
func containerMembers(path string) (names []string, contents map[string][]byte) {
	GinkgoHelper()
	f := Successful(os.Open(path))
	defer f.Close()
	arr := ar.NewReader(f)
	contents = map[string][]byte{}
	for {
		header, err := arr.Next()
		if err == io.EOF {
			break
		}
		Expect(err).NotTo(HaveOccurred())
		names = append(names, header.Name)
		contents[header.Name] = Successful(io.ReadAll(arr))
	}
	return
}

var _ = Describe("container assembly", func() {

	BeforeEach(func() {
		GrabLog(logrus.InfoLevel)
	})

	It("frames the members in exactly the given order", func() {
		dir := GinkgoT().TempDir()
		marker := filepath.Join(dir, "marker")
		payload := filepath.Join(dir, "payload")
		Expect(os.WriteFile(marker, []byte("2.0\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(payload, []byte("pretend tarball"), 0644)).To(Succeed())

		out := filepath.Join(dir, "out.click")
		Expect(writeArchive(out, []ArchiveMember{
			{Source: marker, Name: "debian-binary"},
			{Source: payload, Name: "data.tar.gz"},
			{Source: marker, Name: "_click-binary"},
		})).To(Succeed())

		names, contents := containerMembers(out)
		Expect(names).To(Equal([]string{"debian-binary", "data.tar.gz", "_click-binary"}))
		Expect(contents).To(HaveKeyWithValue("debian-binary", []byte("2.0\n")))
		Expect(contents).To(HaveKeyWithValue("data.tar.gz", []byte("pretend tarball")))
	})

	It("reports missing member sources", func() {
		out := filepath.Join(GinkgoT().TempDir(), "out.click")
		Expect(writeArchive(out, []ArchiveMember{
			{Source: "/nothing-nada-nil", Name: "debian-binary"},
		})).To(MatchError(ContainSubstring("cannot read container member source")))
	})

	It("reports an uncreatable container file", func() {
		Expect(writeArchive("/nada-nothing-nil/out.click", nil)).To(MatchError(
			ContainSubstring("cannot create container")))
	})

})
