// Copyright © 2022 surveyio.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testhelper

import (
	"os"
	"path/filepath"

	"github.com/onsi/gomega"

	"github.com/surveyio/traverse/common"
)

func CreateTempDir() string {
	dir, err := os.MkdirTemp("", "traverse-e2e")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return dir
}

func RemoveTempDir(dir string) {
	err := os.RemoveAll(dir)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
}

// WriteSurveyCSV drops a measurement file into dir and returns its path.
func WriteSurveyCSV(dir, name, content string) string {
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), common.FileMode0644)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return path
}

func ReadRunLog(outputDir string) string {
	content, err := os.ReadFile(filepath.Join(outputDir, common.RunLogFileName))
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return string(content)
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
