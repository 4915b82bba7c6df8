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

package fs

import (
	"fmt"
	"os"
)

var FS = NewFilesystem()

type Interface interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string) error
	RemoveAll(path ...string) error
	GetFilesSize(paths []string) (int64, error)
}

type filesystem struct{}

func (f filesystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (f filesystem) RemoveAll(path ...string) error {
	for _, fi := range path {
		err := os.RemoveAll(fi)
		if err != nil {
			return fmt.Errorf("failed to clean file %s: %v", fi, err)
		}
	}
	return nil
}

func (f filesystem) MkdirAll(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// GetFilesSize sums the sizes of the given files, skipping ones that do not
// exist. Used to report the size of a shapefile triplet whose sidecars are
// optional.
func (f filesystem) GetFilesSize(paths []string) (int64, error) {
	var size int64
	for i := range paths {
		s, err := f.getFileSize(paths[i])
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}
		size += s
	}
	return size, nil
}

func (f filesystem) getFileSize(path string) (size int64, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func NewFilesystem() Interface {
	return filesystem{}
}
