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

package common

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// DefaultOutputName is the dataset name used when the caller does not name one.
	DefaultOutputName = "traverse_output.shp"
	// RunLogFileName is the per-run log written next to the output dataset.
	RunLogFileName = "traverse_log.txt"
	// DefaultSpatialRef is the spatial reference applied when none is given.
	DefaultSpatialRef = "4326"
	// DefaultDelimiter separates fields of the input file.
	DefaultDelimiter = ","
)

const (
	// ColumnLongitude through ColumnNotes are the input header names. They are
	// matched exactly: survey exports use these casings and silently accepting
	// variants would hide a wrong file.
	ColumnLongitude = "Longitude"
	ColumnLatitude  = "Latitude"
	ColumnDistance  = "Distance"
	ColumnAzimuth   = "Azimuth"
	ColumnNotes     = "Notes"
)

const (
	// StartPointNotes is stored in the NOTES field of the first point.
	StartPointNotes = "Starting Point"
	// NotesFieldLength bounds the NOTES attribute; longer notes are truncated.
	NotesFieldLength = 255
	// ProgressLogInterval controls the "Processed point N" run log cadence.
	ProgressLogInterval = 10
)

const (
	// ShapefileSuffix through PrjSuffix name the files a point dataset is
	// made of: the geometry, its index, the attribute table and the
	// projection sidecar.
	ShapefileSuffix = ".shp"
	ShxSuffix       = ".shx"
	DbfSuffix       = ".dbf"
	PrjSuffix       = ".prj"
)

const (
	FileMode0755 = 0755
	FileMode0644 = 0644
)

const (
	defaultWorkDir = "/var/lib/traverse"
	workDirName    = ".traverse"
)

var (
	StdOut = os.Stdout
	StdErr = os.Stderr
)

// GetHomeDir returns the current user's home directory, or "/root" when it
// cannot be resolved.
func GetHomeDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return "/root"
	}
	return home
}

// GetWorkDir returns the tool's own state directory ($HOME/.traverse).
func GetWorkDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return defaultWorkDir
	}
	return filepath.Join(home, workDirName)
}

// GetLogDir returns the directory the ambient tool log rotates in. This is the
// tool's own diagnostic log, not the per-run traverse_log.txt.
func GetLogDir() string {
	return filepath.Join(GetWorkDir(), "log")
}

// DefaultConfigFile returns the viper config path ($HOME/.traverse.json).
func DefaultConfigFile() string {
	return filepath.Join(GetHomeDir(), ".traverse.json")
}
