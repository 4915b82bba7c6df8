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

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/surveyio/traverse/common"
	"github.com/surveyio/traverse/pkg/shapefile"
	"github.com/surveyio/traverse/utils/os/fs"
)

var longInspectCmdDescription = `inspect reads a traverse point dataset back and prints its points and
attributes as a table, followed by a summary of the files on disk.`

func NewInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:     "inspect",
		Short:   "print the points and attributes of a traverse dataset",
		Long:    longInspectCmdDescription,
		Example: `traverse inspect /data/gis/workspace/traverse_output.shp`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectDataset(args[0])
		},
	}
	return inspectCmd
}

func inspectDataset(path string) error {
	records, wkt, err := shapefile.Read(path)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(common.StdOut)
	table.SetHeader([]string{
		shapefile.FieldPointNum, "X", "Y",
		shapefile.FieldDistance, shapefile.FieldAzimuth, shapefile.FieldNotes,
	})
	for _, rec := range records {
		table.Append([]string{
			strconv.Itoa(rec.Num),
			formatCoord(rec.X),
			formatCoord(rec.Y),
			formatCoord(rec.Distance),
			formatCoord(rec.Azimuth),
			rec.Notes,
		})
	}
	table.Render()

	size, err := fs.FS.GetFilesSize(shapefile.DatasetFiles(path))
	if err != nil {
		return err
	}

	fi, err := fs.FS.Stat(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(common.StdOut, "%d points, %s on disk, created %s ago\n",
		len(records),
		units.HumanSize(float64(size)),
		units.HumanDuration(time.Since(fi.ModTime())))
	if name := spatialRefName(wkt); name != "" {
		fmt.Fprintf(common.StdOut, "spatial reference: %s\n", name)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// spatialRefName pulls the coordinate system name out of the WKT, the first
// quoted token.
func spatialRefName(wkt string) string {
	start := strings.Index(wkt, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(wkt[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return wkt[start+1 : start+1+end]
}
