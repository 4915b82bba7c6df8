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

package traverse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyio/traverse/common"
	"github.com/surveyio/traverse/pkg/shapefile"
	osutils "github.com/surveyio/traverse/utils/os"
)

func runLogContent(t *testing.T, dir string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, common.RunLogFileName))
	require.NoError(t, err)
	return string(content)
}

func TestCreatePoints(t *testing.T) {
	outDir := t.TempDir()
	input := writeCSV(t, `Longitude,Latitude,Distance,Azimuth,Notes
-122.6789,45.5678,0.05,90,leg one
,,0.075,180,leg two
`)

	result, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, common.DefaultOutputName), result.OutputPath)
	assert.True(t, osutils.IsFileExist(result.OutputPath))
	assert.Equal(t, Position{X: -122.6789, Y: 45.5678}, result.Start)
	assert.Empty(t, result.Skipped)
	assert.NoError(t, result.SkippedErrors())
	require.Len(t, result.Points, 3)

	records, wkt, err := shapefile.Read(result.OutputPath)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Contains(t, wkt, "GCS_WGS_1984")

	assert.Equal(t, 1, records[0].Num)
	assert.Equal(t, "Starting Point", records[0].Notes)
	assert.InDelta(t, -122.6289, records[1].X, 1e-4)
	assert.InDelta(t, 45.5678, records[1].Y, 1e-4)
	assert.InDelta(t, -122.6289, records[2].X, 1e-4)
	assert.InDelta(t, 45.4928, records[2].Y, 1e-4)

	log := runLogContent(t, outDir)
	assert.Contains(t, log, "Input file: "+input)
	assert.Contains(t, log, "Starting point: -122.6789, 45.5678")
	assert.Contains(t, log, "Successfully completed traverse with 3 points")
}

func TestCreatePointsSkipsBadRecords(t *testing.T) {
	outDir := t.TempDir()
	input := writeCSV(t, `Longitude,Latitude,Distance,Azimuth,Notes
-122.6789,45.5678,50,90,
,,not-a-number,180,
,,75,180,
`)

	result, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir})
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.Error(t, result.SkippedErrors())
	require.Len(t, result.Points, 3)

	// the skipped row leaves a POINT_NUM gap and later legs continue from the
	// last valid position
	assert.Equal(t, []int{1, 2, 4}, []int{result.Points[0].Num, result.Points[1].Num, result.Points[2].Num})
	assert.InDelta(t, result.Points[1].X, result.Points[2].X, 1e-9)
	assert.InDelta(t, result.Points[1].Y-75, result.Points[2].Y, 1e-9)

	log := runLogContent(t, outDir)
	assert.Contains(t, log, "ERROR: Error at point 3:")
	assert.Equal(t, 1, strings.Count(log, "ERROR:"))
}

func TestCreatePointsEmptyInput(t *testing.T) {
	outDir := t.TempDir()
	input := writeCSV(t, "")

	result, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir})
	require.Error(t, err)
	assert.Nil(t, result)

	// no dataset may be left behind, only the run log
	assert.False(t, osutils.IsFileExist(filepath.Join(outDir, common.DefaultOutputName)))
	log := runLogContent(t, outDir)
	assert.Contains(t, log, "ERROR:")
	assert.Contains(t, log, "empty or improperly formatted")
}

func TestCreatePointsUnknownSpatialRef(t *testing.T) {
	outDir := t.TempDir()
	input := writeCSV(t, `Longitude,Latitude,Distance,Azimuth
-122.6789,45.5678,50,90
`)

	_, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir, SpatialRef: "99999"})
	require.Error(t, err)

	assert.False(t, osutils.IsFileExist(filepath.Join(outDir, common.DefaultOutputName)))
	assert.Contains(t, runLogContent(t, outDir), "CRITICAL ERROR:")
}

func TestCreatePointsProgressLines(t *testing.T) {
	outDir := t.TempDir()

	var sb strings.Builder
	sb.WriteString("Longitude,Latitude,Distance,Azimuth\n")
	sb.WriteString("0,0,1,90\n")
	for i := 0; i < 20; i++ {
		sb.WriteString(",,1,90\n")
	}
	input := writeCSV(t, sb.String())

	result, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir})
	require.NoError(t, err)
	require.Len(t, result.Points, 22)

	log := runLogContent(t, outDir)
	assert.Contains(t, log, "Processed point 10:")
	assert.Contains(t, log, "Processed point 20:")
	assert.NotContains(t, log, "Processed point 11:")
}

func TestCreatePointsNamesAndLogOverwrite(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, common.RunLogFileName), []byte("previous run"), 0644))

	input := writeCSV(t, `Longitude,Latitude,Distance,Azimuth
-122.6789,45.5678,50,90
`)

	result, err := CreatePoints(RunOptions{
		InputCSV:   input,
		OutputDir:  outDir,
		OutputName: "plot42", // extension is added when missing
		SpatialRef: "32610",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "plot42.shp"), result.OutputPath)

	_, wkt, err := shapefile.Read(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, wkt, "UTM_Zone_10N")

	log := runLogContent(t, outDir)
	assert.NotContains(t, log, "previous run")
}

func TestCreatePointsValidatesOptions(t *testing.T) {
	_, err := CreatePoints(RunOptions{OutputDir: t.TempDir()})
	assert.Error(t, err)

	_, err = CreatePoints(RunOptions{InputCSV: "in.csv"})
	assert.Error(t, err)
}

func TestCreatePointsManyLegsStayDeterministic(t *testing.T) {
	outDir := t.TempDir()

	var sb strings.Builder
	sb.WriteString("Longitude,Latitude,Distance,Azimuth\n")
	sb.WriteString("100,200,10,0\n")
	for i := 0; i < 3; i++ {
		sb.WriteString(fmt.Sprintf(",,10,%d\n", 90*(i+1)))
	}
	input := writeCSV(t, sb.String())

	result, err := CreatePoints(RunOptions{InputCSV: input, OutputDir: outDir})
	require.NoError(t, err)
	require.Len(t, result.Points, 5)

	// legs 0,90,180,270 of equal length close back on the start
	last := result.Points[4]
	assert.InDelta(t, 100, last.X, 1e-9)
	assert.InDelta(t, 200, last.Y, 1e-9)
}
