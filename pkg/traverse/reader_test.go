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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadInput(t *testing.T) {
	path := writeCSV(t, `Longitude,Latitude,Distance,Azimuth,Notes
-122.6789,45.5678,50,90,first leg
,,75,180,second leg
`)

	in, err := ReadInput(path, ',')
	require.NoError(t, err)

	assert.Equal(t, Position{X: -122.6789, Y: 45.5678}, in.Start)
	assert.Equal(t, 2, in.Rows)
	assert.Empty(t, in.Skipped)
	require.Len(t, in.Legs, 2)

	assert.Equal(t, 2, in.Legs[0].PointNum)
	assert.Equal(t, Record{Distance: 50, Azimuth: 90, Notes: "first leg"}, in.Legs[0].Record)
	assert.Equal(t, 3, in.Legs[1].PointNum)
	assert.Equal(t, Record{Distance: 75, Azimuth: 180, Notes: "second leg"}, in.Legs[1].Record)
}

func TestReadInputSkipsBadRows(t *testing.T) {
	path := writeCSV(t, `Longitude,Latitude,Distance,Azimuth,Notes
-122.6789,45.5678,50,90,
,,abc,180,bad distance
,,75,180,
`)

	in, err := ReadInput(path, ',')
	require.NoError(t, err)

	require.Len(t, in.Legs, 2)
	require.Len(t, in.Skipped, 1)

	// the bad row keeps its point number, leaving a gap
	assert.Equal(t, 2, in.Legs[0].PointNum)
	assert.Equal(t, 3, in.Skipped[0].PointNum)
	assert.Equal(t, 3, in.Skipped[0].Line)
	assert.Equal(t, 4, in.Legs[1].PointNum)
	assert.Contains(t, in.Skipped[0].Err.Error(), "invalid Distance")
}

func TestReadInputRaggedRow(t *testing.T) {
	path := writeCSV(t, `Longitude,Latitude,Distance,Azimuth
-122.6789,45.5678,50
`)

	in, err := ReadInput(path, ',')
	require.NoError(t, err)
	require.Len(t, in.Skipped, 1)
	assert.Contains(t, in.Skipped[0].Err.Error(), "missing Azimuth")
}

func TestReadInputMissingNotesColumn(t *testing.T) {
	path := writeCSV(t, `Longitude,Latitude,Distance,Azimuth
-122.6789,45.5678,50,90
`)

	in, err := ReadInput(path, ',')
	require.NoError(t, err)
	require.Len(t, in.Legs, 1)
	assert.Empty(t, in.Legs[0].Record.Notes)
}

func TestReadInputMissingStartColumnsIsFatal(t *testing.T) {
	path := writeCSV(t, `Distance,Azimuth
50,90
`)

	_, err := ReadInput(path, ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Longitude" and "Latitude"`)
}

func TestReadInputBadStartCoordinateIsFatal(t *testing.T) {
	path := writeCSV(t, `Longitude,Latitude,Distance,Azimuth
west,45.5678,50,90
`)

	_, err := ReadInput(path, ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting Longitude")
}

func TestReadInputEmptyFileIsFatal(t *testing.T) {
	for name, content := range map[string]string{
		"zero bytes":  "",
		"header only": "Longitude,Latitude,Distance,Azimuth\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadInput(writeCSV(t, content), ',')
			require.Error(t, err)
			assert.Contains(t, err.Error(), "empty or improperly formatted")
		})
	}
}

func TestReadInputStripsHeaderBOM(t *testing.T) {
	path := writeCSV(t, "\ufeffLongitude,Latitude,Distance,Azimuth\n-122.6789,45.5678,50,90\n")

	in, err := ReadInput(path, ',')
	require.NoError(t, err)
	assert.Equal(t, Position{X: -122.6789, Y: 45.5678}, in.Start)
}

func TestReadInputCustomDelimiter(t *testing.T) {
	path := writeCSV(t, "Longitude;Latitude;Distance;Azimuth\n-122.6789;45.5678;50;90\n")

	in, err := ReadInput(path, ';')
	require.NoError(t, err)
	require.Len(t, in.Legs, 1)
	assert.Equal(t, 50.0, in.Legs[0].Record.Distance)
}

func TestReadInputExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, `Crew,Longitude,Latitude,Distance,Azimuth,Station
B,-122.6789,45.5678,50,90,ST-1
`)

	in, err := ReadInput(path, ',')
	require.NoError(t, err)
	require.Len(t, in.Legs, 1)
	assert.Equal(t, Position{X: -122.6789, Y: 45.5678}, in.Start)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.Error(t, err)
}
