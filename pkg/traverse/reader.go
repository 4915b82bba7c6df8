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
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/surveyio/traverse/common"
	strutils "github.com/surveyio/traverse/utils/strings"
)

// Input is a fully parsed input file: the starting position from the first
// data row, the legs that parsed, and the rows that did not.
type Input struct {
	Start Position
	Legs  []Leg
	// Skipped lists rejected rows in input order. They are reported, not
	// fatal; the traverse continues from the last valid position.
	Skipped []*RecordError
	// Rows is the number of data rows read, valid or not.
	Rows int
}

// ReadInput parses the delimited input file at path. The header must name the
// Longitude and Latitude columns (read from the first data row only) exactly;
// Distance and Azimuth feed the legs and Notes is optional. A file with no
// data rows, or without a readable starting coordinate, is fatal.
func ReadInput(path string, delimiter rune) (*Input, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input file %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	// survey exports are frequently ragged; missing trailing cells read as
	// blank and invalidate only their own row
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse input file %s", path)
	}

	if len(rows) < 2 {
		return nil, errors.Errorf("input file %s is empty or improperly formatted", path)
	}

	header := rows[0]
	header[0] = strutils.TrimBOM(header[0])
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	lonIdx, lonOK := columns[common.ColumnLongitude]
	latIdx, latOK := columns[common.ColumnLatitude]
	if !lonOK || !latOK {
		return nil, errors.Errorf("input must contain %q and %q columns for the starting point", common.ColumnLongitude, common.ColumnLatitude)
	}

	dataRows := rows[1:]
	start, err := parseStart(dataRows[0], lonIdx, latIdx)
	if err != nil {
		return nil, err
	}

	distIdx := columnIndex(columns, common.ColumnDistance)
	azIdx := columnIndex(columns, common.ColumnAzimuth)
	notesIdx := columnIndex(columns, common.ColumnNotes)

	in := &Input{Start: start, Rows: len(dataRows)}
	for i, row := range dataRows {
		// the starting point is point 1, so row i is anchored to point i+2
		pointNum := i + 2
		line := i + 2

		rec, err := ParseRecord(cell(row, distIdx), cell(row, azIdx), cell(row, notesIdx))
		if err != nil {
			in.Skipped = append(in.Skipped, &RecordError{PointNum: pointNum, Line: line, Err: err})
			continue
		}
		in.Legs = append(in.Legs, Leg{PointNum: pointNum, Record: rec})
	}

	return in, nil
}

func parseStart(row []string, lonIdx, latIdx int) (Position, error) {
	x, err := parseCoordinate(common.ColumnLongitude, cell(row, lonIdx))
	if err != nil {
		return Position{}, err
	}
	y, err := parseCoordinate(common.ColumnLatitude, cell(row, latIdx))
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y}, nil
}

func parseCoordinate(column, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.Errorf("starting %s is missing from the first data row", column)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Errorf("starting %s %q is not numeric", column, value)
	}
	return v, nil
}

// columnIndex returns -1 for columns the header does not name; cell turns
// that, and ragged rows, into a blank value.
func columnIndex(columns map[string]int, name string) int {
	if i, ok := columns[name]; ok {
		return i
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
