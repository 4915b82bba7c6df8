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

// Package shapefile persists ordered traverse points into an ESRI shapefile
// point dataset with the fixed attribute schema {POINT_NUM, DISTANCE,
// AZIMUTH, NOTES}, plus a .prj sidecar carrying the spatial reference.
package shapefile

import (
	"os"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/pkg/errors"

	"github.com/surveyio/traverse/common"
	osutils "github.com/surveyio/traverse/utils/os"
	"github.com/surveyio/traverse/utils/os/fs"
	"github.com/surveyio/traverse/utils/progressbar"
	strutils "github.com/surveyio/traverse/utils/strings"
)

const (
	FieldPointNum = "POINT_NUM"
	FieldDistance = "DISTANCE"
	FieldAzimuth  = "AZIMUTH"
	FieldNotes    = "NOTES"
)

// PointRecord is one row of the output dataset: geometry plus attributes.
type PointRecord struct {
	Num      int
	X        float64
	Y        float64
	Distance float64
	Azimuth  float64
	Notes    string
}

func schema() []shp.Field {
	return []shp.Field{
		shp.NumberField(FieldPointNum, 9),
		shp.FloatField(FieldDistance, 19, 11),
		shp.FloatField(FieldAzimuth, 19, 11),
		shp.StringField(FieldNotes, common.NotesFieldLength),
	}
}

// Write creates the dataset at path and writes records in order. Notes longer
// than the NOTES field are truncated. When a step fails, whatever was already
// written is removed: a path that exists afterwards is a valid dataset.
func Write(path string, wkt string, records []PointRecord, showProgress bool) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return errors.Wrapf(err, "failed to create output dataset %s", path)
	}

	if err := w.SetFields(schema()); err != nil {
		w.Close()
		removePartial(path)
		return errors.Wrapf(err, "failed to write attribute schema of %s", path)
	}

	var bar *progressbar.EasyProgressUtil
	if showProgress {
		bar = progressbar.NewEasyProgressUtil(len(records), "writing traverse points")
	}

	for i, rec := range records {
		w.Write(&shp.Point{X: rec.X, Y: rec.Y})
		attrs := []interface{}{
			rec.Num,
			rec.Distance,
			rec.Azimuth,
			strutils.Truncate(rec.Notes, common.NotesFieldLength),
		}
		for field, value := range attrs {
			if err := w.WriteAttribute(i, field, value); err != nil {
				if bar != nil {
					bar.Fail(err)
				}
				w.Close()
				removePartial(path)
				return errors.Wrapf(err, "failed to write attributes of point %d to %s", rec.Num, path)
			}
		}
		if bar != nil {
			bar.Increment()
		}
	}

	w.Close()

	// shp.Create trims the ".shp" suffix including the dot, so the attribute
	// table lands at <base>dbf. Move it where readers, go-shp's own included,
	// open it.
	if err := os.Rename(rawDbfPath(path), strings.TrimSuffix(path, common.ShapefileSuffix)+common.DbfSuffix); err != nil {
		removePartial(path)
		return errors.Wrapf(err, "failed to place attribute table of %s", path)
	}

	if err := osutils.NewCommonWriter(PrjPath(path)).WriteFile([]byte(wkt)); err != nil {
		removePartial(path)
		return errors.Wrapf(err, "failed to write projection sidecar for %s", path)
	}

	if !osutils.IsFileExist(path) {
		removePartial(path)
		return errors.Errorf("output dataset %s was not created", path)
	}

	return nil
}

// rawDbfPath is where go-shp's writer actually creates the attribute table,
// missing the dot of the .dbf extension.
func rawDbfPath(path string) string {
	return strings.TrimSuffix(path, common.ShapefileSuffix) + "dbf"
}

// removePartial clears a failed write, the misnamed attribute table included.
func removePartial(path string) {
	_ = fs.FS.RemoveAll(append(DatasetFiles(path), rawDbfPath(path))...)
}

// Read loads the dataset at path back into memory, together with the WKT from
// its .prj sidecar (empty when the sidecar is missing).
func Read(path string) ([]PointRecord, string, error) {
	if !osutils.IsFileExist(path) {
		return nil, "", errors.Errorf("dataset %s does not exist", path)
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer r.Close()

	fieldIdx := map[string]int{}
	for i, f := range r.Fields() {
		fieldIdx[f.String()] = i
	}
	for _, name := range []string{FieldPointNum, FieldDistance, FieldAzimuth, FieldNotes} {
		if _, ok := fieldIdx[name]; !ok {
			return nil, "", errors.Errorf("dataset %s has no %s field", path, name)
		}
	}

	var records []PointRecord
	for r.Next() {
		n, geom := r.Shape()
		point, ok := geom.(*shp.Point)
		if !ok {
			return nil, "", errors.Errorf("dataset %s contains non-point geometry at row %d", path, n)
		}

		rec := PointRecord{X: point.X, Y: point.Y}
		rec.Num = parseIntAttr(r.ReadAttribute(n, fieldIdx[FieldPointNum]))
		rec.Distance = parseFloatAttr(r.ReadAttribute(n, fieldIdx[FieldDistance]))
		rec.Azimuth = parseFloatAttr(r.ReadAttribute(n, fieldIdx[FieldAzimuth]))
		rec.Notes = strings.TrimSpace(r.ReadAttribute(n, fieldIdx[FieldNotes]))
		records = append(records, rec)
	}

	wkt := ""
	if osutils.IsFileExist(PrjPath(path)) {
		content, err := osutils.NewFileReader(PrjPath(path)).ReadAll()
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to read projection sidecar of %s", path)
		}
		wkt = strings.TrimSpace(string(content))
	}

	return records, wkt, nil
}

// dbf numeric cells come back space padded and may carry trailing NULs.
func parseIntAttr(s string) int {
	v, err := strconv.Atoi(strings.Trim(s, " \x00"))
	if err != nil {
		return 0
	}
	return v
}

func parseFloatAttr(s string) float64 {
	v, err := strconv.ParseFloat(strings.Trim(s, " \x00"), 64)
	if err != nil {
		return 0
	}
	return v
}

// DatasetFiles returns every file the dataset at path is made of, existing or
// not: the .shp itself, the .shx and .dbf written with it, and the .prj.
func DatasetFiles(path string) []string {
	base := strings.TrimSuffix(path, common.ShapefileSuffix)
	return []string{
		base + common.ShapefileSuffix,
		base + common.ShxSuffix,
		base + common.DbfSuffix,
		base + common.PrjSuffix,
	}
}

// Remove deletes the dataset triplet and its sidecar.
func Remove(path string) error {
	return fs.FS.RemoveAll(DatasetFiles(path)...)
}

// PrjPath returns the projection sidecar path for the dataset at path.
func PrjPath(path string) string {
	return strings.TrimSuffix(path, common.ShapefileSuffix) + common.PrjSuffix
}
