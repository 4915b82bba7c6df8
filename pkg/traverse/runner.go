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
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/surveyio/traverse/common"
	"github.com/surveyio/traverse/pkg/runlog"
	"github.com/surveyio/traverse/pkg/shapefile"
	"github.com/surveyio/traverse/pkg/spatialref"
	"github.com/surveyio/traverse/utils/os/fs"
)

// RunOptions configures one traverse run.
type RunOptions struct {
	// InputCSV is the delimited measurement file.
	InputCSV string
	// OutputDir receives the dataset and the run log.
	OutputDir string
	// OutputName is the dataset file name, default traverse_output.shp.
	OutputName string
	// SpatialRef is an EPSG code, .prj path or WKT string, default 4326.
	SpatialRef string
	// Delimiter is the input field separator, default comma.
	Delimiter rune
	// ShowProgress draws a progress bar while points are written.
	ShowProgress bool
}

// RunResult reports what a run produced.
type RunResult struct {
	// OutputPath is the created dataset. Its existence is the durable success
	// signal; callers handed the path around should re-check it.
	OutputPath string
	Start      Position
	Points     []Point
	Skipped    []*RecordError
}

// SkippedErrors aggregates the per-record errors of the run, nil when every
// record parsed.
func (r *RunResult) SkippedErrors() error {
	var merr *multierror.Error
	for _, e := range r.Skipped {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}

func (o *RunOptions) complete() error {
	if o.InputCSV == "" {
		return errors.New("input file is required")
	}
	if o.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if o.OutputName == "" {
		o.OutputName = common.DefaultOutputName
	}
	if !strings.HasSuffix(o.OutputName, common.ShapefileSuffix) {
		o.OutputName += common.ShapefileSuffix
	}
	if o.SpatialRef == "" {
		o.SpatialRef = common.DefaultSpatialRef
	}
	if o.Delimiter == 0 {
		o.Delimiter = rune(common.DefaultDelimiter[0])
	}
	return nil
}

// CreatePoints runs the whole pipeline: read the input, accumulate positions,
// persist the dataset and flush the run log into the output directory. Input
// is validated before the dataset is created, so a failed run never leaves an
// output dataset behind.
func CreatePoints(opts RunOptions) (*RunResult, error) {
	if err := opts.complete(); err != nil {
		return nil, err
	}

	if err := fs.FS.MkdirAll(opts.OutputDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", opts.OutputDir)
	}

	outputPath := filepath.Join(opts.OutputDir, opts.OutputName)
	log := runlog.New(opts.InputCSV, outputPath)
	defer func() {
		logPath := filepath.Join(opts.OutputDir, common.RunLogFileName)
		if err := log.Flush(logPath); err != nil {
			logrus.Warnf("failed to write run log %s: %v", logPath, err)
		}
	}()

	in, err := ReadInput(opts.InputCSV, opts.Delimiter)
	if err != nil {
		log.Errorf("%v", err)
		return nil, err
	}
	log.Infof("Starting point: %v, %v", in.Start.X, in.Start.Y)
	logrus.Debugf("parsed %d rows from %s: %d legs, %d skipped", in.Rows, opts.InputCSV, len(in.Legs), len(in.Skipped))

	wkt, err := spatialref.Resolve(opts.SpatialRef)
	if err != nil {
		log.Criticalf("An error occurred: %v", err)
		return nil, err
	}

	points := Accumulate(in.Start, in.Legs)
	logProgress(log, points, in.Skipped)

	records := make([]shapefile.PointRecord, 0, len(points))
	for _, p := range points {
		records = append(records, shapefile.PointRecord{
			Num:      p.Num,
			X:        p.X,
			Y:        p.Y,
			Distance: p.Distance,
			Azimuth:  p.Azimuth,
			Notes:    p.Notes,
		})
	}

	if err := shapefile.Write(outputPath, wkt, records, opts.ShowProgress); err != nil {
		log.Criticalf("An error occurred: %v", err)
		return nil, err
	}

	log.Infof("Successfully completed traverse with %d points (%d records skipped)", len(points), len(in.Skipped))
	logrus.Debugf("created %s with %d points", outputPath, len(points))

	return &RunResult{
		OutputPath: outputPath,
		Start:      in.Start,
		Points:     points,
		Skipped:    in.Skipped,
	}, nil
}

// logProgress writes the per-record lines in input order: one error line per
// skipped row and a progress line every tenth point.
func logProgress(log *runlog.Log, points []Point, skipped []*RecordError) {
	skippedAt := map[int]*RecordError{}
	for _, e := range skipped {
		skippedAt[e.PointNum] = e
	}

	byNum := map[int]Point{}
	last := 1
	for _, p := range points[1:] {
		byNum[p.Num] = p
		if p.Num > last {
			last = p.Num
		}
	}
	for _, e := range skipped {
		if e.PointNum > last {
			last = e.PointNum
		}
	}

	for num := 2; num <= last; num++ {
		if e, ok := skippedAt[num]; ok {
			log.Errorf("Error at point %d: %v", num, e.Err)
			continue
		}
		if p, ok := byNum[num]; ok && num%common.ProgressLogInterval == 0 {
			log.Infof("Processed point %d: %v, %v", num, p.X, p.Y)
		}
	}
}
