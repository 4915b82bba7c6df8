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

// Package traverse turns ordered field survey measurements into absolute 2D
// point coordinates: each record walks one leg of the traverse from the
// position the previous record reached.
package traverse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one parsed traverse leg. Immutable once parsed.
type Record struct {
	// Distance walked along the leg, in the units of the spatial reference.
	Distance float64
	// Azimuth is a compass bearing: degrees clockwise from north. Values
	// outside [0,360) are accepted and wrap through the trig functions.
	Azimuth float64
	// Notes is free-form text carried into the output attributes.
	Notes string
}

// Position is the accumulator state of the traverse fold.
type Position struct {
	X float64
	Y float64
}

// Point is one output row: an absolute position plus the leg that produced it.
type Point struct {
	// Num is anchored to the input row (row r makes point r+1, the starting
	// point is 1), so a skipped record leaves a gap rather than renumbering
	// everything after it.
	Num      int
	X        float64
	Y        float64
	Distance float64
	Azimuth  float64
	Notes    string
}

// Leg pairs a parsed record with the point number its row is anchored to.
type Leg struct {
	PointNum int
	Record   Record
}

// RecordError reports one skipped input row.
type RecordError struct {
	// PointNum is the number the point would have carried.
	PointNum int
	// Line is the 1-based line in the input file, counting the header.
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("point %d (line %d): %v", e.PointNum, e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ParseRecord converts raw input cells into a Record. Distance and Azimuth
// must both be present, numeric and finite, and Distance must not be
// negative; any other row is skipped by the caller rather than aborting the
// traverse.
func ParseRecord(distance, azimuth, notes string) (Record, error) {
	d, err := parseMeasurement("Distance", distance)
	if err != nil {
		return Record{}, err
	}
	if d < 0 {
		return Record{}, errors.Errorf("Distance must not be negative, got %v", d)
	}

	a, err := parseMeasurement("Azimuth", azimuth)
	if err != nil {
		return Record{}, err
	}

	return Record{Distance: d, Azimuth: a, Notes: notes}, nil
}

func parseMeasurement(column, cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, errors.Errorf("missing %s value", column)
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s value %q", column, cell)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("%s value %q is not finite", column, cell)
	}
	return v, nil
}
