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
	"math"

	"github.com/surveyio/traverse/common"
)

// Walk returns the position reached by walking r from p. The azimuth is a
// surveying bearing, measured clockwise from north, so sin drives x and cos
// drives y. This is deliberately not the counter-clockwise-from-x-axis math
// convention.
func (p Position) Walk(r Record) Position {
	rad := r.Azimuth * math.Pi / 180
	return Position{
		X: p.X + r.Distance*math.Sin(rad),
		Y: p.Y + r.Distance*math.Cos(rad),
	}
}

// Accumulate folds the legs into absolute points, starting from start. It
// returns len(legs)+1 points: the starting point first, taken verbatim, then
// one point per leg. Double precision throughout, no rounding.
func Accumulate(start Position, legs []Leg) []Point {
	points := make([]Point, 0, len(legs)+1)
	points = append(points, Point{
		Num:   1,
		X:     start.X,
		Y:     start.Y,
		Notes: common.StartPointNotes,
	})

	pos := start
	for _, leg := range legs {
		pos = pos.Walk(leg.Record)
		points = append(points, Point{
			Num:      leg.PointNum,
			X:        pos.X,
			Y:        pos.Y,
			Distance: leg.Record.Distance,
			Azimuth:  leg.Record.Azimuth,
			Notes:    leg.Record.Notes,
		})
	}
	return points
}
