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

// Package runlog collects the per-run processing log of a traverse run and
// writes it to a text file in the output directory once, at the end of the
// run. It is distinct from the tool's own logrus diagnostics: its output is a
// deliverable of the run, read by surveyors, so the format is stable.
package runlog

import (
	"bytes"
	"fmt"
	"time"

	osutils "github.com/surveyio/traverse/utils/os"
)

const timestampFormat = "2006-01-02 15:04:05"

type Level string

const (
	LevelInfo     Level = "INFO"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// Log accumulates entries in memory. It is not safe for concurrent use; a run
// is strictly sequential.
type Log struct {
	started    time.Time
	inputPath  string
	outputPath string
	entries    []Entry
}

func New(inputPath, outputPath string) *Log {
	return &Log{
		started:    time.Now(),
		inputPath:  inputPath,
		outputPath: outputPath,
	}
}

func (l *Log) append(level Level, format string, args ...interface{}) {
	l.entries = append(l.entries, Entry{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (l *Log) Infof(format string, args ...interface{}) {
	l.append(LevelInfo, format, args...)
}

func (l *Log) Errorf(format string, args ...interface{}) {
	l.append(LevelError, format, args...)
}

func (l *Log) Criticalf(format string, args ...interface{}) {
	l.append(LevelCritical, format, args...)
}

// Entries returns the collected entries in order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Render produces the log file content: a header naming the run's input and
// output, then one line per entry. INFO lines carry no prefix, matching what
// field crews already grep for in these logs.
func (l *Log) Render() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Traverse Processing Log - %s\n", l.started.Format(timestampFormat))
	fmt.Fprintf(&buf, "Input file: %s\n", l.inputPath)
	fmt.Fprintf(&buf, "Output file: %s\n\n", l.outputPath)

	for _, e := range l.entries {
		switch e.Level {
		case LevelError:
			fmt.Fprintf(&buf, "ERROR: %s\n", e.Message)
		case LevelCritical:
			fmt.Fprintf(&buf, "CRITICAL ERROR: %s\n", e.Message)
		default:
			fmt.Fprintf(&buf, "%s\n", e.Message)
		}
	}
	return buf.Bytes()
}

// Flush writes the rendered log to path, replacing any previous run's file.
func (l *Log) Flush(path string) error {
	return osutils.NewAtomicWriter(path).WriteFile(l.Render())
}
