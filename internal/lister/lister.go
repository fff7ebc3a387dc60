// Package lister reports the pixel dimensions of the screenshots in a
// directory.
package lister

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/ironsheep/store-art/internal/imaging"
)

// Entry is one matched file.
type Entry struct {
	Name   string       `json:"name"`
	Size   imaging.Size `json:"size"`
	Err    error        `json:"-"`
	ErrMsg string       `json:"error,omitempty"`
}

// Report is the result of listing a directory.
type Report struct {
	Dir     string  `json:"dir"`
	Pattern string  `json:"pattern"`
	Entries []Entry `json:"entries"`
	Failed  int     `json:"failed"`
}

// List reads the dimensions of every file in dir whose name matches pattern.
//
// Entries are sorted by name so repeated runs over an unchanged directory
// produce identical reports. A file that cannot be read is recorded with
// its error and listing continues; use Report.Err to get the failures.
//
// List itself fails only if dir does not exist or pattern is malformed.
func List(dir, pattern string, log logrus.FieldLogger) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &imaging.NotFoundError{Path: dir, Err: err}
		}
		return nil, errors.Wrapf(err, "failed to stat %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	sort.Strings(matches)

	report := &Report{Dir: dir, Pattern: pattern, Entries: make([]Entry, 0, len(matches))}
	for _, path := range matches {
		entry := Entry{Name: filepath.Base(path)}

		size, err := imaging.ReadDimensions(path)
		if err != nil {
			log.WithField("file", entry.Name).WithError(err).Warn("could not read dimensions")
			entry.Err = err
			entry.ErrMsg = err.Error()
			report.Failed++
		} else {
			entry.Size = size
		}
		report.Entries = append(report.Entries, entry)
	}

	log.WithFields(logrus.Fields{
		"dir":     dir,
		"pattern": pattern,
		"matched": len(report.Entries),
		"failed":  report.Failed,
	}).Debug("listed screenshots")

	return report, nil
}

// Err returns the per-file failures combined into one error, or nil.
func (r *Report) Err() error {
	var err error
	for _, e := range r.Entries {
		err = multierr.Append(err, e.Err)
	}
	return err
}

// Write prints the report in its console form:
//
//	Found 2 screenshots
//	Screenshot_1.jpg: 1080x2400
//	Screenshot_2.jpg: error: ...
//	1 of 2 screenshots failed
func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Found %d screenshots\n", len(r.Entries)); err != nil {
		return err
	}
	for _, e := range r.Entries {
		var err error
		if e.Err != nil {
			_, err = fmt.Fprintf(w, "%s: error: %v\n", e.Name, e.Err)
		} else {
			_, err = fmt.Fprintf(w, "%s: %dx%d\n", e.Name, e.Size.Width, e.Size.Height)
		}
		if err != nil {
			return err
		}
	}
	if r.Failed > 0 {
		if _, err := fmt.Fprintf(w, "%d of %d screenshots failed\n", r.Failed, len(r.Entries)); err != nil {
			return err
		}
	}
	return nil
}
