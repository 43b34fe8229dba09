// Package report prints liberation progress and diagnostics. Warnings and
// errors are collected as well as printed, so a run can tell afterwards
// whether anything went sideways.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes progress lines, warnings and errors to a stream.
type Reporter struct {
	w    io.Writer
	warn *color.Color
	fail *color.Color

	warnings int
	errors   int
}

// New returns a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		w:    w,
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
	}
}

// Infof prints a plain progress line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warnf prints a warning for something that was skipped but does not stop
// the run.
func (r *Reporter) Warnf(format string, args ...any) {
	r.warnings++
	r.warn.Fprintf(r.w, "WARNING: "+format+"\n", args...)
}

// Errorf prints an error for something that could not be collected. The run
// keeps going; the rest of the project is still worth liberating.
func (r *Reporter) Errorf(format string, args ...any) {
	r.errors++
	r.fail.Fprintf(r.w, "ERROR: "+format+"\n", args...)
}

// Warnings returns the number of warnings reported so far.
func (r *Reporter) Warnings() int { return r.warnings }

// Errors returns the number of errors reported so far.
func (r *Reporter) Errors() int { return r.errors }
