// Package diag carries assembler and emulator diagnostics from the core
// to whatever presents them.
//
// The core never prints. Every lexer, parser, type checker, encoder and
// CPU problem is a Diagnostic handed to a caller supplied Sink.
package diag

import (
	"errors"
	"fmt"

	"github.com/ezrec/lce/translate"
)

var f = translate.From

// Severity of a diagnostic.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_INFO    = Severity(0) // Info
	SEVERITY_WARNING = Severity(1) // Warning
	SEVERITY_ERROR   = Severity(2) // Error
	SEVERITY_FATAL   = Severity(3) // Fatal
)

// Location is a position in a source file.
type Location struct {
	File   string // Name of the source file.
	Offset int    // Zero-based byte offset.
	Line   int    // One-based line number.
	Column int    // One-based column number.
}

// String returns the location as 'file(line:column)'.
func (loc Location) String() string {
	return fmt.Sprintf("%v(%d:%d)", loc.File, loc.Line, loc.Column)
}

// IsZero is true for a location that was never set.
func (loc Location) IsZero() bool {
	return loc == Location{}
}

// Diagnostic is a single report.
type Diagnostic struct {
	Severity Severity
	Location Location
	Message  string
	Err      error // Underlying cause, if any.
}

// Error returns the diagnostic as 'Severity at file(line:column): message'.
func (d Diagnostic) Error() string {
	return f("%v at %v: %v", d.Severity.String(), d.Location, d.Message)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(d Diagnostic)

func (fn SinkFunc) Report(d Diagnostic) {
	fn(d)
}

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Report sends err to sink at the given severity. The message is err's text.
func Report(sink Sink, severity Severity, loc Location, err error) {
	if sink == nil {
		return
	}

	sink.Report(Diagnostic{
		Severity: severity,
		Location: loc,
		Message:  err.Error(),
		Err:      err,
	})
}

// Collector keeps every diagnostic it receives.
type Collector struct {
	Diagnostics []Diagnostic
}

var _ Sink = (*Collector)(nil)

func (col *Collector) Report(d Diagnostic) {
	col.Diagnostics = append(col.Diagnostics, d)
}

// Count returns the number of diagnostics at or above severity.
func (col *Collector) Count(severity Severity) (count int) {
	for _, d := range col.Diagnostics {
		if d.Severity >= severity {
			count++
		}
	}
	return
}

// Err joins all Error and Fatal diagnostics, or returns nil.
func (col *Collector) Err() error {
	var errs []error
	for _, d := range col.Diagnostics {
		if d.Severity >= SEVERITY_ERROR {
			errs = append(errs, d)
		}
	}

	return errors.Join(errs...)
}

// Reset forgets all collected diagnostics.
func (col *Collector) Reset() {
	col.Diagnostics = col.Diagnostics[:0]
}
