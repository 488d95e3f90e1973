package diag

import (
	"fmt"
	"io"
)

// Printer writes diagnostics as text lines.
// Error and Fatal go to Err, everything else to Out.
type Printer struct {
	Threshold Severity  // Diagnostics below this severity are dropped.
	Out       io.Writer // Info and Warning destination.
	Err       io.Writer // Error and Fatal destination.

	Fatal func(d Diagnostic) // If set, called after a Fatal diagnostic is printed.
}

var _ Sink = (*Printer)(nil)

// NewPrinter returns a printer with the default Warning threshold.
func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{
		Threshold: SEVERITY_WARNING,
		Out:       out,
		Err:       err,
	}
}

func (pr *Printer) Report(d Diagnostic) {
	if d.Severity < pr.Threshold {
		return
	}

	dest := pr.Out
	if d.Severity >= SEVERITY_ERROR {
		dest = pr.Err
	}

	if dest != nil {
		fmt.Fprintln(dest, d.Error())
	}

	if d.Severity == SEVERITY_FATAL && pr.Fatal != nil {
		pr.Fatal(d)
	}
}
