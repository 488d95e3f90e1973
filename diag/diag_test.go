package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = errors.New("test failure")

func TestLocation(t *testing.T) {
	assert := assert.New(t)

	var loc Location
	assert.True(loc.IsZero())

	loc = Location{File: "prog.lca", Offset: 12, Line: 3, Column: 7}
	assert.False(loc.IsZero())
	assert.Equal("prog.lca(3:7)", loc.String())

	// Coordinates are never digit grouped.
	loc = Location{File: "a.lca", Line: 1234, Column: 5}
	assert.Equal("a.lca(1234:5)", loc.String())

	d := Diagnostic{Severity: SEVERITY_ERROR, Location: Location{File: "b.lca", Line: 12345, Column: 1000}, Message: "bad"}
	assert.Equal("Error at b.lca(12345:1000): bad", d.Error())
}

func TestDiagnostic(t *testing.T) {
	assert := assert.New(t)

	d := Diagnostic{
		Severity: SEVERITY_WARNING,
		Location: Location{File: "a.lca", Line: 1, Column: 2},
		Message:  "something odd",
		Err:      errTest,
	}

	assert.Equal("Warning at a.lca(1:2): something odd", d.Error())
	assert.ErrorIs(d, errTest)
	assert.Equal("Fatal", SEVERITY_FATAL.String())
	assert.Equal("Severity(9)", Severity(9).String())
}

func TestCollector(t *testing.T) {
	assert := assert.New(t)

	col := &Collector{}
	assert.NoError(col.Err())

	Report(col, SEVERITY_INFO, Location{}, errors.New("info"))
	Report(col, SEVERITY_WARNING, Location{}, errors.New("warn"))
	assert.Equal(2, len(col.Diagnostics))
	assert.Equal(0, col.Count(SEVERITY_ERROR))
	assert.NoError(col.Err())

	Report(col, SEVERITY_ERROR, Location{Line: 4, Column: 1}, errTest)
	assert.Equal(1, col.Count(SEVERITY_ERROR))
	assert.Equal(2, col.Count(SEVERITY_WARNING))
	assert.ErrorIs(col.Err(), errTest)

	col.Reset()
	assert.Equal(0, len(col.Diagnostics))

	// nil sinks are ignored
	Report(nil, SEVERITY_FATAL, Location{}, errTest)
	Discard.Report(Diagnostic{})
}

func TestPrinter(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	errs := &bytes.Buffer{}

	pr := NewPrinter(out, errs)
	assert.Equal(SEVERITY_WARNING, pr.Threshold)

	var fatals int
	pr.Fatal = func(d Diagnostic) { fatals++ }

	loc := Location{File: "x.lca", Line: 2, Column: 5}
	Report(pr, SEVERITY_INFO, loc, errors.New("hidden"))
	Report(pr, SEVERITY_WARNING, loc, errors.New("careful"))
	Report(pr, SEVERITY_ERROR, loc, errors.New("broken"))
	Report(pr, SEVERITY_FATAL, loc, errors.New("dead"))

	assert.Equal("Warning at x.lca(2:5): careful\n", out.String())
	assert.Equal("Error at x.lca(2:5): broken\nFatal at x.lca(2:5): dead\n", errs.String())
	assert.Equal(1, fatals)

	out.Reset()
	pr.Threshold = SEVERITY_INFO
	Report(pr, SEVERITY_INFO, loc, errors.New("shown"))
	assert.Equal("Info at x.lca(2:5): shown\n", out.String())
}
