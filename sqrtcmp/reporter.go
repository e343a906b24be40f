package sqrtcmp

import "io"

// Reporter receives text lines for display.
type Reporter interface {
	Report(line string) error
}

// ReporterFunc is an adapter to allow the use of ordinary functions as Reporters.
type ReporterFunc func(line string) error

// Report returns f(line).
func (f ReporterFunc) Report(line string) error {
	return f(line)
}

type lineReporter struct {
	w   io.Writer
	eol string
}

// NewLineReporter returns a Reporter, which writes every line followed by 'eol' to w.
func NewLineReporter(w io.Writer, eol string) Reporter {
	return &lineReporter{w: w, eol: eol}
}

func (lr *lineReporter) Report(line string) error {
	_, err := io.WriteString(lr.w, line+lr.eol)
	return err
}
