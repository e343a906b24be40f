// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package sqrtcmp compares square roots calculated by a fixed-point coprocessor
// with the ones calculated by the standard library, and reports both in decimal form.
package sqrtcmp

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/avdva/qfrac"
	"github.com/avdva/qfrac/cordic"
	"github.com/avdva/qfrac/decfmt"
)

const (
	// DefaultInput is the number, whose square root is calculated by default.
	DefaultInput = 0.25

	hardwareQ31Label = "Sqr_root_CORDIC_Q31"
	hardwareLabel    = "Sqr_root_CORDIC_float"
	softwareLabel    = "Sqr_root_Software_float"
)

// Error is the error class for all errors returned by the package.
var Error = errs.Class("sqrtcmp")

// Result holds the values calculated during a run.
// Non-finite Hardware and Software values are marshaled into json as null,
// which is unmarshaled back as NaN.
type Result struct {
	Input        float64   `json:"input"`
	Operand      qfrac.Q31 `json:"operand"`
	HardwareQ31  qfrac.Q31 `json:"hardware_q31"`
	Hardware     float64   `json:"hardware"`
	HardwareText string    `json:"hardware_text"`
	Software     float64   `json:"software"`
	SoftwareText string    `json:"software_text"`
}

type resultAlias Result

type resultJSON struct {
	resultAlias
	Hardware *float64 `json:"hardware"`
	Software *float64 `json:"software"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		resultAlias: resultAlias(r),
		Hardware:    finite(r.Hardware),
		Software:    finite(r.Software),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	var v resultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Result(v.resultAlias)
	r.Hardware, r.Software = orNaN(v.Hardware), orNaN(v.Software)
	return nil
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func orNaN(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}

// Driver runs comparisons. It owns a single text buffer,
// which is reused for every formatted value, so it is not safe for concurrent use.
type Driver struct {
	hardware cordic.Sqrter
	software func(float64) float64
	fm       decfmt.Formatter
	capacity int
	logger   *slog.Logger

	buf *decfmt.Buffer
}

// Option configures a Driver.
type Option func(d *Driver)

// WithSoftware sets the real-valued square root function. The default is math.Sqrt.
func WithSoftware(sqrt func(float64) float64) Option {
	return func(d *Driver) {
		d.software = sqrt
	}
}

// WithFormatter sets the formatter for the results.
func WithFormatter(fm decfmt.Formatter) Option {
	return func(d *Driver) {
		d.fm = fm
	}
}

// WithCapacity sets the capacity of the text buffer. The default is decfmt.DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(d *Driver) {
		d.capacity = capacity
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// New returns a driver, which calculates the fixed-point roots with 'hardware'.
func New(hardware cordic.Sqrter, opts ...Option) *Driver {
	d := &Driver{
		hardware: hardware,
		software: math.Sqrt,
		capacity: decfmt.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.buf = decfmt.NewBuffer(d.capacity, d.fm)
	return d
}

// Run calculates the square root of 'input' both ways and reports three lines to r:
// the raw Q31 result of the coprocessor, and both results in decimal form.
// The input is not checked: values outside [0, 1) wrap around when converted to Q31.
// An error is returned only if r fails.
func (d *Driver) Run(input float64, r Reporter) (Result, error) {
	res := Result{Input: input}
	d.enter(Start, slog.Float64("input", input))

	res.Operand = qfrac.Q31FromFloat64(input)
	d.enter(InputPrepared, slog.Int64("operand", int64(res.Operand)))

	res.HardwareQ31 = d.hardware.SqrtQ31(res.Operand)
	res.Hardware = res.HardwareQ31.Float64()
	d.enter(HardwareResultObtained, slog.Int64("q31", int64(res.HardwareQ31)))
	// the device console prints the raw value with a trailing space.
	if err := d.report(r, hardwareQ31Label, strconv.FormatInt(int64(res.HardwareQ31), 10)+" "); err != nil {
		return res, err
	}

	res.HardwareText = d.format(res.Hardware)
	if err := d.report(r, hardwareLabel, res.HardwareText); err != nil {
		return res, err
	}
	d.enter(HardwareResultFormatted, slog.String("text", res.HardwareText))

	res.Software = d.software(input)
	d.enter(SoftwareResultObtained)

	res.SoftwareText = d.format(res.Software)
	if err := d.report(r, softwareLabel, res.SoftwareText); err != nil {
		return res, err
	}
	d.enter(SoftwareResultFormatted, slog.String("text", res.SoftwareText))

	d.enter(Done)
	d.logger.Info("square roots compared",
		slog.Float64("input", input),
		slog.String("hardware", res.HardwareText),
		slog.String("software", res.SoftwareText))
	return res, nil
}

func (d *Driver) enter(s Stage, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("stage", s.String()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	d.logger.Debug("stage", args...)
}

func (d *Driver) format(f float64) string {
	if d.buf.Format(f) {
		d.logger.Warn("formatted value truncated",
			slog.Int("capacity", d.buf.Cap()),
			slog.Int("width", d.fm.Width(f)))
	}
	return d.buf.String()
}

func (d *Driver) report(r Reporter, label, value string) error {
	if err := r.Report(label + " = " + value); err != nil {
		return Error.Wrap(err)
	}
	return nil
}
