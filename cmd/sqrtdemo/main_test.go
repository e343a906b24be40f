package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/qfrac/internal/config"
	"github.com/avdva/qfrac/sqrtcmp"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	if !a.NoError(run(config.Default(), discard(), false, &b)) {
		return
	}
	out := b.String()
	a.True(strings.HasPrefix(out, clearScreen))
	a.Contains(out, "\r\nXMC MCU: MATH SQRT example\r\n")
	a.True(strings.HasSuffix(out, "\r\n\n"+
		"Sqr_root_CORDIC_Q31 = 1073741824 \r\n"+
		"Sqr_root_CORDIC_float = 0.500\r\n"+
		"Sqr_root_Software_float = 0.500\r\n"), out)
}

func TestRunJSON(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	if !a.NoError(run(config.Default(), discard(), true, &b)) {
		return
	}
	var res sqrtcmp.Result
	if a.NoError(json.Unmarshal(b.Bytes(), &res)) {
		a.Equal(0.25, res.Input)
		a.Equal(0.5, res.Hardware)
		a.Equal("0.500", res.HardwareText)
		a.Equal("0.500", res.SoftwareText)
	}
	a.Contains(b.String(), `"hardware_q31": 1073741824`)
}

func TestRunJSONNegativeInput(t *testing.T) {
	a := assert.New(t)
	cfg, err := config.Parse([]byte("input: -0.25\n"))
	if !a.NoError(err) {
		return
	}
	var b bytes.Buffer
	if !a.NoError(run(cfg, discard(), true, &b)) {
		return
	}
	a.Contains(b.String(), `"software": null`)
	var res sqrtcmp.Result
	if a.NoError(json.Unmarshal(b.Bytes(), &res)) {
		a.Equal(-0.25, res.Input)
		a.True(math.IsNaN(res.Software))
		a.Equal("NaN", res.SoftwareText)
	}
}

func TestRunConfigured(t *testing.T) {
	a := assert.New(t)
	cfg, err := config.Parse([]byte("input: 0.81\ncapacity: 5\neol: \"\\n\"\n"))
	if !a.NoError(err) {
		return
	}
	var b bytes.Buffer
	if a.NoError(run(cfg, discard(), false, &b)) {
		a.True(strings.HasSuffix(b.String(), "\n"+
			"Sqr_root_CORDIC_Q31 = 1932735283 \n"+
			"Sqr_root_CORDIC_float = 0.89\n"+
			"Sqr_root_Software_float = 0.90\n"), b.String())
	}
}
