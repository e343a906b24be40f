package sqrtcmp

import "strconv"

// Stage is a step of a comparison run. Stages are passed strictly in order.
type Stage int

const (
	Start Stage = iota
	InputPrepared
	HardwareResultObtained
	HardwareResultFormatted
	SoftwareResultObtained
	SoftwareResultFormatted
	Done
)

var stageNames = [...]string{
	Start:                   "start",
	InputPrepared:           "input-prepared",
	HardwareResultObtained:  "hardware-result-obtained",
	HardwareResultFormatted: "hardware-result-formatted",
	SoftwareResultObtained:  "software-result-obtained",
	SoftwareResultFormatted: "software-result-formatted",
	Done:                    "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}
