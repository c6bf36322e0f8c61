package model

import "fmt"

// Stage is the lifecycle marker of a component. Stages are strictly ordered;
// a component can only ever advance one stage at a time and never regresses.
type Stage int

const (
	StageUninitialized Stage = iota
	StageObjects
	StageKinematics
	StageLoads
	StageConstraints
)

func (s Stage) String() string {
	switch s {
	case StageUninitialized:
		return "uninitialized"
	case StageObjects:
		return "objects-defined"
	case StageKinematics:
		return "kinematics-defined"
	case StageLoads:
		return "loads-defined"
	case StageConstraints:
		return "constraints-defined"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// hookName is the stage's define method name, used in error reporting.
func (s Stage) hookName() string {
	switch s {
	case StageObjects:
		return "objects"
	case StageKinematics:
		return "kinematics"
	case StageLoads:
		return "loads"
	case StageConstraints:
		return "constraints"
	}
	return "connections"
}
