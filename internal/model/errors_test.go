package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionErrorMessage(t *testing.T) {
	// GIVEN a hook failure during the kinematics stage
	cause := fmt.Errorf("%w: hub read too early", ErrNotReady)
	err := &DefinitionError{Path: "bicycle.front_wheel", Stage: StageKinematics, Wrapped: cause}

	// THEN the message carries the stage and the offending path
	assert.Equal(t, `define kinematics at "bicycle.front_wheel": model: state not ready: hub read too early`, err.Error())
	// AND the sentinel stays reachable through the wrapper
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestSolverErrorMessage(t *testing.T) {
	cause := errors.New("kinematic equation count mismatch")
	err := &SolverError{
		Origins: map[string]string{
			"bike_steer_q":      "bike.steer",
			"bike_rear_axle_q":  "bike.rear_axle",
			"bike_front_axle_q": "bike.front_axle",
		},
		Wrapped: cause,
	}

	// Origins are listed sorted so the message is stable.
	assert.Equal(t,
		"model: solver rejected the aggregated system: kinematic equation count mismatch "+
			"(bike_front_axle_q from bike.front_axle, bike_rear_axle_q from bike.rear_axle, "+
			"bike_steer_q from bike.steer)",
		err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := &SolverError{Wrapped: cause}
	assert.Equal(t, "model: solver rejected the aggregated system: kinematic equation count mismatch", bare.Error())
}

func TestStageString(t *testing.T) {
	cases := []struct {
		stage Stage
		want  string
	}{
		{StageUninitialized, "uninitialized"},
		{StageObjects, "objects-defined"},
		{StageKinematics, "kinematics-defined"},
		{StageLoads, "loads-defined"},
		{StageConstraints, "constraints-defined"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.stage.String())
	}
}
