package vda5050

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAgvPositionOptionalSuppression(t *testing.T) {
	pos := AgvPosition{
		X:                   1.5,
		Y:                   -2,
		Theta:               0.25,
		MapID:               "hall-1",
		PositionInitialized: true,
	}

	data, err := json.Marshal(pos)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"x": 1.5,
		"y": -2,
		"theta": 0.25,
		"mapId": "hall-1",
		"positionInitialized": true
	}`, string(data))

	pos.LocalizationScore = ptr(0.94)
	pos.MapDescription = ptr("ground floor")

	data, err = json.Marshal(pos)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"x": 1.5,
		"y": -2,
		"theta": 0.25,
		"mapId": "hall-1",
		"mapDescription": "ground floor",
		"positionInitialized": true,
		"localizationScore": 0.94
	}`, string(data))
}

func TestVelocityAllOptional(t *testing.T) {
	data, err := json.Marshal(Velocity{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	v := Velocity{Vx: ptr(0.8), Omega: ptr(-0.1)}
	data, err = json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vx":0.8,"omega":-0.1}`, string(data))
}

func TestTrajectoryRoundTrip(t *testing.T) {
	trj := Trajectory{
		Degree:     3,
		KnotVector: []float64{0, 0, 0, 0, 1, 1, 1, 1},
		ControlPoints: []ControlPoint{
			{X: 0, Y: 0},
			{X: 1.2, Y: 0.4, Weight: ptr(0.9)},
			{X: 2.4, Y: 0.4, Orientation: ptr(1.5707)},
			{X: 3.6, Y: 0},
		},
	}

	data, err := json.Marshal(trj)
	require.NoError(t, err)

	var got Trajectory
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(trj, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNodePositionWireKeys(t *testing.T) {
	np := NodePosition{
		X:                  4.5,
		Y:                  -2.25,
		Theta:              ptr(3.1415),
		AllowedDeviationXY: ptr(0.1),
		MapID:              "hall-1",
	}

	data, err := json.Marshal(np)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"x": 4.5,
		"y": -2.25,
		"theta": 3.1415,
		"allowedDeviationXy": 0.1,
		"mapId": "hall-1"
	}`, string(data))
}
