package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionRoundTrip(t *testing.T) {
	desc := "lift the forks"
	a := Action{
		ActionType:        "lift",
		ActionID:          "a-17",
		ActionDescription: &desc,
		BlockingType:      BlockingSoft,
		ActionParameters: []Parameter{
			{Key: "height", Value: Float(0.35)},
			{Key: "side", Value: String("left")},
		},
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"actionType": "lift",
		"actionId": "a-17",
		"actionDescription": "lift the forks",
		"blockingType": "SOFT",
		"actionParameters": [
			{"key": "height", "value": 0.35},
			{"key": "side", "value": "left"}
		]
	}`, string(data))

	var got Action
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, a, got)
}

func TestActionOptionalSuppression(t *testing.T) {
	a := Action{ActionType: "startPause", ActionID: "a-1", BlockingType: BlockingHard}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"actionType":"startPause","actionId":"a-1","blockingType":"HARD"}`, string(data))
}

func TestNewGeneratesDistinctIDs(t *testing.T) {
	a := New("pick", BlockingHard, Parameter{Key: "height", Value: Float(0.35)})
	b := New("pick", BlockingHard)

	require.NotEmpty(t, a.ActionID)
	require.NotEmpty(t, b.ActionID)
	assert.NotEqual(t, a.ActionID, b.ActionID)
	assert.Equal(t, "pick", a.ActionType)
	assert.Equal(t, BlockingHard, a.BlockingType)
	assert.Len(t, a.ActionParameters, 1)
	assert.Nil(t, b.ActionParameters)
}

func TestActionStructuralEquality(t *testing.T) {
	a := Action{ActionType: "move", ActionID: "1", BlockingType: BlockingNone,
		ActionParameters: []Parameter{{Key: "test", Value: Bool(true)}}}
	b := Action{ActionType: "move", ActionID: "1", BlockingType: BlockingNone,
		ActionParameters: []Parameter{{Key: "test", Value: Bool(true)}}}
	c := Action{ActionType: "move", ActionID: "1", BlockingType: BlockingNone,
		ActionParameters: []Parameter{{Key: "test", Value: Bool(false)}}}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
