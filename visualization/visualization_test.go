package visualization

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vda5050"
)

func ptr[T any](v T) *T { return &v }

func TestVisualizationWireFormat(t *testing.T) {
	v := Visualization{
		Header: vda5050.Header{
			HeaderID:     9001,
			Timestamp:    time.Date(2024, 10, 2, 10, 0, 0, 0, time.UTC),
			Version:      "2.0.0",
			Manufacturer: "warebotics",
			SerialNumber: "WB-0042",
		},
		AgvPosition: &vda5050.AgvPosition{
			X: 5.1, Y: -2.2, Theta: 0.02, MapID: "hall-1", PositionInitialized: true,
		},
		Velocity: &vda5050.Velocity{Vx: ptr(0.8), Omega: ptr(-0.05)},
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var got Visualization
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, v, got)
}

func TestVisualizationWithoutPosition(t *testing.T) {
	// Line-guided vehicles cannot localize; both fields may be absent.
	v := Visualization{
		Header: vda5050.Header{HeaderID: 1, Version: "2.0.0"},
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	_, ok := m["agvPosition"]
	assert.False(t, ok)
	_, ok = m["velocity"]
	assert.False(t, ok)
}
