package connection

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vda5050"
)

func TestConnectionWireFormat(t *testing.T) {
	c := Connection{
		Header: vda5050.Header{
			HeaderID:     7,
			Timestamp:    time.Date(2024, 10, 2, 10, 0, 0, 0, time.UTC),
			Version:      "2.0.0",
			Manufacturer: "warebotics",
			SerialNumber: "WB-0042",
		},
		ConnectionState: Online,
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"headerId": 7,
		"timestamp": "2024-10-02T10:00:00Z",
		"version": "2.0.0",
		"manufacturer": "warebotics",
		"serialNumber": "WB-0042",
		"connectionState": "ONLINE"
	}`, string(data))

	var got Connection
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}

func TestConnectionStates(t *testing.T) {
	for _, s := range []ConnectionState{Online, Offline, ConnectionBroken} {
		c := Connection{ConnectionState: s}
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var got Connection
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, s, got.ConnectionState)
	}
}
