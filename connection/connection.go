// Package connection defines the broker connection report, published with
// retain and as the AGV's last will.
package connection

import "vda5050"

// ConnectionState is the AGV's broker connection state.
type ConnectionState string

const (
	Online  ConnectionState = "ONLINE"
	Offline ConnectionState = "OFFLINE"
	// ConnectionBroken is sent by the broker as the AGV's last will on an
	// unexpected disconnect.
	ConnectionBroken ConnectionState = "CONNECTIONBROKEN"
)

// Connection is one connection report.
type Connection struct {
	vda5050.Header
	ConnectionState ConnectionState `json:"connectionState"`
}
