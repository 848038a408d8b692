// Package visualization defines the high-frequency position broadcast used
// for near-realtime display.
package visualization

import "vda5050"

// Visualization is one position/velocity sample. Both fields are optional
// for vehicles that cannot localize.
type Visualization struct {
	vda5050.Header
	AgvPosition *vda5050.AgvPosition `json:"agvPosition,omitempty"`
	Velocity    *vda5050.Velocity    `json:"velocity,omitempty"`
}
