// Package instantactions defines the message that requests actions outside
// the order context, for immediate execution.
package instantactions

import (
	"vda5050"
	"vda5050/action"
)

// InstantActions is one instant-actions request.
type InstantActions struct {
	vda5050.Header
	Actions []action.Action `json:"actions"`
}
