// Package action defines the action vocabulary attached to order nodes,
// order edges, and instant-actions messages.
package action

import "github.com/google/uuid"

// BlockingType regulates whether an action may run during movement and in
// parallel with other actions.
type BlockingType string

const (
	// BlockingNone allows the action in parallel with others, including
	// movement.
	BlockingNone BlockingType = "NONE"
	// BlockingSoft allows other actions, but not movement.
	BlockingSoft BlockingType = "SOFT"
	// BlockingHard forbids any other action while this one runs.
	BlockingHard BlockingType = "HARD"
)

// Action is one executable request. ActionID distinguishes multiple actions
// of the same type on the same node or edge.
type Action struct {
	ActionType        string       `json:"actionType"`
	ActionID          string       `json:"actionId"`
	ActionDescription *string      `json:"actionDescription,omitempty"`
	BlockingType      BlockingType `json:"blockingType"`
	ActionParameters  []Parameter  `json:"actionParameters,omitempty"`
}

// New builds an action with a generated unique actionId.
func New(actionType string, blocking BlockingType, params ...Parameter) Action {
	return Action{
		ActionType:       actionType,
		ActionID:         uuid.New().String(),
		BlockingType:     blocking,
		ActionParameters: params,
	}
}

// Parameter is the minimal key/value parameter shape, e.g. duration,
// direction, signal.
type Parameter struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}
