// Package order defines the driving order a master control sends to an AGV:
// a base/horizon graph of nodes and edges with attached actions.
package order

import (
	"vda5050"
	"vda5050/action"
)

// Order is one driving order. Nodes and edges carry a released flag that
// separates the base (to be executed) from the horizon (planning preview).
type Order struct {
	vda5050.Header
	OrderID string `json:"orderId"`
	// OrderUpdateID is incremented with each update to the same orderId.
	OrderUpdateID uint32  `json:"orderUpdateId"`
	ZoneSetID     *string `json:"zoneSetId,omitempty"`
	Nodes         []Node  `json:"nodes"`
	Edges         []Edge  `json:"edges"`
}

// Node is one node of the order graph.
type Node struct {
	NodeID string `json:"nodeId"`
	// SequenceID orders nodes and edges of one order; nodes take even
	// numbers, edges odd.
	SequenceID      uint32                `json:"sequenceId"`
	NodeDescription *string               `json:"nodeDescription,omitempty"`
	Released        bool                  `json:"released"`
	NodePosition    *vda5050.NodePosition `json:"nodePosition,omitempty"`
	Actions         []action.Action       `json:"actions"`
}

// Edge is a directed connection between two nodes of the order graph.
type Edge struct {
	EdgeID          string           `json:"edgeId"`
	SequenceID      uint32           `json:"sequenceId"`
	EdgeDescription *string          `json:"edgeDescription,omitempty"`
	Released        bool             `json:"released"`
	StartNodeID     string           `json:"startNodeId"`
	EndNodeID       string           `json:"endNodeId"`
	MaxSpeed        *float64         `json:"maxSpeed,omitempty"`
	MaxHeight       *float64         `json:"maxHeight,omitempty"`
	MinHeight       *float64         `json:"minHeight,omitempty"`
	Orientation     *float64         `json:"orientation,omitempty"`
	OrientationType *OrientationType `json:"orientationType,omitempty"`
	// Direction is a free-text driving hint for line-guided vehicles,
	// e.g. "left", "right" or a segment identifier.
	Direction        *string             `json:"direction,omitempty"`
	RotationAllowed  *bool               `json:"rotationAllowed,omitempty"`
	MaxRotationSpeed *float64            `json:"maxRotationSpeed,omitempty"`
	Length           *float64            `json:"length,omitempty"`
	Trajectory       *vda5050.Trajectory `json:"trajectory,omitempty"`
	Actions          []action.Action     `json:"actions"`
}

// OrientationType states which frame an edge orientation refers to.
type OrientationType string

const (
	// OrientationGlobal is relative to the global map coordinate system.
	OrientationGlobal OrientationType = "GLOBAL"
	// OrientationTangential is relative to the edge's tangent.
	OrientationTangential OrientationType = "TANGENTIAL"
)
