// Package state defines the periodic state report an AGV publishes: order
// progress, position, battery, loads, action results, errors and safety.
package state

import "vda5050"

// State is one state report. NodeStates and edgeStates list what remains to
// be traversed; actionStates track every action since the last order.
type State struct {
	vda5050.Header
	OrderID            string  `json:"orderId"`
	OrderUpdateID      uint32  `json:"orderUpdateId"`
	ZoneSetID          *string `json:"zoneSetId,omitempty"`
	LastNodeID         string  `json:"lastNodeId"`
	LastNodeSequenceID uint32  `json:"lastNodeSequenceId"`
	Driving            bool    `json:"driving"`
	Paused             *bool   `json:"paused,omitempty"`
	// NewBaseRequest asks the master control to extend the base soon to
	// avoid a standstill.
	NewBaseRequest        *bool                `json:"newBaseRequest,omitempty"`
	DistanceSinceLastNode *float64             `json:"distanceSinceLastNode,omitempty"`
	OperatingMode         OperatingMode        `json:"operatingMode"`
	NodeStates            []NodeState          `json:"nodeStates"`
	EdgeStates            []EdgeState          `json:"edgeStates"`
	AgvPosition           *vda5050.AgvPosition `json:"agvPosition,omitempty"`
	Velocity              *vda5050.Velocity    `json:"velocity,omitempty"`
	Loads                 []Load               `json:"loads,omitempty"`
	ActionStates          []ActionState        `json:"actionStates"`
	BatteryState          BatteryState         `json:"batteryState"`
	Errors                []Error              `json:"errors"`
	Information           []Information        `json:"information,omitempty"`
	SafetyState           SafetyState          `json:"safetyState"`
}

// OperatingMode is the AGV's current control mode.
type OperatingMode string

const (
	OperatingModeAutomatic     OperatingMode = "AUTOMATIC"
	OperatingModeSemiAutomatic OperatingMode = "SEMIAUTOMATIC"
	OperatingModeManual        OperatingMode = "MANUAL"
	OperatingModeService       OperatingMode = "SERVICE"
	OperatingModeTeachIn       OperatingMode = "TEACHIN"
)

// NodeState is a node yet to be traversed.
type NodeState struct {
	NodeID          string                `json:"nodeId"`
	SequenceID      uint32                `json:"sequenceId"`
	NodeDescription *string               `json:"nodeDescription,omitempty"`
	NodePosition    *vda5050.NodePosition `json:"nodePosition,omitempty"`
	Released        bool                  `json:"released"`
}

// EdgeState is an edge yet to be traversed.
type EdgeState struct {
	EdgeID          string              `json:"edgeId"`
	SequenceID      uint32              `json:"sequenceId"`
	EdgeDescription *string             `json:"edgeDescription,omitempty"`
	Released        bool                `json:"released"`
	Trajectory      *vda5050.Trajectory `json:"trajectory,omitempty"`
}

// ActionStatus is the lifecycle state of one action.
type ActionStatus string

const (
	ActionWaiting      ActionStatus = "WAITING"
	ActionInitializing ActionStatus = "INITIALIZING"
	ActionRunning      ActionStatus = "RUNNING"
	ActionPaused       ActionStatus = "PAUSED"
	ActionFinished     ActionStatus = "FINISHED"
	ActionFailed       ActionStatus = "FAILED"
)

// ActionState reports the progress of one action.
type ActionState struct {
	ActionID          string       `json:"actionId"`
	ActionType        *string      `json:"actionType,omitempty"`
	ActionDescription *string      `json:"actionDescription,omitempty"`
	ActionStatus      ActionStatus `json:"actionStatus"`
	ResultDescription *string      `json:"resultDescription,omitempty"`
}

// BatteryState reports the AGV's battery.
type BatteryState struct {
	// BatteryCharge is the state of charge in percent.
	BatteryCharge  float64  `json:"batteryCharge"`
	BatteryVoltage *float64 `json:"batteryVoltage,omitempty"`
	BatteryHealth  *float64 `json:"batteryHealth,omitempty"`
	Charging       bool     `json:"charging"`
	// Reach is the estimated remaining reach in meters.
	Reach *float64 `json:"reach,omitempty"`
}

// ErrorLevel classifies an error's severity.
type ErrorLevel string

const (
	// ErrorLevelWarning: the AGV continues operating.
	ErrorLevelWarning ErrorLevel = "WARNING"
	// ErrorLevelFatal: human intervention is required.
	ErrorLevelFatal ErrorLevel = "FATAL"
)

// ErrorReference points at the entity an error refers to, e.g. key
// "orderId" with the offending order's id as value.
type ErrorReference struct {
	ReferenceKey   string `json:"referenceKey"`
	ReferenceValue string `json:"referenceValue"`
}

// Error is one active error on the AGV.
type Error struct {
	ErrorType        string           `json:"errorType"`
	ErrorReferences  []ErrorReference `json:"errorReferences,omitempty"`
	ErrorDescription *string          `json:"errorDescription,omitempty"`
	ErrorLevel       ErrorLevel       `json:"errorLevel"`
}

// InfoLevel classifies an information entry.
type InfoLevel string

const (
	InfoLevelDebug InfoLevel = "DEBUG"
	InfoLevelInfo  InfoLevel = "INFO"
)

// InfoReference points at the entity an information entry refers to.
type InfoReference struct {
	ReferenceKey   string `json:"referenceKey"`
	ReferenceValue string `json:"referenceValue"`
}

// Information is a non-error notice for visualization and diagnosis. Not
// meant to be interpreted by the master control.
type Information struct {
	InfoType        string          `json:"infoType"`
	InfoReferences  []InfoReference `json:"infoReferences,omitempty"`
	InfoDescription *string         `json:"infoDescription,omitempty"`
	InfoLevel       InfoLevel       `json:"infoLevel"`
}

// EStop states how an emergency stop is acknowledged, if one is active.
type EStop string

const (
	EStopAutoAck EStop = "AUTOACK"
	EStopManual  EStop = "MANUAL"
	EStopRemote  EStop = "REMOTE"
	EStopNone    EStop = "NONE"
)

// SafetyState reports the AGV's safety devices.
type SafetyState struct {
	EStop          EStop `json:"eStop"`
	FieldViolation bool  `json:"fieldViolation"`
}

// Load is one load currently on the AGV. All fields are optional for
// vehicles that cannot sense them; an empty Load still signals presence.
type Load struct {
	LoadID               *string                       `json:"loadId,omitempty"`
	LoadType             *string                       `json:"loadType,omitempty"`
	LoadPosition         *string                       `json:"loadPosition,omitempty"`
	BoundingBoxReference *vda5050.BoundingBoxReference `json:"boundingBoxReference,omitempty"`
	LoadDimensions       *vda5050.LoadDimensions       `json:"loadDimensions,omitempty"`
	Weight               *float64                      `json:"weight,omitempty"`
}
