// Package v2 re-exports the version 2 type surface under one import, so
// consumers can pin a schema generation without touching the per-topic
// packages.
package v2

import (
	"vda5050"
	"vda5050/action"
	"vda5050/connection"
	"vda5050/factsheet"
	"vda5050/instantactions"
	"vda5050/order"
	"vda5050/state"
	"vda5050/visualization"
)

// Common vocabulary.
type (
	Header               = vda5050.Header
	Topic                = vda5050.Topic
	Value                = vda5050.Value
	ValueKind            = vda5050.ValueKind
	ValueDataType        = vda5050.ValueDataType
	ActionParameter      = vda5050.ActionParameter
	AgvPosition          = vda5050.AgvPosition
	BoundingBoxReference = vda5050.BoundingBoxReference
	ControlPoint         = vda5050.ControlPoint
	LoadDimensions       = vda5050.LoadDimensions
	NodePosition         = vda5050.NodePosition
	Trajectory           = vda5050.Trajectory
	Velocity             = vda5050.Velocity
)

// Actions. ActionValue is the minimal scalar-only parameter value used on
// orders and instant actions; Value above is the extended factsheet form.
type (
	Action          = action.Action
	ActionValue     = action.Value
	ActionValueKind = action.ValueKind
	BlockingType    = action.BlockingType
	Parameter       = action.Parameter
)

// Orders.
type (
	Order           = order.Order
	Node            = order.Node
	Edge            = order.Edge
	OrientationType = order.OrientationType
)

// State reports.
type (
	State          = state.State
	NodeState      = state.NodeState
	EdgeState      = state.EdgeState
	ActionState    = state.ActionState
	ActionStatus   = state.ActionStatus
	BatteryState   = state.BatteryState
	Error          = state.Error
	ErrorLevel     = state.ErrorLevel
	ErrorReference = state.ErrorReference
	Information    = state.Information
	InfoLevel      = state.InfoLevel
	InfoReference  = state.InfoReference
	Load           = state.Load
	OperatingMode  = state.OperatingMode
	SafetyState    = state.SafetyState
	EStop          = state.EStop
)

// Connection.
type (
	Connection      = connection.Connection
	ConnectionState = connection.ConnectionState
)

// Factsheet.
type (
	Factsheet          = factsheet.Factsheet
	TypeSpecification  = factsheet.TypeSpecification
	AgvClass           = factsheet.AgvClass
	AgvKinematic       = factsheet.AgvKinematic
	LocalizationType   = factsheet.LocalizationType
	NavigationType     = factsheet.NavigationType
	PhysicalParameters = factsheet.PhysicalParameters
	ProtocolLimits     = factsheet.ProtocolLimits
	MaxStringLens      = factsheet.MaxStringLens
	MaxArrayLens       = factsheet.MaxArrayLens
	Timing             = factsheet.Timing
	ProtocolFeatures   = factsheet.ProtocolFeatures
	OptionalParameter  = factsheet.OptionalParameter
	Support            = factsheet.Support
	AgvAction          = factsheet.AgvAction
	ActionScope        = factsheet.ActionScope
	AgvGeometry        = factsheet.AgvGeometry
	WheelDefinition    = factsheet.WheelDefinition
	WheelType          = factsheet.WheelType
	Position           = factsheet.Position
	PolygonPoint       = factsheet.PolygonPoint
	Envelope2D         = factsheet.Envelope2D
	Envelope3D         = factsheet.Envelope3D
	LoadSpecification  = factsheet.LoadSpecification
	LoadSet            = factsheet.LoadSet
)

// Other messages.
type (
	InstantActions = instantactions.InstantActions
	Visualization  = visualization.Visualization
)
