// Package factsheet defines the self-description an AGV publishes once on
// request: vehicle class, physical limits, supported protocol features,
// geometry and load handling.
package factsheet

import (
	"encoding/json"

	"vda5050"
)

// Factsheet is one AGV self-description.
type Factsheet struct {
	vda5050.Header
	TypeSpecification  TypeSpecification  `json:"typeSpecification"`
	PhysicalParameters PhysicalParameters `json:"physicalParameters"`
	ProtocolLimits     ProtocolLimits     `json:"protocolLimits"`
	ProtocolFeatures   ProtocolFeatures   `json:"protocolFeatures"`
	AgvGeometry        AgvGeometry        `json:"agvGeometry"`
	LoadSpecification  LoadSpecification  `json:"loadSpecification"`
}

// AgvKinematic is the vehicle's drive kinematic.
type AgvKinematic string

const (
	KinematicDiff       AgvKinematic = "DIFF"
	KinematicOmni       AgvKinematic = "OMNI"
	KinematicThreeWheel AgvKinematic = "THREEWHEEL"
)

// AgvClass is the vehicle's load-handling class.
type AgvClass string

const (
	ClassForklift AgvClass = "FORKLIFT"
	ClassConveyor AgvClass = "CONVEYOR"
	ClassTugger   AgvClass = "TUGGER"
	ClassCarrier  AgvClass = "CARRIER"
)

// LocalizationType is a supported localization technology.
type LocalizationType string

const (
	LocalizationNatural   LocalizationType = "NATURAL"
	LocalizationReflector LocalizationType = "REFLECTOR"
	LocalizationRFID      LocalizationType = "RFID"
	LocalizationDMC       LocalizationType = "DMC"
	LocalizationSpot      LocalizationType = "SPOT"
	LocalizationGrid      LocalizationType = "GRID"
)

// NavigationType is a supported navigation mode.
type NavigationType string

const (
	NavigationPhysicalLineGuided NavigationType = "PHYSICAL_LINE_GUIDED"
	NavigationVirtualLineGuided  NavigationType = "VIRTUAL_LINE_GUIDED"
	NavigationAutonomous         NavigationType = "AUTONOMOUS"
)

// TypeSpecification names the vehicle series and its general capabilities.
type TypeSpecification struct {
	SeriesName        string       `json:"seriesName"`
	SeriesDescription *string      `json:"seriesDescription,omitempty"`
	AgvKinematic      AgvKinematic `json:"agvKinematic"`
	AgvClass          AgvClass     `json:"agvClass"`
	// MaxLoadMass in kilograms.
	MaxLoadMass       float64            `json:"maxLoadMass"`
	LocalizationTypes []LocalizationType `json:"localizationTypes"`
	NavigationTypes   []NavigationType   `json:"navigationTypes"`
}

// PhysicalParameters are the vehicle's speed and size envelope, in meters
// and meters per second.
type PhysicalParameters struct {
	SpeedMin        float64  `json:"speedMin"`
	SpeedMax        float64  `json:"speedMax"`
	AccelerationMax float64  `json:"accelerationMax"`
	DecelerationMax float64  `json:"decelerationMax"`
	HeightMin       *float64 `json:"heightMin,omitempty"`
	HeightMax       float64  `json:"heightMax"`
	Width           float64  `json:"width"`
	Length          float64  `json:"length"`
}

// ProtocolLimits states the maximum lengths the vehicle accepts.
type ProtocolLimits struct {
	MaxStringLens MaxStringLens `json:"maxStringLens"`
	MaxArrayLens  MaxArrayLens  `json:"maxArrayLens"`
	Timing        Timing        `json:"timing"`
}

// MaxStringLens states maximum accepted string lengths.
type MaxStringLens struct {
	MsgLen          *uint32 `json:"msgLen,omitempty"`
	TopicSerialLen  *uint32 `json:"topicSerialLen,omitempty"`
	TopicElemLen    *uint32 `json:"topicElemLen,omitempty"`
	IDLen           *uint32 `json:"idLen,omitempty"`
	IDNumericalOnly *bool   `json:"idNumericalOnly,omitempty"`
	EnumLen         *uint32 `json:"enumLen,omitempty"`
	LoadIDLen       *uint32 `json:"loadIdLen,omitempty"`
}

// MaxArrayLens states maximum accepted array sizes. The wire keys use the
// standard's dotted element paths.
type MaxArrayLens struct {
	OrderNodes                *uint32 `json:"order.nodes,omitempty"`
	OrderEdges                *uint32 `json:"order.edges,omitempty"`
	NodeActions               *uint32 `json:"node.actions,omitempty"`
	EdgeActions               *uint32 `json:"edge.actions,omitempty"`
	ActionsParameters         *uint32 `json:"actions.actionsParameters,omitempty"`
	InstantActions            *uint32 `json:"instantActions,omitempty"`
	TrajectoryKnotVector      *uint32 `json:"trajectory.knotVector,omitempty"`
	TrajectoryControlPoints   *uint32 `json:"trajectory.controlPoints,omitempty"`
	StateNodeStates           *uint32 `json:"state.nodeStates,omitempty"`
	StateEdgeStates           *uint32 `json:"state.edgeStates,omitempty"`
	StateLoads                *uint32 `json:"state.loads,omitempty"`
	StateActionStates         *uint32 `json:"state.actionStates,omitempty"`
	StateErrors               *uint32 `json:"state.errors,omitempty"`
	StateInformation          *uint32 `json:"state.information,omitempty"`
	ErrorErrorReferences      *uint32 `json:"error.errorReferences,omitempty"`
	InformationInfoReferences *uint32 `json:"information.infoReferences,omitempty"`
}

// Timing states the vehicle's supported message intervals, in seconds.
type Timing struct {
	MinOrderInterval      float64  `json:"minOrderInterval"`
	MinStateInterval      float64  `json:"minStateInterval"`
	DefaultStateInterval  *float64 `json:"defaultStateInterval,omitempty"`
	VisualizationInterval *float64 `json:"visualizationInterval,omitempty"`
}

// ProtocolFeatures lists supported optional parameters and vehicle actions.
type ProtocolFeatures struct {
	OptionalParameters []OptionalParameter `json:"optionalParameters"`
	AgvActions         []AgvAction         `json:"agvActions"`
}

// Support states how a feature is supported.
type Support string

const (
	SupportSupported Support = "SUPPORTED"
	SupportRequired  Support = "REQUIRED"
)

// OptionalParameter names one optional protocol element the vehicle
// supports, by its dotted path, e.g. "order.nodes.nodePosition.theta".
type OptionalParameter struct {
	Parameter   string  `json:"parameter"`
	Support     Support `json:"support"`
	Description *string `json:"description,omitempty"`
}

// ActionScope states where an action may be attached.
type ActionScope string

const (
	ScopeInstant ActionScope = "INSTANT"
	ScopeNode    ActionScope = "NODE"
	ScopeEdge    ActionScope = "EDGE"
)

// AgvAction describes one action the vehicle can execute, with its
// parameter schema in the extended declared-type form.
type AgvAction struct {
	ActionType        string                    `json:"actionType"`
	ActionDescription *string                   `json:"actionDescription,omitempty"`
	ActionScopes      []ActionScope             `json:"actionScopes"`
	ActionParameters  []vda5050.ActionParameter `json:"actionParameters,omitempty"`
	ResultDescription *string                   `json:"resultDescription,omitempty"`
}

// AgvGeometry describes the vehicle's wheels and protective envelopes.
type AgvGeometry struct {
	WheelDefinitions []WheelDefinition `json:"wheelDefinitions,omitempty"`
	Envelopes2D      []Envelope2D      `json:"envelopes2d,omitempty"`
	Envelopes3D      []Envelope3D      `json:"envelopes3d,omitempty"`
}

// WheelType is a wheel's mechanical type.
type WheelType string

const (
	WheelDrive   WheelType = "DRIVE"
	WheelCaster  WheelType = "CASTER"
	WheelFixed   WheelType = "FIXED"
	WheelMecanum WheelType = "MECANUM"
)

// Position is a point in vehicle coordinates.
type Position struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Theta *float64 `json:"theta,omitempty"`
}

// WheelDefinition describes one wheel.
type WheelDefinition struct {
	Type            WheelType `json:"type"`
	IsActiveDriven  bool      `json:"isActiveDriven"`
	IsActiveSteered bool      `json:"isActiveSteered"`
	Position        Position  `json:"position"`
	Diameter        float64   `json:"diameter"`
	Width           float64   `json:"width"`
	// CenterDisplacement is required for caster wheels.
	CenterDisplacement *float64 `json:"centerDisplacement,omitempty"`
	Constraints        *string  `json:"constraints,omitempty"`
}

// PolygonPoint is one vertex of a 2D envelope polygon.
type PolygonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Envelope2D is a named 2D protective envelope.
type Envelope2D struct {
	Set           string         `json:"set"`
	PolygonPoints []PolygonPoint `json:"polygonPoints"`
	Description   *string        `json:"description,omitempty"`
}

// Envelope3D is a named 3D envelope in an external format. Data is opaque
// to this layer and interpreted per Format.
type Envelope3D struct {
	Set         string          `json:"set"`
	Format      string          `json:"format"`
	Data        json.RawMessage `json:"data,omitempty"`
	URL         *string         `json:"url,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// LoadSpecification lists the load positions and load sets the vehicle
// handles.
type LoadSpecification struct {
	LoadPositions []string  `json:"loadPositions,omitempty"`
	LoadSets      []LoadSet `json:"loadSets,omitempty"`
}

// LoadSet describes one combination of load type and load position with its
// handling limits.
type LoadSet struct {
	SetName               string                        `json:"setName"`
	LoadType              string                        `json:"loadType"`
	LoadPositions         []string                      `json:"loadPositions,omitempty"`
	BoundingBoxReference  *vda5050.BoundingBoxReference `json:"boundingBoxReference,omitempty"`
	LoadDimensions        *vda5050.LoadDimensions       `json:"loadDimensions,omitempty"`
	MaxWeight             *float64                      `json:"maxWeight,omitempty"`
	MinLoadhandlingHeight *float64                      `json:"minLoadhandlingHeight,omitempty"`
	MaxLoadhandlingHeight *float64                      `json:"maxLoadhandlingHeight,omitempty"`
	MinLoadhandlingDepth  *float64                      `json:"minLoadhandlingDepth,omitempty"`
	MaxLoadhandlingDepth  *float64                      `json:"maxLoadhandlingDepth,omitempty"`
	MinLoadhandlingTilt   *float64                      `json:"minLoadhandlingTilt,omitempty"`
	MaxLoadhandlingTilt   *float64                      `json:"maxLoadhandlingTilt,omitempty"`
	AgvSpeedLimit         *float64                      `json:"agvSpeedLimit,omitempty"`
	AgvAccelerationLimit  *float64                      `json:"agvAccelerationLimit,omitempty"`
	AgvDecelerationLimit  *float64                      `json:"agvDecelerationLimit,omitempty"`
	PickTime              *float64                      `json:"pickTime,omitempty"`
	DropTime              *float64                      `json:"dropTime,omitempty"`
	Description           *string                       `json:"description,omitempty"`
}
