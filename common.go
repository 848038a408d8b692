package vda5050

// AgvPosition is the current position of the AGV on the map. Optional
// fields are only filled by vehicles that can estimate them.
type AgvPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Theta is the orientation of the AGV, range [-pi..pi].
	Theta               float64 `json:"theta"`
	MapID               string  `json:"mapId"`
	MapDescription      *string `json:"mapDescription,omitempty"`
	PositionInitialized bool    `json:"positionInitialized"`
	// LocalizationScore ranges 0.0 (position unknown) to 1.0 (position
	// known). Logging and visualization only.
	LocalizationScore *float64 `json:"localizationScore,omitempty"`
	DeviationRange    *float64 `json:"deviationRange,omitempty"`
}

// BoundingBoxReference is the load's reference point on the AGV in vehicle
// coordinates, in the middle of the load footprint.
type BoundingBoxReference struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Z     float64  `json:"z"`
	Theta *float64 `json:"theta,omitempty"`
}

// ControlPoint is one control point of a NURBS trajectory, in world
// coordinates.
type ControlPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Weight defaults to 1.0 when not set.
	Weight      *float64 `json:"weight,omitempty"`
	Orientation *float64 `json:"orientation,omitempty"`
}

// LoadDimensions is the load's bounding box in meters.
type LoadDimensions struct {
	Length float64  `json:"length"`
	Width  float64  `json:"width"`
	Height *float64 `json:"height,omitempty"`
}

// NodePosition is a node's position on a map. Theta, when set, is the
// orientation the AGV has to assume on the node.
type NodePosition struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Theta *float64 `json:"theta,omitempty"`
	// AllowedDeviationXY is the radius in meters within which the node
	// counts as traversed. Zero means no deviation allowed.
	AllowedDeviationXY    *float64 `json:"allowedDeviationXy,omitempty"`
	AllowedDeviationTheta *float64 `json:"allowedDeviationTheta,omitempty"`
	MapID                 string   `json:"mapId"`
	MapDescription        *string  `json:"mapDescription,omitempty"`
}

// Trajectory is a NURBS curve for one edge, from the point where the AGV
// enters the edge until the next node is reported as traversed.
type Trajectory struct {
	Degree float64 `json:"degree"`
	// KnotVector has size of number of control points + degree + 1.
	KnotVector    []float64      `json:"knotVector"`
	ControlPoints []ControlPoint `json:"controlPoints"`
}

// Velocity is the AGV's velocity in vehicle coordinates.
type Velocity struct {
	Vx    *float64 `json:"vx,omitempty"`
	Vy    *float64 `json:"vy,omitempty"`
	Omega *float64 `json:"omega,omitempty"`
}
