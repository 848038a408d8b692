package ingest

import (
	"vda5050"
	"vda5050/connection"
	"vda5050/factsheet"
	"vda5050/instantactions"
	"vda5050/order"
	"vda5050/state"
	"vda5050/visualization"
)

// NoOpHandler implements Handler with no-op methods.
// Embed this and override only the methods you need.
type NoOpHandler struct{}

func (NoOpHandler) HandleConnection(vda5050.Topic, *connection.Connection)             {}
func (NoOpHandler) HandleFactsheet(vda5050.Topic, *factsheet.Factsheet)                {}
func (NoOpHandler) HandleInstantActions(vda5050.Topic, *instantactions.InstantActions) {}
func (NoOpHandler) HandleOrder(vda5050.Topic, *order.Order)                            {}
func (NoOpHandler) HandleState(vda5050.Topic, *state.State)                            {}
func (NoOpHandler) HandleVisualization(vda5050.Topic, *visualization.Visualization)    {}

// Compile-time check that NoOpHandler implements Handler.
var _ Handler = NoOpHandler{}
