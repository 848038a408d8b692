// Package ingest classifies raw message bytes by topic subject and
// dispatches the decoded message to a handler. It performs no transport of
// its own; the messaging layer hands it topic and payload.
package ingest

import (
	"encoding/json"
	"log"

	"vda5050"
	"vda5050/connection"
	"vda5050/factsheet"
	"vda5050/instantactions"
	"vda5050/order"
	"vda5050/state"
	"vda5050/visualization"
)

// FilterFunc returns true if the message should be processed. It runs after
// the header-only decode, before the full payload decode.
type FilterFunc func(t vda5050.Topic, hdr *vda5050.Header) bool

// Handler defines callbacks for all message subjects.
// Embed NoOpHandler and override only the methods you need.
type Handler interface {
	HandleConnection(t vda5050.Topic, m *connection.Connection)
	HandleFactsheet(t vda5050.Topic, m *factsheet.Factsheet)
	HandleInstantActions(t vda5050.Topic, m *instantactions.InstantActions)
	HandleOrder(t vda5050.Topic, m *order.Order)
	HandleState(t vda5050.Topic, m *state.State)
	HandleVisualization(t vda5050.Topic, m *visualization.Visualization)
}

// Ingestor performs two-phase decode and dispatches to a Handler.
type Ingestor struct {
	handler Handler
	filter  FilterFunc
}

// NewIngestor creates an ingestor with the given handler and filter.
func NewIngestor(handler Handler, filter FilterFunc) *Ingestor {
	return &Ingestor{
		handler: handler,
		filter:  filter,
	}
}

// HandleRaw is the entry point for raw message bytes from the messaging
// layer.
func (ing *Ingestor) HandleRaw(topic string, data []byte) {
	t, err := vda5050.ParseTopic(topic)
	if err != nil {
		log.Printf("ingest: %v", err)
		return
	}

	// Phase 1: decode the shared header only
	var hdr vda5050.Header
	if err := json.Unmarshal(data, &hdr); err != nil {
		log.Printf("ingest: header decode error: %v", err)
		return
	}

	// Apply filter
	if ing.filter != nil && !ing.filter(t, &hdr) {
		return
	}

	// Phase 2: full message decode, dispatched by subject
	switch t.Subject {
	case vda5050.TopicConnection:
		decodeAndCall(ing.handler.HandleConnection, t, data)
	case vda5050.TopicFactsheet:
		decodeAndCall(ing.handler.HandleFactsheet, t, data)
	case vda5050.TopicInstantActions:
		decodeAndCall(ing.handler.HandleInstantActions, t, data)
	case vda5050.TopicOrder:
		decodeAndCall(ing.handler.HandleOrder, t, data)
	case vda5050.TopicState:
		decodeAndCall(ing.handler.HandleState, t, data)
	case vda5050.TopicVisualization:
		decodeAndCall(ing.handler.HandleVisualization, t, data)
	default:
		log.Printf("ingest: unknown subject: %s", t.Subject)
	}
}

// decodeAndCall unmarshals the message and calls the handler method.
func decodeAndCall[T any](fn func(vda5050.Topic, *T), t vda5050.Topic, data []byte) {
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("ingest: %s decode error: %v", t.Subject, err)
		return
	}
	fn(t, &m)
}
