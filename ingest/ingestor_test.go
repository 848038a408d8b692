package ingest

import (
	"encoding/json"
	"testing"
	"time"

	"vda5050"
	"vda5050/action"
	"vda5050/connection"
	"vda5050/order"
	"vda5050/state"
)

func encode(t *testing.T, m any) []byte {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func sampleHeader() vda5050.Header {
	return vda5050.Header{
		HeaderID:     1,
		Timestamp:    time.Date(2024, 10, 2, 10, 0, 0, 0, time.UTC),
		Version:      "2.0.0",
		Manufacturer: "warebotics",
		SerialNumber: "WB-0042",
	}
}

func TestIngestorDispatchOrder(t *testing.T) {
	handler := &testHandler{}
	ingestor := NewIngestor(handler, nil)

	ord := order.Order{
		Header:  sampleHeader(),
		OrderID: "order-7f3a",
		Nodes: []order.Node{
			{NodeID: "node-a", Released: true, Actions: []action.Action{}},
		},
		Edges: []order.Edge{},
	}

	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/order", encode(t, ord))

	if !handler.orderCalled {
		t.Fatal("expected HandleOrder to be called")
	}
	if handler.orderTopic.SerialNumber != "WB-0042" {
		t.Errorf("serialNumber = %q, want %q", handler.orderTopic.SerialNumber, "WB-0042")
	}
	if handler.orderPayload.OrderID != "order-7f3a" {
		t.Errorf("orderId = %q, want %q", handler.orderPayload.OrderID, "order-7f3a")
	}
}

func TestIngestorDispatchBySubject(t *testing.T) {
	handler := &testHandler{}
	ingestor := NewIngestor(handler, nil)

	conn := connection.Connection{Header: sampleHeader(), ConnectionState: connection.Online}
	st := state.State{Header: sampleHeader(), OperatingMode: state.OperatingModeAutomatic}

	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/connection", encode(t, conn))
	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/state", encode(t, st))

	if !handler.connectionCalled {
		t.Error("expected HandleConnection to be called")
	}
	if !handler.stateCalled {
		t.Error("expected HandleState to be called")
	}
	if handler.orderCalled {
		t.Error("expected HandleOrder to NOT be called")
	}
}

func TestIngestorFilter(t *testing.T) {
	handler := &testHandler{}
	// Filter that only accepts one serial number.
	ingestor := NewIngestor(handler, func(tp vda5050.Topic, hdr *vda5050.Header) bool {
		return hdr.SerialNumber == "WB-0001"
	})

	st := state.State{Header: sampleHeader()}
	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/state", encode(t, st))

	if handler.stateCalled {
		t.Error("expected handler to NOT be called when filter rejects")
	}
}

func TestIngestorIgnoresMalformedTopic(t *testing.T) {
	handler := &testHandler{}
	ingestor := NewIngestor(handler, nil)

	st := state.State{Header: sampleHeader()}
	ingestor.HandleRaw("state", encode(t, st))
	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/telemetry", encode(t, st))

	if handler.stateCalled {
		t.Error("expected no dispatch for malformed or unknown topic")
	}
}

func TestIngestorIgnoresMalformedPayload(t *testing.T) {
	handler := &testHandler{}
	ingestor := NewIngestor(handler, nil)

	ingestor.HandleRaw("uagv/v2/warebotics/WB-0042/order", []byte(`{not json`))

	if handler.orderCalled {
		t.Error("expected no dispatch for malformed payload")
	}
}

// testHandler tracks which methods were called.
type testHandler struct {
	NoOpHandler
	orderCalled      bool
	orderTopic       vda5050.Topic
	orderPayload     order.Order
	stateCalled      bool
	connectionCalled bool
}

func (h *testHandler) HandleOrder(tp vda5050.Topic, m *order.Order) {
	h.orderCalled = true
	h.orderTopic = tp
	h.orderPayload = *m
}

func (h *testHandler) HandleState(vda5050.Topic, *state.State) {
	h.stateCalled = true
}

func (h *testHandler) HandleConnection(vda5050.Topic, *connection.Connection) {
	h.connectionCalled = true
}
