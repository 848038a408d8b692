package vda5050

import "time"

// ProtocolVersion is the interface version these types implement, in the
// [Major].[Minor].[Patch] form carried in every message header.
const ProtocolVersion = "2.0.0"

// Header carries the five fields repeated at the top level of every message.
// Message types embed it so the fields serialize flat, as the standard
// requires.
type Header struct {
	// HeaderID is a per-topic counter, incremented by the sender with
	// each message.
	HeaderID     uint32    `json:"headerId"`
	Timestamp    time.Time `json:"timestamp"`
	Version      string    `json:"version"`
	Manufacturer string    `json:"manufacturer"`
	SerialNumber string    `json:"serialNumber"`
}
