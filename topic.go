package vda5050

import (
	"fmt"
	"strings"
)

// Message subjects, the last segment of a topic.
const (
	TopicOrder          = "order"
	TopicInstantActions = "instantActions"
	TopicState          = "state"
	TopicVisualization  = "visualization"
	TopicConnection     = "connection"
	TopicFactsheet      = "factsheet"
)

// Topic identifies a message channel:
// interfaceName/majorVersion/manufacturer/serialNumber/subject.
type Topic struct {
	InterfaceName string
	MajorVersion  string
	Manufacturer  string
	SerialNumber  string
	Subject       string
}

// ParseTopic splits a five-segment topic string.
func ParseTopic(s string) (Topic, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 5 {
		return Topic{}, fmt.Errorf("topic: want 5 segments, got %d in %q", len(parts), s)
	}
	return Topic{
		InterfaceName: parts[0],
		MajorVersion:  parts[1],
		Manufacturer:  parts[2],
		SerialNumber:  parts[3],
		Subject:       parts[4],
	}, nil
}

// Format renders the topic back to its wire string.
func (t Topic) Format() string {
	return strings.Join([]string{
		t.InterfaceName, t.MajorVersion, t.Manufacturer, t.SerialNumber, t.Subject,
	}, "/")
}
