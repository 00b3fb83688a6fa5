// Package node defines the node-execution contract internal/ironode
// implements: a config-driven Init/Execute/Cleanup lifecycle, adapted from
// the teacher's internal/node/node.go. The teacher's Node wrapper (flow
// graph wiring via Connect, multi-output fan-out, execution-event
// callbacks) assumed a visual editor connecting many node instances
// together; this service runs exactly one receiver node straight into
// internal/irbridge; see DESIGN.md for why that wrapper was trimmed
// rather than kept unused.
package node

import "context"

// MessageType defines the type of message being passed between nodes
type MessageType string

const (
	MessageTypeData  MessageType = "data"
	MessageTypeError MessageType = "error"
	MessageTypeEvent MessageType = "event"
)

// Message represents data flowing between nodes
type Message struct {
	Type    MessageType            `json:"type"`
	Payload map[string]interface{} `json:"payload"`
	Topic   string                 `json:"topic,omitempty"`
	Error   error                  `json:"error,omitempty"`
}

// Executor defines the interface for node execution logic
type Executor interface {
	Execute(ctx context.Context, msg Message) (Message, error)
	Init(config map[string]interface{}) error
	Cleanup() error
}
