package node

import (
	"time"

	"github.com/google/uuid"
)

// EnhancedMessage is a UUID-stamped, timestamped wrapper around a payload,
// narrowed from the teacher's Node-RED-like message envelope down to the
// fields internal/ironode actually produces: a topic-tagged payload that
// gets collapsed back to a legacy Message before ironode queues it.
type EnhancedMessage struct {
	Payload interface{} // Main message data
	Topic   string      // Message identifier/subject
	ID      string      // Unique message ID

	timestamp time.Time
}

// NewEnhancedMessage creates a new enhanced message.
func NewEnhancedMessage(payload interface{}) *EnhancedMessage {
	return &EnhancedMessage{
		Payload:   payload,
		ID:        uuid.New().String(),
		timestamp: time.Now(),
	}
}

// ToLegacyMessage converts EnhancedMessage back to legacy Message. A
// non-map payload is wrapped under a "value" key so Message.Payload's
// map[string]interface{} shape still holds.
func (m *EnhancedMessage) ToLegacyMessage() Message {
	legacyMsg := Message{Topic: m.Topic, Type: MessageTypeData}

	if payloadMap, ok := m.Payload.(map[string]interface{}); ok {
		legacyMsg.Payload = payloadMap
	} else {
		legacyMsg.Payload = map[string]interface{}{"value": m.Payload}
	}

	return legacyMsg
}
