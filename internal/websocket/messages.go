package websocket

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/planvoice/planvoice/domain"
)

// AskMessage is the inbound JSON frame on the live assistant channel.
type AskMessage struct {
	Type    string             `json:"type"`
	Message string             `json:"message"`
	Context domain.UserContext `json:"context,omitempty"`
}

// ReplyMessage is the outbound frame wrapping a reply envelope.
type ReplyMessage struct {
	Type     string `json:"type"`
	Reply    string `json:"reply"`
	Filtered bool   `json:"filtered"`
	Error    string `json:"error,omitempty"`
}

// ParseAskMessage decodes and validates an inbound frame.
func ParseAskMessage(data []byte) (AskMessage, error) {
	var msg AskMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return AskMessage{}, fmt.Errorf("invalid message format: %w", err)
	}

	if msg.Type != "ask" {
		return AskMessage{}, fmt.Errorf("unsupported message type: %q", msg.Type)
	}

	if strings.TrimSpace(msg.Message) == "" {
		return AskMessage{}, fmt.Errorf("message is required")
	}

	return msg, nil
}

// NewReplyMessage wraps a reply envelope for the wire.
func NewReplyMessage(envelope domain.ReplyEnvelope) ReplyMessage {
	return ReplyMessage{
		Type:     "reply",
		Reply:    envelope.Reply,
		Filtered: envelope.Filtered,
		Error:    envelope.Error,
	}
}

// NewErrorMessage builds an outbound frame for a protocol-level problem
// (malformed frame, missing message). The cause is a short machine-readable
// string, never raw error detail.
func NewErrorMessage(cause string) ReplyMessage {
	return ReplyMessage{
		Type:  "error",
		Error: cause,
	}
}

// Encode marshals an outbound frame.
func (m ReplyMessage) Encode() []byte {
	data, _ := json.Marshal(m)
	return data
}
