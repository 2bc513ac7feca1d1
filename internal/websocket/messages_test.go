package websocket

import (
	"encoding/json"
	"testing"

	"github.com/planvoice/planvoice/domain"
)

func TestParseAskMessage(t *testing.T) {
	msg, err := ParseAskMessage([]byte(`{"type":"ask","message":"How much can I contribute?","context":{"balance":100}}`))
	if err != nil {
		t.Fatalf("ParseAskMessage failed: %v", err)
	}
	if msg.Message != "How much can I contribute?" {
		t.Errorf("message = %q", msg.Message)
	}
	if msg.Context["balance"] != float64(100) {
		t.Errorf("context = %v", msg.Context)
	}
}

func TestParseAskMessage_Rejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `hello`},
		{"wrong type", `{"type":"audio","message":"hi"}`},
		{"blank message", `{"type":"ask","message":"  "}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseAskMessage([]byte(tc.data)); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestReplyMessage_Encode(t *testing.T) {
	frame := NewReplyMessage(domain.ReplyEnvelope{Reply: "hi", Filtered: true}).Encode()

	var decoded map[string]any
	if err := json.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("frame is not valid JSON: %v", err)
	}
	if decoded["type"] != "reply" {
		t.Errorf("type = %v", decoded["type"])
	}
	if decoded["filtered"] != true {
		t.Errorf("filtered = %v", decoded["filtered"])
	}
	if _, present := decoded["error"]; present {
		t.Error("error field should be omitted when empty")
	}
}
