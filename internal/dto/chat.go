package dto

import "encoding/json"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RiskProfileSummary is the questionnaire result the client echoes back with
// every chat request. Only Profile influences the conversation.
type RiskProfileSummary struct {
	Profile     string `json:"profile"`
	Description string `json:"description,omitempty"`
}

type ConversationRequest struct {
	Messages    []ChatMessage       `json:"messages"`
	RiskProfile *RiskProfileSummary `json:"riskProfile,omitempty"`
}

// UnmarshalJSON never rejects a well-formed object: a messages field that is
// missing or not an array decodes to an empty slice, and a riskProfile that is
// not an object is dropped.
func (r *ConversationRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Messages    json.RawMessage `json:"messages"`
		RiskProfile json.RawMessage `json:"riskProfile"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Messages = []ChatMessage{}
	if len(raw.Messages) > 0 {
		var msgs []ChatMessage
		if err := json.Unmarshal(raw.Messages, &msgs); err == nil && msgs != nil {
			r.Messages = msgs
		}
	}

	r.RiskProfile = nil
	if len(raw.RiskProfile) > 0 {
		var profile RiskProfileSummary
		if err := json.Unmarshal(raw.RiskProfile, &profile); err == nil && profile.Profile != "" {
			r.RiskProfile = &profile
		}
	}
	return nil
}

type ChatResponse struct {
	Content string `json:"content"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
