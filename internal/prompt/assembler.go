// Package prompt builds the message list sent to the completion API.
package prompt

import (
	"fmt"
	"strings"

	"stockwise/internal/dto"
	"stockwise/internal/risk"
)

const DefaultInstruction = "You are a helpful financial assistant. Give balanced pros & cons."

const profileInstruction = "You are a helpful financial assistant advising a %s investor. " +
	"Tailor explanations and suggestions to that risk tolerance and give balanced pros & cons."

// BaseInstruction returns the leading system directive for a conversation.
// Only a known risk profile is embedded; any other name gets the default.
func BaseInstruction(profile *dto.RiskProfileSummary) string {
	if profile == nil {
		return DefaultInstruction
	}
	p, err := risk.ParseProfile(strings.TrimSpace(profile.Profile))
	if err != nil {
		return DefaultInstruction
	}
	return fmt.Sprintf(profileInstruction, p)
}

// Assemble produces the ordered list for the completion call: one system
// message with baseInstruction, then every user and assistant turn in order,
// then enrichment as a trailing system message when it is not empty. System
// entries inside messages are dropped.
func Assemble(messages []dto.ChatMessage, baseInstruction, enrichment string) []dto.ChatMessage {
	out := make([]dto.ChatMessage, 0, len(messages)+2)
	out = append(out, dto.ChatMessage{Role: dto.RoleSystem, Content: baseInstruction})

	for _, m := range messages {
		if m.Role != dto.RoleUser && m.Role != dto.RoleAssistant {
			continue
		}
		out = append(out, m)
	}

	if enrichment != "" {
		out = append(out, dto.ChatMessage{Role: dto.RoleSystem, Content: enrichment})
	}
	return out
}
