package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleAgent     = "agent"
)

const (
	StateThinking = "thinking"
	StateWorking  = "working"
	StateComplete = "complete"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Progress  *float64  `json:"progress,omitempty"`
}
