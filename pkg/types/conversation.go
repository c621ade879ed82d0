package types

// Role identifies the speaker of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single exchange entry used to build multi-turn prompts
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
