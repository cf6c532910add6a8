package convo

// Role tags a turn as coming from the user or the model.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Immutable once appended.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Record is the per-user conversation state. History always holds
// complete user/assistant pairs; priming turns are synthesized at prompt
// time and never stored.
type Record struct {
	PersonaKey       string `json:"persona_key"`
	History          []Turn `json:"history"`
	ActiveEngagement bool   `json:"active_engagement"`
}

// Store is the per-user conversation state backend. Records are created
// lazily on first access. Backends do not serialize callers; the bot's
// per-user critical section handles that.
type Store interface {
	// Get returns the user's record, creating the default one on first
	// access.
	Get(userID string) (Record, error)
	// SetPersona sets the persona key and clears history, even when the
	// key matches the current persona.
	SetPersona(userID, key string) error
	// ResetHistory clears history, keeping persona and engagement flag.
	ResetHistory(userID string) error
	// ToggleEngagement flips the active-engagement flag and returns the
	// new value.
	ToggleEngagement(userID string) (bool, error)
	// AppendExchange appends a complete user/assistant pair, then drops
	// the oldest pairs beyond the history bound.
	AppendExchange(userID string, userTurn, assistantTurn Turn) error
}
