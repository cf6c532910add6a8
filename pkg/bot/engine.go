package bot

import (
	"fmt"
	"log"
	"sync"
	"time"

	"personabot/pkg/ai"
	"personabot/pkg/convo"
	"personabot/pkg/persona"
)

// ResponseFallback is the only user-facing text on completion failure.
const ResponseFallback = "I am unable to respond right now. Please try again later."

const primingAck = "Understood. I will now respond as specified."

func primingInstruction(description, displayName string) string {
	return fmt.Sprintf("%s You are talking to a user named %s. "+
		"Keep your responses concise and to the point, but provide more detail if the conversation requires it. "+
		"Aim to match the general length and depth of the user's messages, rather than always providing verbose answers.",
		description, displayName)
}

// Engine decides whether an inbound message gets a reply and produces
// that reply. It owns the engagement cooldown clock and the per-user
// critical section around read/complete/append.
type Engine struct {
	client   CompletionClient
	store    convo.Store
	personas *persona.Registry
	cooldown time.Duration

	clockMu     sync.Mutex
	lastTrigger map[string]time.Time

	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewEngine(client CompletionClient, store convo.Store, personas *persona.Registry, cooldown time.Duration) *Engine {
	return &Engine{
		client:      client,
		store:       store,
		personas:    personas,
		cooldown:    cooldown,
		lastTrigger: make(map[string]time.Time),
		userLocks:   make(map[string]*sync.Mutex),
	}
}

// ShouldRespond implements the engagement decision: a mention always
// triggers; otherwise active engagement plus an expired cooldown does.
// The cooldown clock is consumed here, before any generation, so a
// failed completion still burns the slot.
func (e *Engine) ShouldRespond(userID string, mentioned bool, now time.Time) bool {
	if mentioned {
		return true
	}

	rec, err := e.store.Get(userID)
	if err != nil {
		log.Printf("Error reading record for user %s: %v", userID, err)
		return false
	}
	if !rec.ActiveEngagement {
		return false
	}

	e.clockMu.Lock()
	defer e.clockMu.Unlock()

	last, ok := e.lastTrigger[userID]
	if !ok || now.Sub(last) > e.cooldown {
		e.lastTrigger[userID] = now
		return true
	}
	return false
}

// userLock returns the mutex serializing a single user's
// read/complete/append sequence. Entries are never removed; the map
// grows with the set of users seen, like the cooldown clock.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	mu, ok := e.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		e.userLocks[userID] = mu
	}
	return mu
}

// Respond generates a reply to content as the user's current persona.
// It always returns text to deliver; on completion failure that text is
// ResponseFallback and history is left untouched.
func (e *Engine) Respond(userID, displayName, content string) string {
	mu := e.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	rec, err := e.store.Get(userID)
	if err != nil {
		log.Printf("Error reading record for user %s: %v", userID, err)
		return ResponseFallback
	}

	p := e.personas.Lookup(rec.PersonaKey)

	messages := make([]ai.Message, 0, len(rec.History)+3)
	if len(rec.History) == 0 {
		// Fresh conversation: prime the model with the persona
		messages = append(messages,
			ai.Message{Role: "user", Content: primingInstruction(p.Description, displayName)},
			ai.Message{Role: "assistant", Content: primingAck},
		)
	}
	for _, turn := range rec.History {
		messages = append(messages, ai.Message{Role: string(turn.Role), Content: turn.Text})
	}
	messages = append(messages, ai.Message{Role: "user", Content: content})

	reply, err := e.client.ChatCompletion(messages)
	if err != nil {
		log.Printf("Error generating response for user %s: %v", userID, err)
		return ResponseFallback
	}

	err = e.store.AppendExchange(userID,
		convo.Turn{Role: convo.RoleUser, Text: content},
		convo.Turn{Role: convo.RoleAssistant, Text: reply},
	)
	if err != nil {
		log.Printf("Error appending exchange for user %s: %v", userID, err)
	}

	return reply
}
