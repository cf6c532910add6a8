package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"personabot/pkg/persona"
)

// Command behaviors, separated from the interaction plumbing so they can
// be tested without a Discord session. Each returns the reply text.

// SetCharacter sets the user's persona and clears their history. Unknown
// names get the list of valid options instead.
func (h *Handler) SetCharacter(userID, displayName, characterName string) string {
	if !h.personas.Has(characterName) {
		available := strings.Join(h.personas.Names(), ", ")
		return fmt.Sprintf("Sorry, I don't know that character. Available characters: %s", available)
	}

	key := strings.ToLower(characterName)
	if err := h.store.SetPersona(userID, key); err != nil {
		log.Printf("Error setting persona for user %s: %v", userID, err)
		return "Something went wrong setting your character. Please try again."
	}

	return fmt.Sprintf("My personality has been set to **%s** for you, %s! "+
		"Conversation history has been reset, and I'm ready to chat as **%s**!",
		persona.Display(key), displayName, persona.Display(key))
}

// ToggleEngagement flips the user's active-engagement flag.
func (h *Handler) ToggleEngagement(userID, displayName string) string {
	active, err := h.store.ToggleEngagement(userID)
	if err != nil {
		log.Printf("Error toggling engagement for user %s: %v", userID, err)
		return "Something went wrong toggling engagement. Please try again."
	}

	if active {
		return fmt.Sprintf("Active conversation engagement for %s is now: **ON**. "+
			"I will now actively engage in conversation (with a cooldown to prevent spam).", displayName)
	}
	return fmt.Sprintf("Active conversation engagement for %s is now: **OFF**. "+
		"I will now only respond when directly mentioned (@BotName).", displayName)
}

// ResetChat clears the user's history; the persona is re-primed on the
// next message.
func (h *Handler) ResetChat(userID, displayName string) string {
	if err := h.store.ResetHistory(userID); err != nil {
		log.Printf("Error resetting history for user %s: %v", userID, err)
		return "Something went wrong resetting your history. Please try again."
	}
	return fmt.Sprintf("Your conversation history has been reset, %s. We can start fresh!", displayName)
}

// MyCharacter reports the user's current persona.
func (h *Handler) MyCharacter(userID string) string {
	rec, err := h.store.Get(userID)
	if err != nil {
		log.Printf("Error reading record for user %s: %v", userID, err)
		return "Something went wrong looking up your character. Please try again."
	}
	name := persona.Display(h.personas.Lookup(rec.PersonaKey).Key)
	return fmt.Sprintf("Your current character personality is set to: **%s**.", name)
}

// ListCharacters lists all registered personas, sorted.
func (h *Handler) ListCharacters() string {
	names := h.personas.Names()
	if len(names) == 0 {
		return "No character personalities are currently defined."
	}
	return fmt.Sprintf("**Available Character Personalities:**\n```\n%s\n```\nUse `/set_character <name>` to choose one.",
		strings.Join(names, "\n"))
}

// DefineCharacter registers a new persona. Name collisions are rejected
// and leave the existing persona untouched.
func (h *Handler) DefineCharacter(characterName, description string) string {
	err := h.personas.Register(characterName, description)
	if errors.Is(err, persona.ErrAlreadyExists) {
		return fmt.Sprintf("A character with the name '%s' already exists. Please choose a different name.", characterName)
	}
	if err != nil {
		log.Printf("Error defining character %q: %v", characterName, err)
		return "Something went wrong defining that character. Please try again."
	}

	lower := strings.ToLower(characterName)
	return fmt.Sprintf("Character **'%s'** has been successfully defined! "+
		"You can now switch to this personality using `/set_character %s`.",
		persona.Display(lower), lower)
}
