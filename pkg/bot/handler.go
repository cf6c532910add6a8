package bot

import (
	"log"
	"time"

	"personabot/pkg/convo"
	"personabot/pkg/persona"

	"github.com/bwmarrin/discordgo"
)

// Handler wires Discord events to the engine and the command surface.
type Handler struct {
	engine   *Engine
	store    convo.Store
	personas *persona.Registry
	botID    string
}

func NewHandler(client CompletionClient, store convo.Store, personas *persona.Registry, cooldown time.Duration) *Handler {
	return &Handler{
		engine:   NewEngine(client, store, personas, cooldown),
		store:    store,
		personas: personas,
	}
}

func (h *Handler) SetBotID(id string) {
	h.botID = id
}

func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(&DiscordSession{s}, m)
}

func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	// Ignore own messages
	if m.Author.ID == h.botID {
		return
	}

	isMentioned := false
	for _, user := range m.Mentions {
		if user.ID == h.botID {
			isMentioned = true
			break
		}
	}

	if !h.engine.ShouldRespond(m.Author.ID, isMentioned, time.Now()) {
		return
	}

	displayName := m.Author.Username
	if m.Author.GlobalName != "" {
		displayName = m.Author.GlobalName
	}

	s.ChannelTyping(m.ChannelID)

	reply := h.engine.Respond(m.Author.ID, displayName, m.Content)

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
