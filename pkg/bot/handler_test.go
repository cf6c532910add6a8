package bot

import (
	"testing"
	"time"

	"personabot/pkg/convo"
	"personabot/pkg/persona"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSession implements Session for testing
type MockSession struct {
	SentMessages []string
	TypingCalls  int
}

func (m *MockSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.SentMessages = append(m.SentMessages, content)
	return &discordgo.Message{
		ID:        "mock_msg_id",
		ChannelID: channelID,
		Content:   content,
	}, nil
}

func (m *MockSession) ChannelTyping(channelID string, options ...discordgo.RequestOption) error {
	m.TypingCalls++
	return nil
}

const testBotID = "mock_bot_id"

func newTestHandler(client CompletionClient) (*Handler, *convo.MemoryStore) {
	store := convo.NewMemoryStore("ed", 20)
	registry := persona.NewRegistry("ed", persona.DefaultPersonas)
	h := NewHandler(client, store, registry, 2*time.Second)
	h.SetBotID(testBotID)
	return h, store
}

func userMessage(userID, content string, mentionBot bool) *discordgo.MessageCreate {
	msg := &discordgo.Message{
		ID:        "msg_1",
		ChannelID: "test_channel",
		Content:   content,
		Author: &discordgo.User{
			ID:       userID,
			Username: "TestUser",
		},
	}
	if mentionBot {
		msg.Mentions = []*discordgo.User{{ID: testBotID, Username: "PersonaBot"}}
	}
	return &discordgo.MessageCreate{Message: msg}
}

func TestHandleMessage_MentionTriggersReply(t *testing.T) {
	client := &mockCompletion{reply: "Hello there!"}
	h, _ := newTestHandler(client)
	session := &MockSession{}

	h.HandleMessage(session, userMessage("user_1", "Hi bot!", true))

	require.Len(t, session.SentMessages, 1)
	assert.Equal(t, "Hello there!", session.SentMessages[0])
	assert.Equal(t, 1, session.TypingCalls)
}

func TestHandleMessage_IgnoresOwnMessages(t *testing.T) {
	client := &mockCompletion{reply: "echo"}
	h, _ := newTestHandler(client)
	session := &MockSession{}

	h.HandleMessage(session, userMessage(testBotID, "talking to myself", false))

	assert.Empty(t, session.SentMessages)
	assert.Zero(t, client.callCount())
}

func TestHandleMessage_ActiveEngagementWithCooldown(t *testing.T) {
	client := &mockCompletion{reply: "sure"}
	h, _ := newTestHandler(client)
	session := &MockSession{}

	// No mention; active engagement is on by default
	h.HandleMessage(session, userMessage("user_1", "first", false))
	h.HandleMessage(session, userMessage("user_1", "second", false))

	assert.Len(t, session.SentMessages, 1, "second message lands inside the cooldown window")
}

func TestHandleMessage_SilentWhenEngagementOff(t *testing.T) {
	client := &mockCompletion{reply: "sure"}
	h, store := newTestHandler(client)
	session := &MockSession{}

	_, err := store.ToggleEngagement("user_1")
	require.NoError(t, err)

	h.HandleMessage(session, userMessage("user_1", "anyone home?", false))

	assert.Empty(t, session.SentMessages)
	assert.Zero(t, session.TypingCalls)
	assert.Zero(t, client.callCount())
}

func TestHandleMessage_GlobalNamePreferredForPriming(t *testing.T) {
	client := &mockCompletion{reply: "hi"}
	h, _ := newTestHandler(client)
	session := &MockSession{}

	msg := userMessage("user_1", "Hello!", true)
	msg.Author.GlobalName = "Fancy Name"

	h.HandleMessage(session, msg)

	require.Len(t, client.calls, 1)
	assert.Contains(t, client.calls[0][0].Content, "a user named Fancy Name")
}
