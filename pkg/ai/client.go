package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const defaultBaseURL = "https://api.cerebras.ai/v1"

// Message is one turn of prior context for a completion request.
type Message struct {
	Role    string
	Content string
}

// KeyState tracks the health of an API key
type KeyState struct {
	Key          string
	FailureCount int
	LastUsed     time.Time
	LastSuccess  time.Time
}

// Client talks to any OpenAI-compatible completion endpoint. Multiple
// comma-separated API keys are rotated by failure count.
type Client struct {
	keys        []*KeyState
	keyMu       sync.RWMutex
	clients     map[string]openai.Client
	clientsMu   sync.RWMutex
	baseURL     string
	model       string
	temperature float64
	topP        float64
}

func NewClient(apiKeys, baseURL, model string, temperature, topP float64) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	keyStrings := strings.Split(apiKeys, ",")
	keys := make([]*KeyState, 0, len(keyStrings))
	for _, k := range keyStrings {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, &KeyState{
				Key:          k,
				FailureCount: 0,
			})
		}
	}

	if len(keys) == 0 {
		log.Println("Warning: No API keys provided")
	} else {
		log.Printf("Loaded %d completion API key(s)", len(keys))
	}

	return &Client{
		keys:        keys,
		clients:     make(map[string]openai.Client),
		baseURL:     baseURL,
		model:       model,
		temperature: temperature,
		topP:        topP,
	}
}

func (c *Client) getClient(key string) openai.Client {
	c.clientsMu.RLock()
	if client, ok := c.clients[key]; ok {
		c.clientsMu.RUnlock()
		return client
	}
	c.clientsMu.RUnlock()

	c.clientsMu.Lock()
	defer c.clientsMu.Unlock()

	client := openai.NewClient(
		option.WithBaseURL(c.baseURL),
		option.WithAPIKey(key),
	)
	c.clients[key] = client
	return client
}

// getBestKey returns the API key with the least failures
func (c *Client) getBestKey() *KeyState {
	c.keyMu.RLock()
	defer c.keyMu.RUnlock()

	if len(c.keys) == 0 {
		return nil
	}

	best := c.keys[0]
	for _, k := range c.keys[1:] {
		if k.FailureCount < best.FailureCount {
			best = k
		}
	}
	return best
}

func (c *Client) recordSuccess(key *KeyState) {
	c.keyMu.Lock()
	defer c.keyMu.Unlock()
	key.LastSuccess = time.Now()
	key.LastUsed = time.Now()
	// Gradual recovery
	if key.FailureCount > 0 {
		key.FailureCount--
	}
}

func (c *Client) recordFailure(key *KeyState) {
	c.keyMu.Lock()
	defer c.keyMu.Unlock()
	key.FailureCount++
	key.LastUsed = time.Now()
}

// ChatCompletion sends the messages to the configured model and returns
// the generated text. On failure it retries once with an alternate key
// if one is available.
func (c *Client) ChatCompletion(messages []Message) (string, error) {
	keyState := c.getBestKey()
	if keyState == nil {
		return "", fmt.Errorf("no API keys configured")
	}

	content, err := c.complete(messages, keyState)
	if err == nil {
		return content, nil
	}

	nextKey := c.getBestKey()
	if nextKey != nil && nextKey != keyState {
		log.Printf("Completion failed, retrying with alternate key: %v", err)
		return c.complete(messages, nextKey)
	}
	return "", err
}

func (c *Client) complete(messages []Message, keyState *KeyState) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client := c.getClient(keyState.Key)

	chatMessages := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "system":
			chatMessages[i] = openai.SystemMessage(msg.Content)
		case "assistant":
			chatMessages[i] = openai.AssistantMessage(msg.Content)
		default:
			chatMessages[i] = openai.UserMessage(msg.Content)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    chatMessages,
		Temperature: openai.Float(c.temperature),
		TopP:        openai.Float(c.topP),
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.recordFailure(keyState)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		c.recordFailure(keyState)
		return "", fmt.Errorf("empty response")
	}

	c.recordSuccess(keyState)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
