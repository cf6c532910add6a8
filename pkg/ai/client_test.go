package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "test-model",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "assistant", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("Hello world!"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model", 0.7, 0.9)

	messages := []Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hey"},
	}
	response, err := client.ChatCompletion(messages)

	require.NoError(t, err)
	assert.Equal(t, "Hello world!", response)
}

func TestChatCompletion_RetriesWithAlternateKey(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("recovered"))
	}))
	defer server.Close()

	client := NewClient("key-a,key-b", server.URL, "test-model", 1, 1)

	response, err := client.ChatCompletion([]Message{{Role: "user", Content: "Hi"}})
	require.NoError(t, err)
	assert.Equal(t, "recovered", response)
}

func TestChatCompletion_NoKeys(t *testing.T) {
	client := NewClient("", "http://localhost:0", "test-model", 1, 1)

	_, err := client.ChatCompletion([]Message{{Role: "user", Content: "Hi"}})
	assert.Error(t, err)
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []any{},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "test-model", 1, 1)

	_, err := client.ChatCompletion([]Message{{Role: "user", Content: "Hi"}})
	assert.Error(t, err)
}
