package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
}

func TestGenerateContent_ReturnsText(t *testing.T) {
	var gotReq generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello "},{"text":"world"}]},"finishReason":"STOP"}]}`))
	})

	got, err := client.GenerateContent(context.Background(), "say hi", GenerationConfig{
		Temperature:     0.4,
		MaxOutputTokens: 800,
		TopP:            0.8,
		TopK:            40,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "say hi", gotReq.Contents[0].Parts[0].Text)
	assert.Len(t, gotReq.SafetySettings, 4)
	assert.Equal(t, 800, gotReq.GenerationConfig.MaxOutputTokens)
}

func TestGenerateContent_PromptBlocked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "bad", GenerationConfig{})
	assert.ErrorIs(t, err, ErrSafetyBlocked)
}

func TestGenerateContent_CandidateBlocked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]},"finishReason":"SAFETY"}]}`))
	})

	_, err := client.GenerateContent(context.Background(), "bad", GenerationConfig{})
	assert.ErrorIs(t, err, ErrSafetyBlocked)
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateContent(context.Background(), "hi", GenerationConfig{})
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestGenerateContent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"internal failure"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "hi", GenerationConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal failure")
}

func TestGenerateContent_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateContent(ctx, "hi", GenerationConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}
