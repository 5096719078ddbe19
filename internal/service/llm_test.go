package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisewallet/backend/internal/logger"
)

func newTestClient(srv *httptest.Server) *DeepSeekClient {
	return &DeepSeekClient{
		apiKey:     "test-key",
		apiURL:     srv.URL,
		model:      "deepseek-chat",
		httpClient: srv.Client(),
		log:        logger.NewNop(),
	}
}

func completionBody(content string) string {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestDeepSeekGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "be brief", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"ok":true}`)))
	}))
	defer srv.Close()

	out, err := newTestClient(srv).GenerateContent(context.Background(), "be brief", "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
}

func TestDeepSeekRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateContent(context.Background(), "s", "p")

	svcErr := requireKind(t, err, KindUnavailable)
	assert.True(t, svcErr.Retryable)
}

func TestDeepSeekTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(completionBody("late")))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv).GenerateContent(ctx, "s", "p")

	svcErr := requireKind(t, err, KindUnavailable)
	assert.True(t, svcErr.Retryable)
	assert.Contains(t, svcErr.Message, "timed out")
}

func TestDeepSeekServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateContent(context.Background(), "s", "p")

	svcErr := requireKind(t, err, KindInternal)
	assert.False(t, svcErr.Retryable)
	assert.Contains(t, svcErr.Message, "status 500")
}

func TestDeepSeekEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).GenerateContent(context.Background(), "s", "p")

	svcErr := requireKind(t, err, KindInternal)
	assert.Contains(t, svcErr.Message, "no choices")
}
