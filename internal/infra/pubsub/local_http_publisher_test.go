package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAuthEvent(t *testing.T) {
	var received PubSubPushMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	userID := uuid.New()

	err := publisher.PublishAuthEvent(context.Background(), &entity.AuthEvent{
		Type:       entity.EventUserLoggedIn,
		UserID:     userID,
		Email:      "alice@example.com",
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EventUserLoggedIn, received.Message.Attributes["event_type"])
	assert.Equal(t, userID.String(), received.Message.Attributes["user_id"])

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.AuthEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, "alice@example.com", event.Email)
}

func TestLocalHTTPPublisher_ConsumerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishAuthEvent(context.Background(), &entity.AuthEvent{
		Type:   entity.EventUserLoggedOut,
		UserID: uuid.New(),
	})
	assert.Error(t, err)
}
