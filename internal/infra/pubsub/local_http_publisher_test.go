package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agriatoo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishOrderAlertEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	defer publisher.Close()

	event := &service.OrderAlertEvent{
		Kind:         "created",
		SellerID:     "seller-1",
		OrderID:      "ORD-100",
		CustomerName: "Ravi Kumar",
		TotalAmount:  80,
		RequestID:    "req-abc",
	}
	require.NoError(t, publisher.PublishOrderAlertEvent(context.Background(), event))

	assert.Equal(t, "req-abc", requestID)
	assert.Equal(t, "seller-1_ORD-100", received.Message.MessageID)
	assert.Equal(t, "created", received.Message.Attributes["kind"])
	assert.Equal(t, "seller-1", received.Message.Attributes["seller_id"])
	assert.Equal(t, "ORD-100", received.Message.Attributes["order_id"])
	assert.Equal(t, "req-abc", received.Message.Attributes["request_id"])

	// The event rides base64-encoded in the push envelope.
	decoded, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var payload service.OrderAlertEvent
	require.NoError(t, json.Unmarshal(decoded, &payload))
	assert.Equal(t, *event, payload)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishOrderAlertEvent(context.Background(), &service.OrderAlertEvent{
		Kind:     "created",
		SellerID: "seller-1",
		OrderID:  "ORD-100",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestLocalHTTPPublisher_EndpointUnreachable(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", slog.New(slog.DiscardHandler))

	err := publisher.PublishOrderAlertEvent(context.Background(), &service.OrderAlertEvent{
		Kind:     "created",
		SellerID: "seller-1",
		OrderID:  "ORD-100",
	})
	assert.Error(t, err)
}
